package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	apppkg "github.com/kk-code-lab/jump/internal/app"
	"github.com/kk-code-lab/jump/internal/config"
	fsutil "github.com/kk-code-lab/jump/internal/fs"
	"github.com/kk-code-lab/jump/internal/logging"
	statepkg "github.com/kk-code-lab/jump/internal/state"
	"github.com/kk-code-lab/jump/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cli holds what every command shares: flags, configuration, the logger and
// the lazily opened store.
type cli struct {
	cfgFile string
	showAll bool
	debug   bool

	cfg      *config.Config
	log      *logrus.Logger
	closeLog func() error
	store    *store.Store

	now   func() time.Time
	getwd func() (string, error)
	// pick runs an interactive session; tests replace it.
	pick func(opts apppkg.Options) (string, error)
}

func newCLI() *cli {
	return &cli{
		now:   time.Now,
		getwd: os.Getwd,
		pick:  runPicker,
		log:   logging.Discard(),
	}
}

func runPicker(opts apppkg.Options) (string, error) {
	app, err := apppkg.NewApplication(opts)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = app.Close()
	}()
	return app.Run()
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "jump [query]",
		Short: "Jump to directories with a few keystrokes",
		Long: `jump picks a directory with two-key labels, a fuzzy filter or a number,
and learns which directories you use most.

Run "jump shell" and add the output to your shell startup file to get the
j function, which changes into the picked directory.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := modeFromConfig(c.cfg.DefaultMode)
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return c.runMode(cmd, mode, "", query, false)
		},
	}

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is $JUMP_CONFIG or <config dir>/jump/config.yaml)")
	root.PersistentFlags().BoolVarP(&c.showAll, "all", "a", false, "include hidden directories")
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "write debug entries to the log file")

	root.AddCommand(
		newFuzzyCmd(c),
		newNumberCmd(c),
		newBrowseCmd(c),
		newBookCmd(c),
		newTrackCmd(c),
		newStatsCmd(c),
		newCleanCmd(c),
		newImportCmd(c),
		newExportCmd(c),
		newShellCmd(c),
		newConfigCmd(c),
	)
	return root
}

// setup loads configuration and logging. It runs before every command.
func (c *cli) setup() error {
	var err error
	if c.cfgFile != "" {
		c.cfg, err = config.LoadFile(c.cfgFile)
	} else {
		c.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if c.showAll {
		c.cfg.ShowHidden = true
	}

	logger, closeLog, err := logging.Setup(logging.Options{
		File:  c.cfg.LogFile,
		Level: c.cfg.LogLevel,
		Debug: c.debug,
	})
	c.log = logger
	c.closeLog = closeLog
	if err != nil {
		// Logging never fails a command.
		c.log.WithError(err).Warn("logging degraded")
	}
	return nil
}

// openStore opens the database once per process.
func (c *cli) openStore() (*store.Store, error) {
	if c.store != nil {
		return c.store, nil
	}
	if c.cfg.Database != store.MemoryPath {
		if err := os.MkdirAll(filepath.Dir(c.cfg.Database), 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	st, err := store.Open(c.cfg.Database)
	if err != nil {
		c.log.WithError(err).WithField("database", c.cfg.Database).Error("store unavailable")
		return nil, err
	}
	c.store = st
	return st, nil
}

func (c *cli) close() error {
	var errs []error
	if c.store != nil {
		errs = append(errs, c.store.Close())
		c.store = nil
	}
	if c.closeLog != nil {
		errs = append(errs, c.closeLog())
		c.closeLog = nil
	}
	return errors.Join(errs...)
}

// resolveDir makes arg absolute, using the working directory when empty.
func (c *cli) resolveDir(arg string) (string, error) {
	if arg == "" {
		return c.getwd()
	}
	dir, err := fsutil.Resolve(arg)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", arg, err)
	}
	return dir, nil
}

func modeFromConfig(mode string) statepkg.Mode {
	switch mode {
	case config.ModeBrowse:
		return statepkg.ModeBrowse
	case config.ModeNumber:
		return statepkg.ModeNumber
	default:
		return statepkg.ModeFuzzy
	}
}

// runMode runs an interactive session and prints the picked path. Leaving
// without a pick prints nothing and is not an error.
func (c *cli) runMode(cmd *cobra.Command, mode statepkg.Mode, dirArg, query string, global bool) error {
	dir, err := c.resolveDir(dirArg)
	if err != nil {
		return err
	}
	filter, err := fsutil.NewFilter(c.cfg.Exclude)
	if err != nil {
		return err
	}

	opts := apppkg.Options{
		Mode:        mode,
		StartDir:    dir,
		Query:       query,
		ShowHidden:  c.cfg.ShowHidden,
		Global:      global,
		VisibleRows: c.cfg.VisibleRows,
		NumberLimit: c.cfg.NumberLimit,
		Scanner:     statepkg.NewScanner(filter),
		Logger:      c.log,
		Now:         c.now,
	}
	// A missing store degrades ranking and bookmarks but not navigation.
	if st, err := c.openStore(); err == nil {
		opts.Store = st
	} else if mode == statepkg.ModeBookmarks || global {
		return err
	}

	path, err := c.pick(opts)
	if errors.Is(err, apppkg.ErrCancelled) {
		c.log.WithField("mode", mode.String()).Info("cancelled")
		return nil
	}
	if err != nil {
		return err
	}
	c.log.WithFields(logrus.Fields{"mode": mode.String(), "path": path}).Info("picked")
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
