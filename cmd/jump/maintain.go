package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	fsutil "github.com/kk-code-lab/jump/internal/fs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	defaultCleanThreshold = 1.0
	statsTop              = 10
)

func newTrackCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "track [path]",
		Short: "Record a visit to a directory",
		Long: `Record a visit to path, or to the working directory. The shell
integration calls this whenever the directory changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			dir, err := c.resolveDir(arg)
			if err != nil {
				return err
			}
			if !fsutil.Exists(dir) {
				return fmt.Errorf("%s: %w", dir, fsutil.ErrNotDirectory)
			}

			st, err := c.openStore()
			if err != nil {
				return err
			}
			rec, err := st.RecordVisit(dir, filepath.Base(dir), c.now())
			if err != nil {
				return err
			}
			c.log.WithFields(logrus.Fields{
				"path":  rec.Path,
				"count": rec.AccessCount,
			}).Debug("tracked")
			return nil
		},
	}
}

func newStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show totals and the highest ranked directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			stats, err := st.Stats()
			if err != nil {
				return err
			}
			top, err := st.Top(statsTop)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "directories: %d\nvisits:      %d\nbookmarks:   %d\n", stats.Records, stats.Visits, stats.Bookmarks)
			if len(top) == 0 {
				return nil
			}
			fmt.Fprintln(out)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
			for i, rec := range top {
				fmt.Fprintf(tw, "%d\t%.1f\t%d\t %s\n", i+1, rec.Score.Raw(), rec.AccessCount, rec.Path)
			}
			return tw.Flush()
		},
	}
}

func newCleanCmd(c *cli) *cobra.Command {
	var missing bool

	cmd := &cobra.Command{
		Use:   "clean [threshold]",
		Short: "Age scores and drop rarely used directories",
		Long: `Apply the weekly score decay, then delete directories scoring below
threshold (default 1.0). Bookmarked directories are always kept.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold := defaultCleanThreshold
			if len(args) > 0 {
				v, err := strconv.ParseFloat(args[0], 64)
				if err != nil || v < 0 {
					return fmt.Errorf("invalid threshold %q", args[0])
				}
				threshold = v
			}

			st, err := c.openStore()
			if err != nil {
				return err
			}
			decayed, err := st.Decay(c.now())
			if err != nil {
				return err
			}
			removed, err := st.Clean(threshold)
			if err != nil {
				return err
			}
			pruned := 0
			if missing {
				if pruned, err = st.PruneMissing(fsutil.Exists); err != nil {
					return err
				}
			}

			c.log.WithFields(logrus.Fields{
				"decayed": decayed,
				"removed": removed,
				"pruned":  pruned,
			}).Info("clean")
			fmt.Fprintf(cmd.OutOrStdout(), "decayed %d, removed %d below %.2f", decayed, removed, threshold)
			if missing {
				fmt.Fprintf(cmd.OutOrStdout(), ", removed %d missing", pruned)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&missing, "missing", false, "also drop directories that no longer exist")
	return cmd
}

func newImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge directories from an export file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open import file: %w", err)
				}
				defer f.Close()
				in = f
			}

			st, err := c.openStore()
			if err != nil {
				return err
			}
			n, err := st.Import(in, c.now())
			if err != nil {
				return err
			}
			c.log.WithField("records", n).Info("import")
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d directories\n", n)
			return nil
		},
	}
}

func newExportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write every directory as JSON (- for stdout)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			if args[0] == "-" {
				_, err := st.Export(cmd.OutOrStdout())
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			n, err := st.Export(f)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}
			c.log.WithField("records", n).Info("export")
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d directories\n", n)
			return nil
		},
	}
}
