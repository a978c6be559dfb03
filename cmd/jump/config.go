package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kk-code-lab/jump/internal/config"
	"github.com/spf13/cobra"
)

func (c *cli) configPath() string {
	if c.cfgFile != "" {
		return c.cfgFile
	}
	return config.Path()
}

func newConfigCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file:         %s\n", c.configPath())
			fmt.Fprintf(out, "default_mode: %s\n", c.cfg.DefaultMode)
			fmt.Fprintf(out, "database:     %s\n", c.cfg.Database)
			fmt.Fprintf(out, "log_file:     %s\n", c.cfg.LogFile)
			fmt.Fprintf(out, "show_hidden:  %t\n", c.cfg.ShowHidden)
			return nil
		},
	}
	cmd.AddCommand(newConfigInitCmd(c))
	return cmd
}

func newConfigInitCmd(c *cli) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.Save(c.cfg, path); err != nil {
				return err
			}
			c.log.WithField("path", path).Info("config written")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
