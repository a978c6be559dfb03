package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	fsutil "github.com/kk-code-lab/jump/internal/fs"
	statepkg "github.com/kk-code-lab/jump/internal/state"
	"github.com/spf13/cobra"
)

func newBookCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "book",
		Aliases: []string{"b", "bookmark"},
		Short:   "Pick a bookmarked directory",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMode(cmd, statepkg.ModeBookmarks, "", "", false)
		},
	}

	cmd.AddCommand(
		newBookAddCmd(c),
		newBookRemoveCmd(c),
		newBookListCmd(c),
		newBookGoCmd(c),
	)
	return cmd
}

func newBookAddCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add <key> [path]",
		Short: "Bookmark a directory under key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 1 {
				arg = args[1]
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
			rec, err := st.SetBookmark(dir, filepath.Base(dir), args[0], c.now())
			if err != nil {
				return err
			}
			c.log.WithField("key", rec.BookmarkKey).WithField("path", rec.Path).Info("bookmark set")
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", rec.BookmarkKey, rec.Path)
			return nil
		},
	}
}

func newBookRemoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <key>",
		Aliases: []string{"rm", "del"},
		Short:   "Delete a bookmark; the visit history stays",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			if err := st.RemoveBookmark(args[0]); err != nil {
				return err
			}
			c.log.WithField("key", args[0]).Info("bookmark removed")
			return nil
		},
	}
}

func newBookListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List bookmarks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			records, err := st.ListBookmarks()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, rec := range records {
				fmt.Fprintf(tw, "%s\t%s\n", rec.BookmarkKey, rec.Path)
			}
			return tw.Flush()
		},
	}
}

func newBookGoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "go <key>",
		Short: "Print a bookmarked directory and record the visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			rec, err := st.GetBookmark(args[0])
			if err != nil {
				return err
			}
			if _, err := st.RecordVisit(rec.Path, rec.Name, c.now()); err != nil {
				c.log.WithError(err).WithField("path", rec.Path).Warn("could not record visit")
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec.Path)
			return nil
		},
	}
}
