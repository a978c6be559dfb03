package main

import (
	statepkg "github.com/kk-code-lab/jump/internal/state"
	"github.com/spf13/cobra"
)

func newFuzzyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "fuzzy [query]",
		Aliases: []string{"f"},
		Short:   "Filter the current directory by typing",
		Long: `Filter the current directory's subdirectories by a fuzzy query.

Press / to type, j/k to move, l/h to enter or leave a directory and Enter
to pick. Bookmarks join the results while a query is active.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return c.runMode(cmd, statepkg.ModeFuzzy, "", query, false)
		},
	}
}

func newNumberCmd(c *cli) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:     "num [path]",
		Aliases: []string{"n"},
		Short:   "Pick by number from the most used directories",
		Long: `List directories ranked by how often and how recently you used them and
pick one by typing its number. Enter with no number picks the last entry.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			return c.runMode(cmd, statepkg.ModeNumber, dir, "", global)
		},
	}

	cmd.Flags().BoolVarP(&global, "global", "g", false, "rank every recorded directory instead of the current one's children")
	return cmd
}

func newBrowseCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [path]",
		Short: "Walk the tree with two-key labels",
		Long: `Label each subdirectory with two keys. Typing a label enters the
directory, Enter picks the one you are in and Backspace goes up.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			return c.runMode(cmd, statepkg.ModeBrowse, dir, "", false)
		},
	}
}
