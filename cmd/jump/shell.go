package main

import (
	"github.com/kk-code-lab/jump/internal/shellsetup"
	"github.com/spf13/cobra"
)

var parentShellDetector = shellsetup.DetectParentShellName

func newShellCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "shell [bash|zsh|fish|pwsh]",
		Short: "Print the shell integration",
		Long: `Print the j function and the directory tracking hook for your shell.
The shell is detected when omitted. Add to your startup file:

    eval "$(jump shell bash)"      # ~/.bashrc
    eval "$(jump shell zsh)"       # ~/.zshrc
    jump shell fish | source       # ~/.config/fish/config.fish`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: shellsetup.Shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			override := ""
			if len(args) > 0 {
				override = args[0]
			}
			return shellsetup.Write(cmd.OutOrStdout(), override, shellsetup.Config{
				DetectParent: parentShellDetector,
			})
		},
	}
}
