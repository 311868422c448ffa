package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts for stgcomp itself",
		Long: `Generate shell completion scripts for Bash, Zsh, Fish, and PowerShell.

These complete stgcomp's own flags and subcommands. For the stg
completion script this tool exists for, see 'stgcomp generate'.

Examples:
  # bash (writes to stdout)
  stgcomp completion bash > ~/.local/share/bash-completion/completions/stgcomp

  # zsh
  stgcomp completion zsh > ~/.local/share/zsh/site-functions/_stgcomp

  # fish
  stgcomp completion fish > ~/.config/fish/completions/stgcomp.fish
`,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "bash",
		Short: "Bash completion",
		RunE: func(c *cobra.Command, _ []string) error { return root.GenBashCompletionV2(os.Stdout, true) },
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "zsh",
		Short: "Zsh completion",
		RunE: func(c *cobra.Command, _ []string) error { return root.GenZshCompletion(os.Stdout) },
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "fish",
		Short: "Fish completion",
		RunE: func(c *cobra.Command, _ []string) error { return root.GenFishCompletion(os.Stdout, true) },
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "powershell",
		Short: "PowerShell completion",
		RunE: func(c *cobra.Command, _ []string) error { return root.GenPowerShellCompletionWithDesc(os.Stdout) },
	})
	return cmd
}
