package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	executor "github.com/sirlantis/stgit/internal/exec"
	"github.com/sirlantis/stgit/internal/fish"
)

func newGenerateCmd() *cobra.Command {
	var trace bool
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the fish completion script once",
		Long: `Generate renders the completion script for the builtin stg commands plus
any extension registry and alias overlay, and writes it to stdout.

notes:
  • the script is rendered fully in memory before anything is written, so
    a failed run never emits a truncated script
  • use -o to write to a file instead; the file is replaced atomically
  • see 'stgcomp watch' to keep the file current as inputs change`,
		Example: `  stgcomp generate > ~/.config/fish/completions/stg.fish
  stgcomp generate -o ~/.config/fish/completions/stg.fish
  stgcomp generate -c ./aliases.toml -r ./extra-commands.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, defaults, err := loadInputs(cmd)
			if err != nil {
				return err
			}

			if trace {
				cfgPath, explicit := resolveConfig(cmd)
				fmt.Fprintf(os.Stderr, "stgcomp: config = %s (explicit=%v)\n", cfgPath, explicit)
				fmt.Fprintf(os.Stderr, "stgcomp: commands = %d, aliases = %d\n",
					len(reg.Entries()), len(defaults.Aliases()))
			}

			var buf bytes.Buffer
			if err := fish.WriteScript(&buf, reg, defaults); err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			if output == "" {
				_, err := os.Stdout.Write(buf.Bytes())
				return err
			}
			if err := executor.WriteAtomic(expandPath(output), buf.String()); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "stgcomp: wrote %s\n", expandPath(output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the script to FILE (atomic) instead of stdout")
	cmd.Flags().BoolVar(&trace, "trace", false, "print resolved inputs and counts to stderr")

	return cmd
}
