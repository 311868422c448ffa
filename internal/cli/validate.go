package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var trace bool
	var list bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the extension registry and alias overlay without writing output",
		Long:  "Validate parses and checks the extension registry and alias overlay (flags, arg kinds, keywords) and prints any errors.",
		Example: `  stgcomp validate
  stgcomp validate -r ./extra-commands.yaml
  STGCOMP_CONFIG=./aliases.toml stgcomp validate --list`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, defaults, err := loadInputs(cmd)
			if err != nil {
				return err
			}

			if trace {
				cfgPath, explicit := resolveConfig(cmd)
				fmt.Fprintf(os.Stderr, "stgcomp: config = %s (explicit=%v)\n", cfgPath, explicit)
			}

			if list {
				for _, e := range reg.Entries() {
					cmdRec, err := reg.Lookup(e.Module)
					if err != nil {
						return err
					}
					fmt.Fprintf(os.Stderr, "command: %s (%s)\n", e.Name, cmdRec.Help)
				}
				for _, a := range defaults.Aliases() {
					fmt.Fprintf(os.Stderr, "alias: %s -> %s\n", a.Name, a.Target)
				}
			}

			fmt.Fprintln(os.Stderr, "stgcomp: validation OK")
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "print resolved input paths")
	cmd.Flags().BoolVar(&list, "list", false, "list commands and aliases after validation")
	return cmd
}
