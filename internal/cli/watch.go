package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirlantis/stgit/internal/daemon"
)

func newWatchCmd() *cobra.Command {
	var trace bool
	var debounceMS int
	var output string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the input files and regenerate the script on change",
		Long: `Watch renders the script once, then keeps it current: whenever the
extension registry or the alias overlay changes on disk, the script is
regenerated and replaced atomically. Unchanged inputs (checked by
checksum) are skipped. Exits cleanly on SIGINT/SIGTERM.`,
		Example: `  stgcomp watch -o ~/.config/fish/completions/stg.fish
  stgcomp watch -o ./stg.fish -r ./extra-commands.yaml --debounce-ms 500`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			regPath, _ := cmd.Root().PersistentFlags().GetString("registry")

			cfgPath, explicit := resolveConfig(cmd)
			if !explicit {
				// default overlay only participates if it exists
				if _, err := os.Stat(cfgPath); err != nil {
					cfgPath = ""
				}
			}

			in := daemon.Inputs{
				RegistryPath: expandPath(regPath),
				ConfigPath:   cfgPath,
				Output:       expandPath(output),
			}
			opts := daemon.Options{
				Trace:    trace,
				Debounce: time.Duration(debounceMS) * time.Millisecond,
			}
			return daemon.Run(in, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the script to FILE (required)")
	cmd.Flags().IntVar(&debounceMS, "debounce-ms", 200, "debounce window in milliseconds")
	cmd.Flags().BoolVar(&trace, "trace", false, "print watch set and rebuild decisions")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
