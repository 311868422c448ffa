package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newManCmd(root *cobra.Command) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "man",
		Short: "Generate man pages for stgcomp",
		Long: `Man writes UNIX manual pages for stgcomp and its subcommands to a
directory (./man1 by default).`,
		Example: `  stgcomp man
  stgcomp man -o /usr/local/share/man/man1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := expandPath(output)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			header := &doc.GenManHeader{
				Title:   "STGCOMP",
				Section: "1",
				Source:  "stgcomp",
				Manual:  "stgcomp manual",
			}
			if err := doc.GenManTree(root, header, dir); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "stgcomp: man pages written to %s\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "./man1", "output directory for generated man pages")
	return cmd
}
