package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sirlantis/stgit/internal/config"
	"github.com/sirlantis/stgit/internal/registry"
)

const defaultRelConfig = ".config/stgcomp/aliases.toml"

// defaultConfigPath returns "$HOME/.config/stgcomp/aliases.toml", or
// "aliases.toml" if $HOME is unknown.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "aliases.toml"
	}
	return filepath.Join(home, defaultRelConfig)
}

// expandPath expands "~" and environment variables in a path.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return os.ExpandEnv(p)
}

// resolveConfig applies precedence: flag > STGCOMP_CONFIG > defaultConfigPath.
// The returned bool says whether the path was chosen explicitly; the
// default path is only consulted when the file actually exists.
func resolveConfig(cmd *cobra.Command) (string, bool) {
	if f := cmd.Root().PersistentFlags().Lookup("config"); f != nil && f.Changed {
		cp, _ := cmd.Root().PersistentFlags().GetString("config")
		return expandPath(cp), true
	}
	if v := os.Getenv("STGCOMP_CONFIG"); v != "" {
		return expandPath(v), true
	}
	return defaultConfigPath(), false
}

// loadInputs resolves the command registry (builtin + optional YAML
// extensions) and the defaults table (builtin + optional TOML overlay)
// for one invocation.
func loadInputs(cmd *cobra.Command) (registry.Registry, config.Defaults, error) {
	reg := registry.Builtin()
	if rp, _ := cmd.Root().PersistentFlags().GetString("registry"); rp != "" {
		ext, err := registry.Load(expandPath(rp))
		if err != nil {
			return nil, nil, fmt.Errorf("load registry: %w", err)
		}
		reg = registry.Combine(reg, ext)
	}

	defaults := config.Builtin()
	cfgPath, explicit := resolveConfig(cmd)
	if explicit {
		d, err := config.LoadOverlay(cfgPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		defaults = d
	} else if _, err := os.Stat(cfgPath); err == nil {
		d, err := config.LoadOverlay(cfgPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		defaults = d
	}
	return reg, defaults, nil
}

// NewRootCmd sets up the base "stgcomp" command tree.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stgcomp",
		Short: "stgcomp — generate the fish completion script for StGit (stg)",
		Long: `stgcomp renders StGit's command registry and alias table into a fish
completion script.

The builtin registry covers the stock stg commands. Two optional files
extend it:
  - a YAML extension registry (-r) adding local commands
  - a TOML alias overlay (-c) adding user aliases

Typical workflow:
  1) stgcomp generate > ~/.config/fish/completions/stg.fish
  2) put extra aliases in ~/.config/stgcomp/aliases.toml
  3) stgcomp watch -o ~/.config/fish/completions/stg.fish`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	cmd.SetVersionTemplate("stgcomp version {{.Version}}\n")

	cmd.PersistentFlags().StringP("config", "c", defaultConfigPath(), "path to the TOML alias overlay (env STGCOMP_CONFIG)")
	cmd.PersistentFlags().StringP("registry", "r", "", "path to a YAML extension registry")
	cmd.PersistentFlags().StringP("chdir", "C", "", "change working directory before reading inputs")

	// Honor --chdir early; also fold env into the flag if user didn't pass -c.
	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		if cd, _ := c.Flags().GetString("chdir"); cd != "" {
			if err := os.Chdir(cd); err != nil {
				return fmt.Errorf("unable to chdir: %w", err)
			}
		}
		return nil
	}

	// Optional: "version" alias so both "--version" and "version" work
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("stgcomp version %s\n", version)
		},
	})

	// attach subcommands
	cmd.AddCommand(
		newGenerateCmd(),
		newWatchCmd(),
		newValidateCmd(),
		newManCmd(cmd),
		newCompletionCmd(cmd),
	)

	// default action with no subcommand: show help
	cmd.Run = func(cmd *cobra.Command, _ []string) { _ = cmd.Help() }

	return cmd
}
