package fish

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirlantis/stgit/internal/config"
	"github.com/sirlantis/stgit/internal/registry"
)

// WriteScript writes the complete completion script: preamble, alias
// predicate and dispatcher, alias directives, the help-subcommand
// listing, then one directive block per registry entry. Output is
// deterministic; identical inputs yield byte-identical scripts.
//
// Any error aborts immediately and leaves the stream in an undefined
// partial state; callers that need all-or-nothing output should render
// into a buffer first.
func WriteScript(w io.Writer, reg registry.Registry, defaults config.Defaults) error {
	aliases := defaults.Aliases()
	names := make([]string, 0, len(aliases))
	for _, a := range aliases {
		names = append(names, a.Name)
	}

	sw := &scriptWriter{w: w}
	sw.put(preamble)
	sw.put(fmt.Sprintf(isAliasFunc, strings.Join(names, " ")))

	// the dispatcher strips "stg <alias>" from the command line, prepends
	// the target tokens and hands the rest back to fish's own completion
	sw.put(completeAliasHead)
	for _, a := range aliases {
		sw.put("        case", a.Name)
		sw.put("            set --prepend tokens", a.Target)
	}
	sw.put(completeAliasTail)

	sw.put("### Aliases: " + strings.Join(names, " "))
	sw.put(
		"complete    -c stg -n '__fish_stg_is_alias' -x",
		"-a '(__fish_stg_complete_alias)'",
	)
	for _, a := range aliases {
		sw.put(
			"complete    -c stg -n '__fish_use_subcommand' -x",
			fmt.Sprintf("-a %s -d 'Alias for \"%s\"'", a.Name, a.Target),
		)
	}
	sw.put("")

	sw.put("### help")
	sw.put(
		"complete -f -c stg -n '__fish_use_subcommand' -x",
		"-a help -d 'print the detailed command usage'",
	)
	entries := reg.Entries()
	for _, e := range entries {
		cmd, err := reg.Lookup(e.Module)
		if err != nil {
			return err
		}
		sw.put(
			"complete -f -c stg -n '__fish_seen_subcommand_from help'",
			fmt.Sprintf("-a %s -d '%s'", e.Name, cmd.Help),
		)
	}
	for _, a := range aliases {
		sw.put(
			"complete -f -c stg -n '__fish_seen_subcommand_from help'",
			fmt.Sprintf("-a %s -d 'Alias for \"%s\"'", a.Name, a.Target),
		)
	}

	for _, e := range entries {
		cmd, err := reg.Lookup(e.Module)
		if err != nil {
			return err
		}
		if err := sw.command(e.Name, cmd); err != nil {
			return err
		}
	}
	return sw.err
}
