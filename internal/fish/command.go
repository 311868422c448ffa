package fish

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirlantis/stgit/internal/registry"
)

// scriptWriter joins directive fields with single spaces, keeping empty
// fields in place so token positions never shift. The first write error
// sticks; later puts become no-ops.
type scriptWriter struct {
	w   io.Writer
	err error
}

func (sw *scriptWriter) put(fields ...string) {
	if sw.err != nil {
		return
	}
	_, sw.err = io.WriteString(sw.w, strings.Join(fields, " ")+"\n")
}

// optionTokens derives the short/long flag tokens. A missing short flag
// renders as four spaces, a missing long flag as the empty string; both
// keep their slot in the directive.
func optionTokens(opt registry.Option) (short, long string) {
	short = "    "
	if opt.Short != "" {
		short = "-s " + opt.Short
	}
	if opt.Long != "" {
		long = "-l " + opt.Long
	}
	return short, long
}

// option emits one completion directive for an option, scoped to cmdName.
func (sw *scriptWriter) option(cmdName string, opt registry.Option) error {
	completions, err := completionsFromArgs(opt.Args)
	if err != nil {
		return err
	}
	extra := ""
	if completions != "" {
		extra = "-xa '" + completions + "'"
	}
	short, long := optionTokens(opt)
	sw.put(
		"complete",
		fileCompletionFlag(opt.Args),
		"-c stg",
		"-n '__fish_seen_subcommand_from "+cmdName+"'",
		short,
		long,
		"-d '"+opt.Help+"'",
		extra,
	)
	return nil
}

// command emits the directive block for one command: separator comment,
// subcommand registration, positional completion, help flag, then each
// option in declaration order. Registration comes first; the option
// directives' scoping predicate assumes the subcommand was already seen.
func (sw *scriptWriter) command(name string, cmd *registry.Command) error {
	sw.put("")
	sw.put("### " + name)
	sw.put(
		"complete    -c stg -n '__fish_use_subcommand' -x",
		fmt.Sprintf("-a %s -d '%s'", name, cmd.Help),
	)

	completions, err := completionsFromArgs(cmd.Args)
	if err != nil {
		return err
	}
	extra := ""
	if completions != "" {
		extra = "-ra '" + completions + "'"
	}
	sw.put(
		"complete",
		fileCompletionFlag(cmd.Args),
		"-c stg",
		"-n '__fish_seen_subcommand_from "+name+"'",
		extra,
	)
	sw.put(
		fmt.Sprintf("complete -f -c stg -n '__fish_seen_subcommand_from %s'", name),
		fmt.Sprintf("-s h -l help -d 'show detailed help for %s'", name),
	)

	for _, opt := range cmd.Options {
		if err := sw.option(name, opt); err != nil {
			return err
		}
	}
	return nil
}
