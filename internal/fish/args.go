// Package fish renders StGit's command registry and alias table into a
// fish completion script.
package fish

import (
	"fmt"
	"strings"

	"github.com/sirlantis/stgit/internal/registry"
)

// UnknownArgKindError reports an argument specification outside the known
// variants. It means the registry and this renderer have drifted apart;
// generation aborts rather than silently dropping the argument.
type UnknownArgKindError struct {
	Arg registry.Arg
}

func (e *UnknownArgKindError) Error() string {
	return fmt.Sprintf("unknown arg kind: %#v", e.Arg)
}

// providerFunc maps a dynamic keyword to its provider function in the
// script preamble. Stable by construction: distinct keywords yield
// distinct names.
func providerFunc(keyword string) string {
	return "__fish_stg_" + keyword
}

// completionsFromArgs turns an argument list into the space-joined
// completion expression for one directive. Literal values pass through
// verbatim, recognized keywords become provider calls, range endpoints
// contribute one call each, path args contribute nothing (they only
// influence the file-completion flag).
func completionsFromArgs(args []registry.Arg) (string, error) {
	var completions []string
	for _, arg := range args {
		switch a := arg.(type) {
		case registry.Range:
			for _, endpoint := range []string{a.Start, a.End} {
				if registry.IsDynamicKeyword(endpoint) {
					completions = append(completions, "("+providerFunc(endpoint)+")")
				}
			}
		case registry.Values:
			completions = append(completions, a...)
		case registry.Path:
			// advisory only; see fileCompletionFlag
		case registry.Keyword:
			if !registry.IsDynamicKeyword(string(a)) {
				return "", &UnknownArgKindError{Arg: arg}
			}
			completions = append(completions, "("+providerFunc(string(a))+")")
		default:
			return "", &UnknownArgKindError{Arg: arg}
		}
	}
	return strings.Join(completions, " "), nil
}

// fileCompletionFlag picks -r (path completion) when any argument in the
// list is path-like, -f otherwise. One path argument switches the whole
// directive.
func fileCompletionFlag(args []registry.Arg) string {
	for _, arg := range args {
		if _, ok := arg.(registry.Path); ok {
			return "-r"
		}
	}
	return "-f"
}
