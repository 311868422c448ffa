package registry

import "fmt"

// Arg describes what one positional slot of a command or option accepts.
// It is a closed sum type: the four variants below are the only ones the
// renderer knows how to handle. The isArg marker keeps outside packages
// from adding a fifth.
type Arg interface {
	isArg()
}

// Range is a pair of named endpoints ("from..to" style arguments). Each
// endpoint that names a recognized dynamic keyword gets its own provider
// call in the completion expression.
type Range struct {
	Start string
	End   string
}

// Values is a fixed list of literal completion strings.
type Values []string

// PathKind enumerates the path-like argument flavours.
type PathKind string

const (
	PathFile PathKind = "files"
	PathDir  PathKind = "dir"
	PathRepo PathKind = "repo"
)

// Path marks an argument that accepts filesystem paths. It contributes no
// completion values; it only switches the directive to path completion.
type Path struct {
	Kind PathKind
}

// Keyword names a single recognized dynamic keyword, e.g. "commit" or
// "known_files".
type Keyword string

func (Range) isArg()   {}
func (Values) isArg()  {}
func (Path) isArg()    {}
func (Keyword) isArg() {}

// Option is one flag of a command. A well-formed option carries at least
// one of Short/Long; the builtin table guarantees that, the YAML loader
// validates it.
type Option struct {
	Short string // single character, without the leading dash
	Long  string // multi character, without the leading dashes
	Help  string
	Args  []Arg // arguments the option itself accepts, usually zero or one
}

// Command is one stg subcommand with its positional arguments and options,
// both in declaration order.
type Command struct {
	Name    string
	Help    string
	Args    []Arg
	Options []Option
}

// Entry is one row of the command registry: the user-visible name plus the
// module it resolves through. "import" resolves through module "imprt"
// because of the historical module naming.
type Entry struct {
	Name     string
	Module   string
	Category string // repo | stack | patch | wc
	Flags    []string
}

// Registry lists commands and resolves registry entries to full command
// records. Implementations: the builtin table and YAML-loaded extensions.
type Registry interface {
	Entries() []Entry
	Lookup(module string) (*Command, error)
}

// ValidationError aggregates multiple field issues into one error.
type ValidationError struct {
	Issues []string
}

func (v *ValidationError) Error() string {
	s := "registry invalid:"
	for _, iss := range v.Issues {
		s += "\n  - " + iss
	}
	return s
}

func (v *ValidationError) add(format string, a ...any) {
	v.Issues = append(v.Issues, fmt.Sprintf(format, a...))
}

func (v *ValidationError) ok() bool { return len(v.Issues) == 0 }
