package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Extension registries let users complete stg wrapper scripts and local
// commands without patching the builtin table. The file format:
//
//	version: 1
//	commands:
//	  - name: publish
//	    help: Publish the stack to a public branch
//	    category: stack
//	    args:
//	      - keyword: all_branches
//	    options:
//	      - short: b
//	        long: branch
//	        help: use BRANCH instead of the default branch
//	        args:
//	          - keyword: stg_branches
//
// Each arg node carries exactly one of: range, values, path, keyword.

type fileRegistry struct {
	entries  []Entry
	byModule map[string]*Command
}

type yamlRegistry struct {
	Version  int           `yaml:"version"`
	Commands []yamlCommand `yaml:"commands"`
}

type yamlCommand struct {
	Name     string       `yaml:"name"`
	Help     string       `yaml:"help"`
	Category string       `yaml:"category,omitempty"`
	Args     []yamlArg    `yaml:"args,omitempty"`
	Options  []yamlOption `yaml:"options,omitempty"`
}

type yamlOption struct {
	Short string    `yaml:"short,omitempty"`
	Long  string    `yaml:"long,omitempty"`
	Help  string    `yaml:"help"`
	Args  []yamlArg `yaml:"args,omitempty"`
}

type yamlArg struct {
	Range   *yamlRange `yaml:"range,omitempty"`
	Values  *[]string  `yaml:"values,omitempty"`
	Path    string     `yaml:"path,omitempty"`
	Keyword string     `yaml:"keyword,omitempty"`
}

type yamlRange struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Load reads an extension registry from disk and validates it.
func Load(path string) (Registry, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}

	var raw yamlRegistry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse registry %q: %w", path, err)
	}

	verr := &ValidationError{}
	if raw.Version != 1 {
		verr.add("version must be 1 (got %d)", raw.Version)
	}

	fr := &fileRegistry{byModule: make(map[string]*Command, len(raw.Commands))}
	seen := map[string]struct{}{}
	for idx, yc := range raw.Commands {
		name := strings.TrimSpace(yc.Name)
		if name == "" {
			verr.add("commands[%d].name is required and must be non-empty", idx)
			continue
		}
		if _, dup := seen[name]; dup {
			verr.add("duplicate command name %q", name)
			continue
		}
		seen[name] = struct{}{}

		cmd := &Command{Name: name, Help: yc.Help}
		cmd.Args = convertArgs(verr, name, "args", yc.Args)
		for oidx, yo := range yc.Options {
			if yo.Short == "" && yo.Long == "" {
				verr.add("%s: options[%d] needs a short or a long flag", name, oidx)
				continue
			}
			if len(yo.Short) > 1 {
				verr.add("%s: options[%d] short flag must be a single character (got %q)", name, oidx, yo.Short)
			}
			cmd.Options = append(cmd.Options, Option{
				Short: yo.Short,
				Long:  yo.Long,
				Help:  yo.Help,
				Args:  convertArgs(verr, name, fmt.Sprintf("options[%d].args", oidx), yo.Args),
			})
		}

		fr.entries = append(fr.entries, Entry{
			Name:     name,
			Module:   name,
			Category: yc.Category,
		})
		fr.byModule[name] = cmd
	}

	if !verr.ok() {
		return nil, verr
	}
	return fr, nil
}

// convertArgs turns yaml arg nodes into the Arg sum type, checking that
// each node sets exactly one variant and names only known keywords,
// range endpoints and path kinds.
func convertArgs(verr *ValidationError, cmd, where string, in []yamlArg) []Arg {
	var out []Arg
	for i, ya := range in {
		set := 0
		if ya.Range != nil {
			set++
		}
		if ya.Values != nil {
			set++
		}
		if ya.Path != "" {
			set++
		}
		if ya.Keyword != "" {
			set++
		}
		if set != 1 {
			verr.add("%s: %s[%d] must set exactly one of range|values|path|keyword", cmd, where, i)
			continue
		}
		switch {
		case ya.Range != nil:
			// the renderer would drop an unrecognized endpoint silently, so
			// a typo here gets caught at load time instead
			bad := false
			for _, ep := range []string{ya.Range.Start, ya.Range.End} {
				if !IsDynamicKeyword(ep) {
					verr.add("%s: %s[%d] unknown range endpoint %q", cmd, where, i, ep)
					bad = true
				}
			}
			if bad {
				continue
			}
			out = append(out, Range{Start: ya.Range.Start, End: ya.Range.End})
		case ya.Values != nil:
			out = append(out, Values(*ya.Values))
		case ya.Path != "":
			switch PathKind(ya.Path) {
			case PathFile, PathDir, PathRepo:
				out = append(out, Path{Kind: PathKind(ya.Path)})
			default:
				verr.add("%s: %s[%d] path must be files|dir|repo (got %q)", cmd, where, i, ya.Path)
			}
		case ya.Keyword != "":
			if !IsDynamicKeyword(ya.Keyword) {
				verr.add("%s: %s[%d] unknown keyword %q", cmd, where, i, ya.Keyword)
				continue
			}
			out = append(out, Keyword(ya.Keyword))
		}
	}
	return out
}

func (r *fileRegistry) Entries() []Entry { return r.entries }

func (r *fileRegistry) Lookup(module string) (*Command, error) {
	cmd, ok := r.byModule[module]
	if !ok {
		return nil, fmt.Errorf("no command module %q in the extension registry", module)
	}
	return cmd, nil
}

// combined chains registries; entries concatenate in order, lookups try
// each registry in turn.
type combined struct {
	regs []Registry
}

// Combine stitches several registries into one. The builtin set usually
// goes first so extension commands list after the stock ones.
func Combine(regs ...Registry) Registry {
	return &combined{regs: regs}
}

func (c *combined) Entries() []Entry {
	var out []Entry
	for _, r := range c.regs {
		out = append(out, r.Entries()...)
	}
	return out
}

func (c *combined) Lookup(module string) (*Command, error) {
	var firstErr error
	for _, r := range c.regs {
		cmd, err := r.Lookup(module)
		if err == nil {
			return cmd, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = fmt.Errorf("no command module %q", module)
	}
	return nil, firstErr
}
