// Package config holds the stg configuration-defaults table the completion
// script is derived from: a small ordered key/value list mirroring StGit's
// shipped defaults, optionally extended from a user file.
package config

import "strings"

// Default is one row of the defaults table: a dotted key and its values.
type Default struct {
	Key    string
	Values []string
}

// Defaults is the ordered defaults table. Order is significant: aliases
// render in table order, never sorted.
type Defaults []Default

// aliasPrefix is the key namespace holding command aliases.
const aliasPrefix = "stgit.alias."

// builtinDefaults mirrors the defaults StGit ships with. The non-alias
// rows exist so the alias filter has something to skip.
var builtinDefaults = Defaults{
	{Key: "stgit.autoimerge", Values: []string{"no"}},
	{Key: "stgit.keepoptimized", Values: []string{"no"}},
	{Key: "stgit.shortnr", Values: []string{"5"}},
	{Key: "stgit.pager", Values: []string{"less"}},
	{Key: "stgit.pull-policy", Values: []string{"pull"}},
	{Key: "stgit.pullcmd", Values: []string{"git pull"}},
	{Key: "stgit.fetchcmd", Values: []string{"git fetch"}},
	{Key: "stgit.smtpserver", Values: []string{"localhost:25"}},
	{Key: "stgit.smtpdelay", Values: []string{"5"}},
	{Key: "stgit.alias.add", Values: []string{"git add"}},
	{Key: "stgit.alias.mv", Values: []string{"git mv"}},
	{Key: "stgit.alias.resolved", Values: []string{"git add"}},
	{Key: "stgit.alias.rm", Values: []string{"git rm"}},
	{Key: "stgit.alias.status", Values: []string{"git status -s"}},
}

// Builtin returns a copy of the shipped defaults table.
func Builtin() Defaults {
	out := make(Defaults, len(builtinDefaults))
	copy(out, builtinDefaults)
	return out
}

// Alias is a user-defined shorthand: Name expands to the Target command
// line. Target is stored verbatim; an alias pointing at another alias is
// not chased.
type Alias struct {
	Name   string
	Target string
}

// Aliases filters the defaults table down to the alias namespace,
// preserving table order. The first value of each row is the target; rows
// with no values are skipped.
func (d Defaults) Aliases() []Alias {
	var out []Alias
	for _, row := range d {
		if !strings.HasPrefix(row.Key, aliasPrefix) {
			continue
		}
		if len(row.Values) == 0 {
			continue
		}
		out = append(out, Alias{
			Name:   strings.TrimPrefix(row.Key, aliasPrefix),
			Target: row.Values[0],
		})
	}
	return out
}
