package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// The overlay file adds user aliases on top of the builtin defaults:
//
//	[[alias]]
//	name = "co"
//	command = "stg goto"
//
// An array of tables keeps file order; a plain TOML table would not.

type overlayFile struct {
	Alias []overlayAlias `toml:"alias"`
}

type overlayAlias struct {
	Name    string `toml:"name"`
	Command string `toml:"command"`
}

// LoadOverlay reads a TOML alias file and returns the builtin defaults
// with the file's aliases appended in file order.
func LoadOverlay(path string) (Defaults, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}

	var raw overlayFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}

	out := Builtin()
	for i, a := range raw.Alias {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: alias[%d].name is required", path, i)
		}
		if strings.TrimSpace(a.Command) == "" {
			return nil, fmt.Errorf("%s: alias[%d].command is required", path, i)
		}
		out = append(out, Default{Key: aliasPrefix + name, Values: []string{a.Command}})
	}
	return out, nil
}
