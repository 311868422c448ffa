package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirlantis/stgit/internal/config"
	"github.com/sirlantis/stgit/internal/fish"
	"github.com/sirlantis/stgit/internal/registry"
)

// write helper
func writeFileT(t *testing.T, p, s string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, []byte(s), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
}

const testOverlay = `
[[alias]]
name = "co"
command = "stg goto"
`

const testRegistry = `
version: 1
commands:
  - name: publish
    help: Publish the stack to a public branch
    args:
      - keyword: all_branches
`

func TestValidate_OK(t *testing.T) {
	td := t.TempDir()
	cfg := filepath.Join(td, "aliases.toml")
	reg := filepath.Join(td, "registry.yaml")
	writeFileT(t, cfg, testOverlay)
	writeFileT(t, reg, testRegistry)

	root := NewRootCmd("test")
	root.SetArgs([]string{"validate", "-c", cfg, "-r", reg})
	if err := root.Execute(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
}

func TestValidate_BadRegistry(t *testing.T) {
	td := t.TempDir()
	reg := filepath.Join(td, "registry.yaml")
	writeFileT(t, reg, `
version: 1
commands:
  - name: broken
    help: bad keyword
    args:
      - keyword: nope
`)

	root := NewRootCmd("test")
	root.SetArgs([]string{"validate", "-r", reg})
	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), `unknown keyword "nope"`) {
		t.Fatalf("err = %v", err)
	}
}

func TestGenerate_ToFile(t *testing.T) {
	td := t.TempDir()
	cfg := filepath.Join(td, "aliases.toml")
	reg := filepath.Join(td, "registry.yaml")
	out := filepath.Join(td, "stg.fish")
	writeFileT(t, cfg, testOverlay)
	writeFileT(t, reg, testRegistry)

	root := NewRootCmd("test")
	root.SetArgs([]string{"generate", "-c", cfg, "-r", reg, "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	script := string(b)

	if !strings.HasPrefix(script, "# Fish shell completion for StGit (stg)\n") {
		t.Fatal("script preamble missing")
	}
	if !strings.Contains(script, `-a co -d 'Alias for "stg goto"'`) {
		t.Fatal("overlay alias missing from script")
	}
	if !strings.Contains(script, "-a publish -d 'Publish the stack to a public branch'") {
		t.Fatal("extension command missing from script")
	}
	// builtin commands still present
	if !strings.Contains(script, "-a series -d 'Print the patch series'") {
		t.Fatal("builtin command missing from script")
	}
}

func TestGenerate_MatchesDirectRender(t *testing.T) {
	td := t.TempDir()
	cfg := filepath.Join(td, "aliases.toml")
	out := filepath.Join(td, "stg.fish")
	writeFileT(t, cfg, testOverlay)

	root := NewRootCmd("test")
	root.SetArgs([]string{"generate", "-c", cfg, "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	defaults, err := config.LoadOverlay(cfg)
	if err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}
	var want bytes.Buffer
	if err := fish.WriteScript(&want, registry.Builtin(), defaults); err != nil {
		t.Fatalf("WriteScript: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(got, want.Bytes()) {
		t.Fatal("generated file differs from direct render")
	}
}

func TestMan_WritesPages(t *testing.T) {
	td := t.TempDir()

	root := NewRootCmd("test")
	root.SetArgs([]string{"man", "-o", td})
	if err := root.Execute(); err != nil {
		t.Fatalf("man failed: %v", err)
	}

	for _, page := range []string{"stgcomp.1", "stgcomp-generate.1", "stgcomp-watch.1"} {
		if _, err := os.Stat(filepath.Join(td, page)); err != nil {
			t.Fatalf("missing man page %s: %v", page, err)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	td := t.TempDir()
	cfg := filepath.Join(td, "aliases.toml")
	writeFileT(t, cfg, testOverlay)

	render := func(out string) []byte {
		root := NewRootCmd("test")
		root.SetArgs([]string{"generate", "-c", cfg, "-o", out})
		if err := root.Execute(); err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		b, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		return b
	}

	first := render(filepath.Join(td, "one.fish"))
	second := render(filepath.Join(td, "two.fish"))
	if !bytes.Equal(first, second) {
		t.Fatal("two runs on identical inputs differ")
	}
}
