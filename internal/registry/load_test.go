package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// helper
func writeFileT(t *testing.T, p, s string) {
	t.Helper()
	if err := os.WriteFile(p, []byte(s), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
}

func TestLoad_Valid(t *testing.T) {
	td := t.TempDir()
	path := filepath.Join(td, "registry.yaml")

	writeFileT(t, path, `
version: 1
commands:
  - name: publish
    help: Publish the stack to a public branch
    category: stack
    args:
      - keyword: all_branches
    options:
      - short: b
        long: branch
        help: use BRANCH instead of the default branch
        args:
          - keyword: stg_branches
      - long: overwrite
        help: overwrite the existing public branch
  - name: fixup
    help: Fold a quick fix into a patch
    args:
      - range: {start: applied_patches, end: unapplied_patches}
      - path: files
      - values: [soft, hard]
`)

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	entries := reg.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Name != "publish" || entries[1].Name != "fixup" {
		t.Fatalf("entry order = %q, %q", entries[0].Name, entries[1].Name)
	}

	pub, err := reg.Lookup("publish")
	if err != nil {
		t.Fatalf("Lookup(publish): %v", err)
	}
	if len(pub.Args) != 1 {
		t.Fatalf("publish args = %d, want 1", len(pub.Args))
	}
	if kw, ok := pub.Args[0].(Keyword); !ok || kw != "all_branches" {
		t.Fatalf("publish arg = %#v", pub.Args[0])
	}
	if len(pub.Options) != 2 {
		t.Fatalf("publish options = %d, want 2", len(pub.Options))
	}
	if pub.Options[1].Short != "" || pub.Options[1].Long != "overwrite" {
		t.Fatalf("long-only option parsed as %+v", pub.Options[1])
	}

	fix, err := reg.Lookup("fixup")
	if err != nil {
		t.Fatalf("Lookup(fixup): %v", err)
	}
	if len(fix.Args) != 3 {
		t.Fatalf("fixup args = %d, want 3", len(fix.Args))
	}
	if r, ok := fix.Args[0].(Range); !ok || r.Start != "applied_patches" || r.End != "unapplied_patches" {
		t.Fatalf("fixup arg 0 = %#v", fix.Args[0])
	}
	if p, ok := fix.Args[1].(Path); !ok || p.Kind != PathFile {
		t.Fatalf("fixup arg 1 = %#v", fix.Args[1])
	}
	if v, ok := fix.Args[2].(Values); !ok || len(v) != 2 {
		t.Fatalf("fixup arg 2 = %#v", fix.Args[2])
	}
}

func TestLoad_AggregatesIssues(t *testing.T) {
	td := t.TempDir()
	path := filepath.Join(td, "registry.yaml")

	writeFileT(t, path, `
version: 2
commands:
  - name: one
    help: first
    args:
      - keyword: nope
      - path: socket
  - name: one
    help: duplicate
  - name: two
    help: second
    options:
      - help: flagless
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	for _, want := range []string{
		"version must be 1",
		`unknown keyword "nope"`,
		"path must be files|dir|repo",
		`duplicate command name "one"`,
		"needs a short or a long flag",
	} {
		if !strings.Contains(verr.Error(), want) {
			t.Fatalf("issues missing %q:\n%s", want, verr.Error())
		}
	}
}

func TestLoad_ArgNodeMustSetOneVariant(t *testing.T) {
	td := t.TempDir()
	path := filepath.Join(td, "registry.yaml")

	writeFileT(t, path, `
version: 1
commands:
  - name: odd
    help: both variants set
    args:
      - keyword: commit
        path: files
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "exactly one of range|values|path|keyword") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoad_RejectsUnknownRangeEndpoint(t *testing.T) {
	td := t.TempDir()
	path := filepath.Join(td, "registry.yaml")

	writeFileT(t, path, `
version: 1
commands:
  - name: typo
    help: misspelled endpoint
    args:
      - range: {start: applied_patches, end: unaplied_patches}
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), `unknown range endpoint "unaplied_patches"`) {
		t.Fatalf("err = %v", err)
	}
}

func TestCombine_LookupOrder(t *testing.T) {
	td := t.TempDir()
	path := filepath.Join(td, "registry.yaml")
	writeFileT(t, path, `
version: 1
commands:
  - name: publish
    help: Publish the stack to a public branch
`)

	ext, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	reg := Combine(Builtin(), ext)

	// builtin modules still resolve
	if _, err := reg.Lookup("series"); err != nil {
		t.Fatalf("Lookup(series): %v", err)
	}
	// extension command resolves too
	if _, err := reg.Lookup("publish"); err != nil {
		t.Fatalf("Lookup(publish): %v", err)
	}
	// extension entries list after the builtin ones
	entries := reg.Entries()
	if entries[len(entries)-1].Name != "publish" {
		t.Fatalf("last entry = %q, want publish", entries[len(entries)-1].Name)
	}
}
