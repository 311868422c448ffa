package exec

import (
	"os"
	"path/filepath"
	"testing"
)

// helper
func writeFileT(t *testing.T, p, s string) {
	t.Helper()
	if err := os.WriteFile(p, []byte(s), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
}

func TestWriteAtomic_CreatesParentDirs(t *testing.T) {
	td := t.TempDir()
	out := filepath.Join(td, "deep", "nested", "stg.fish")

	if err := WriteAtomic(out, "hello\n"); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "hello\n" {
		t.Fatalf("content = %q", string(b))
	}
}

func TestWriteAtomic_ReplacesExisting(t *testing.T) {
	td := t.TempDir()
	out := filepath.Join(td, "stg.fish")
	writeFileT(t, out, "old")

	if err := WriteAtomic(out, "new"); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}
	b, _ := os.ReadFile(out)
	if string(b) != "new" {
		t.Fatalf("content = %q, want new", string(b))
	}

	// no temp litter
	entries, err := os.ReadDir(td)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("leftover files in %s: %d entries", td, len(entries))
	}
}

func TestSHA256OfFiles_TracksContent(t *testing.T) {
	td := t.TempDir()
	a := filepath.Join(td, "a.yaml")
	b := filepath.Join(td, "b.toml")
	writeFileT(t, a, "one")
	writeFileT(t, b, "two")

	sum1, err := SHA256OfFiles([]string{a, b})
	if err != nil {
		t.Fatalf("SHA256OfFiles: %v", err)
	}
	sum2, err := SHA256OfFiles([]string{a, b})
	if err != nil {
		t.Fatalf("SHA256OfFiles: %v", err)
	}
	if sum1 != sum2 {
		t.Fatal("checksum not deterministic")
	}

	writeFileT(t, b, "changed")
	sum3, err := SHA256OfFiles([]string{a, b})
	if err != nil {
		t.Fatalf("SHA256OfFiles: %v", err)
	}
	if sum3 == sum1 {
		t.Fatal("checksum ignored content change")
	}
}

func TestSHA256OfFiles_MissingFileHashesAsEmpty(t *testing.T) {
	td := t.TempDir()
	a := filepath.Join(td, "a.yaml")
	writeFileT(t, a, "one")

	with, err := SHA256OfFiles([]string{a, filepath.Join(td, "absent.toml")})
	if err != nil {
		t.Fatalf("SHA256OfFiles: %v", err)
	}
	without, err := SHA256OfFiles([]string{a})
	if err != nil {
		t.Fatalf("SHA256OfFiles: %v", err)
	}
	if with != without {
		t.Fatal("missing file should not change the checksum")
	}
}
