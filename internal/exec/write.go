package exec

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic writes content to outputPath atomically (same-dir temp + fsync + rename).
func WriteAtomic(outputPath string, content string) error {
	// ensure parent dir exists
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("mkdir %q: %w", filepath.Dir(outputPath), err)
	}
	// atomic write: same-dir temp + fsync + rename
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".stgcomp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	// buffered writer
	w := bufio.NewWriter(tmp)
	if _, err := w.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp: %w", err)
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("flush temp: %w", err)
	}

	// fsync temp file
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp: %w", err)
	}

	// rename over final
	if err := os.Rename(tmpName, outputPath); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename %q -> %q: %w", tmpName, outputPath, err)
	}

	// best-effort fsync the directory
	if dir, err := os.Open(filepath.Dir(outputPath)); err == nil {
		_ = dir.Sync()
		_ = dir.Close()
	}

	return nil
}

// SHA256OfFiles returns a hex sha256 over the concatenated file contents.
// The watcher uses it to skip regeneration when inputs are byte-identical.
// Missing files hash as empty, so an optional input appearing later still
// counts as a change.
func SHA256OfFiles(files []string) (string, error) {
	h := sha256.New()
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("open %q: %w", path, err)
		}
		if _, err := io.Copy(h, f); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("read %q: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close %q: %w", path, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
