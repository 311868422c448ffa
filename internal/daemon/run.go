// Package daemon regenerates the completion script whenever its input
// files change.
package daemon

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sirlantis/stgit/internal/config"
	executor "github.com/sirlantis/stgit/internal/exec"
	"github.com/sirlantis/stgit/internal/fish"
	"github.com/sirlantis/stgit/internal/registry"
)

type Options struct {
	Trace    bool
	Debounce time.Duration
}

// Inputs names the files feeding the generator and the script they feed.
// RegistryPath and ConfigPath are optional, but at least one must be set;
// with the builtin tables alone there is nothing that can change.
type Inputs struct {
	RegistryPath string // YAML extension registry
	ConfigPath   string // TOML alias overlay
	Output       string
}

// Run writes the script once, then watches the input directories and
// rewrites it on content changes. It exits cleanly on SIGINT/SIGTERM.
func Run(in Inputs, opts Options) error {
	if in.Output == "" {
		return fmt.Errorf("watch mode needs an output path")
	}
	if in.RegistryPath == "" && in.ConfigPath == "" {
		return fmt.Errorf("watch mode needs a registry or config file to watch")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 200 * time.Millisecond
	}

	inputs := inputFiles(in)
	ref := &refresher{in: in, inputs: inputs}

	// initial render
	if _, err := ref.refresh(); err != nil {
		return err
	}
	if opts.Trace {
		fmt.Fprintf(os.Stderr, "stgcomp(watch): wrote %s\n", in.Output)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// watch the directory of each input file
	dirs := map[string]struct{}{}
	for _, p := range inputs {
		dirs[filepath.Dir(p)] = struct{}{}
	}
	for d := range dirs {
		_ = os.MkdirAll(d, 0o755)
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watch add %q: %w", d, err)
		}
	}
	if opts.Trace {
		for d := range dirs {
			fmt.Fprintf(os.Stderr, "stgcomp(watch): watching %s\n", d)
		}
	}

	// signal handling
	sigc := make(chan os.Signal, 2)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	// debounce bookkeeping
	var mu sync.Mutex
	var timer *time.Timer

	flush := func() {
		wrote, err := ref.refresh()
		if err != nil {
			fmt.Fprintf(os.Stderr, "stgcomp(watch): %v\n", err)
			return
		}
		if opts.Trace {
			if wrote {
				fmt.Fprintf(os.Stderr, "stgcomp(watch): wrote %s\n", in.Output)
			} else {
				fmt.Fprintf(os.Stderr, "stgcomp(watch): inputs unchanged, skipped\n")
			}
		}
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case err := <-w.Errors:
				fmt.Fprintf(os.Stderr, "stgcomp(watch): watcher error: %v\n", err)
			case ev := <-w.Events:
				if !watchedFile(ev.Name, inputs) {
					continue
				}
				if opts.Trace {
					fmt.Fprintf(os.Stderr, "stgcomp(watch): fs %s %s\n", ev.Op.String(), ev.Name)
				}
				mu.Lock()
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(opts.Debounce, flush)
				mu.Unlock()
			}
		}
	}()

	// block until signal
	s := <-sigc
	if opts.Trace {
		fmt.Fprintf(os.Stderr, "stgcomp(watch): signal %v, exiting\n", s)
	}
	close(done)
	return nil
}

// refresher regenerates the script when the watched inputs' checksum
// changes. One instance lives for the whole watch session; lastSum is
// guarded because the debounce timer fires on its own goroutine.
type refresher struct {
	in     Inputs
	inputs []string

	mu      sync.Mutex
	lastSum string
}

// refresh reports whether the script was rewritten. Byte-identical
// inputs are skipped; editors that touch files without changing the
// content must not churn the output.
func (r *refresher) refresh() (bool, error) {
	sum, err := executor.SHA256OfFiles(r.inputs)
	if err != nil {
		return false, err
	}
	r.mu.Lock()
	unchanged := sum == r.lastSum
	if !unchanged {
		r.lastSum = sum
	}
	r.mu.Unlock()
	if unchanged {
		return false, nil
	}
	if err := generate(r.in); err != nil {
		return false, err
	}
	return true, nil
}

// generate loads the inputs, renders the full script into memory and only
// then writes it, so a failed run never leaves a truncated script behind.
func generate(in Inputs) error {
	reg := registry.Builtin()
	if in.RegistryPath != "" {
		ext, err := registry.Load(in.RegistryPath)
		if err != nil {
			return err
		}
		reg = registry.Combine(reg, ext)
	}

	defaults := config.Builtin()
	if in.ConfigPath != "" {
		var err error
		defaults, err = config.LoadOverlay(in.ConfigPath)
		if err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := fish.WriteScript(&buf, reg, defaults); err != nil {
		return err
	}
	return executor.WriteAtomic(in.Output, buf.String())
}

func inputFiles(in Inputs) []string {
	var out []string
	if in.RegistryPath != "" {
		if abs, err := filepath.Abs(in.RegistryPath); err == nil {
			out = append(out, abs)
		}
	}
	if in.ConfigPath != "" {
		if abs, err := filepath.Abs(in.ConfigPath); err == nil {
			out = append(out, abs)
		}
	}
	return out
}

func watchedFile(name string, inputs []string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	for _, p := range inputs {
		if abs == p {
			return true
		}
	}
	return false
}
