package fish

import (
	"errors"
	"testing"

	"github.com/sirlantis/stgit/internal/registry"
)

func TestCompletionsFromArgs_Literals(t *testing.T) {
	got, err := completionsFromArgs([]registry.Arg{registry.Values{"deep", "replace"}})
	if err != nil {
		t.Fatalf("completionsFromArgs: %v", err)
	}
	if got != "deep replace" {
		t.Fatalf("completions = %q, want %q", got, "deep replace")
	}
}

func TestCompletionsFromArgs_Keyword(t *testing.T) {
	got, err := completionsFromArgs([]registry.Arg{registry.Keyword("commit")})
	if err != nil {
		t.Fatalf("completionsFromArgs: %v", err)
	}
	if got != "(__fish_stg_commit)" {
		t.Fatalf("completions = %q", got)
	}
}

func TestCompletionsFromArgs_Range(t *testing.T) {
	args := []registry.Arg{registry.Range{Start: "applied_patches", End: "unapplied_patches"}}

	want := "(__fish_stg_applied_patches) (__fish_stg_unapplied_patches)"
	for i := 0; i < 3; i++ {
		got, err := completionsFromArgs(args)
		if err != nil {
			t.Fatalf("completionsFromArgs: %v", err)
		}
		if got != want {
			t.Fatalf("run %d: completions = %q, want %q", i, got, want)
		}
	}
}

func TestCompletionsFromArgs_RangeSkipsUnrecognizedEndpoint(t *testing.T) {
	got, err := completionsFromArgs([]registry.Arg{registry.Range{Start: "applied_patches", End: "bogus"}})
	if err != nil {
		t.Fatalf("completionsFromArgs: %v", err)
	}
	if got != "(__fish_stg_applied_patches)" {
		t.Fatalf("completions = %q", got)
	}
}

func TestCompletionsFromArgs_PathContributesNothing(t *testing.T) {
	got, err := completionsFromArgs([]registry.Arg{
		registry.Path{Kind: registry.PathFile},
		registry.Path{Kind: registry.PathRepo},
	})
	if err != nil {
		t.Fatalf("completionsFromArgs: %v", err)
	}
	if got != "" {
		t.Fatalf("completions = %q, want empty", got)
	}
}

func TestCompletionsFromArgs_PreservesOrder(t *testing.T) {
	got, err := completionsFromArgs([]registry.Arg{
		registry.Values{"a", "b"},
		registry.Keyword("commit"),
		registry.Path{Kind: registry.PathFile},
		registry.Values{"c"},
	})
	if err != nil {
		t.Fatalf("completionsFromArgs: %v", err)
	}
	want := "a b (__fish_stg_commit) c"
	if got != want {
		t.Fatalf("completions = %q, want %q", got, want)
	}
}

func TestCompletionsFromArgs_UnknownKeyword(t *testing.T) {
	got, err := completionsFromArgs([]registry.Arg{registry.Keyword("bogus")})
	if err == nil {
		t.Fatal("expected error for unknown keyword")
	}
	var uerr *UnknownArgKindError
	if !errors.As(err, &uerr) {
		t.Fatalf("error type = %T, want *UnknownArgKindError", err)
	}
	if got != "" {
		t.Fatalf("completions = %q, want empty on error", got)
	}
}

func TestCompletionsFromArgs_NilArg(t *testing.T) {
	_, err := completionsFromArgs([]registry.Arg{nil})
	var uerr *UnknownArgKindError
	if !errors.As(err, &uerr) {
		t.Fatalf("error = %v, want *UnknownArgKindError", err)
	}
}

func TestFileCompletionFlag(t *testing.T) {
	if got := fileCompletionFlag(nil); got != "-f" {
		t.Fatalf("empty list flag = %q, want -f", got)
	}
	if got := fileCompletionFlag([]registry.Arg{registry.Keyword("commit")}); got != "-f" {
		t.Fatalf("no path flag = %q, want -f", got)
	}
	// one path argument switches the whole list
	if got := fileCompletionFlag([]registry.Arg{
		registry.Keyword("commit"),
		registry.Path{Kind: registry.PathDir},
	}); got != "-r" {
		t.Fatalf("path flag = %q, want -r", got)
	}
}

func TestProviderFunc_StableAndDistinct(t *testing.T) {
	if providerFunc("commit") != providerFunc("commit") {
		t.Fatal("provider name not stable")
	}
	seen := map[string]string{}
	for _, k := range registry.DynamicKeywords {
		fn := providerFunc(k)
		if prev, dup := seen[fn]; dup {
			t.Fatalf("provider %q maps to both %q and %q", fn, prev, k)
		}
		seen[fn] = k
	}
}
