package gitpath

import (
	"errors"
	"testing"
)

func withStubGit(t *testing.T, fn func(dir string, args ...string) ([]byte, error)) {
	t.Helper()
	prev := runGit
	runGit = fn
	t.Cleanup(func() { runGit = prev })
}

func TestShortPathUsesRepoAliasAndPrefix(t *testing.T) {
	withStubGit(t, func(dir string, args ...string) ([]byte, error) {
		switch dir {
		case "/home/me/gits/idvorkin.github.io/_d":
			return []byte("/home/me/gits/idvorkin.github.io\n_d/\n"), nil
		case "/home/me/gits/settings":
			return []byte("/home/me/gits/settings\n\n"), nil
		}
		return nil, errors.New("not a git repository")
	})
	r := NewResolver(map[string]string{"idvorkin.github.io": "blog"}, "/home/me")

	if got := r.ShortPath("/home/me/gits/idvorkin.github.io/_d"); got != "blog/_d" {
		t.Fatalf("expected blog/_d, got %q", got)
	}
	if got := r.ShortPath("/home/me/gits/settings"); got != "settings" {
		t.Fatalf("expected settings, got %q", got)
	}
	if got := r.ShortPath("/home/me/Downloads"); got != "~/Downloads" {
		t.Fatalf("expected ~/Downloads, got %q", got)
	}
	if got := r.ShortPath("/home/me"); got != "~" {
		t.Fatalf("expected ~, got %q", got)
	}
	if got := r.ShortPath("/home/meow"); got != "/home/meow" {
		t.Fatalf("expected sibling of home untouched, got %q", got)
	}
	if got := r.ShortPath("  "); got != "" {
		t.Fatalf("expected empty path, got %q", got)
	}
}

func TestShortPathMemoisesLookups(t *testing.T) {
	calls := 0
	withStubGit(t, func(dir string, args ...string) ([]byte, error) {
		calls++
		return []byte("/src/rmux\ninternal/ui/\n"), nil
	})
	r := NewResolver(nil, "")
	for i := 0; i < 3; i++ {
		if got := r.ShortPath("/src/rmux/internal/ui"); got != "rmux/internal/ui" {
			t.Fatalf("unexpected short path %q", got)
		}
	}
	if calls != 1 {
		t.Fatalf("expected a single git call, got %d", calls)
	}
}

func TestParseRevParseEmptyOutput(t *testing.T) {
	if info := parseRevParse(""); info.ok {
		t.Fatalf("expected empty output to be rejected, got %+v", info)
	}
}
