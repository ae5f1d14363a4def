// Package gitpath shortens pane working directories for display: paths inside
// a git repository become "<repo>/<prefix>", other paths under $HOME become
// "~/...".
package gitpath

import (
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

var runGit = func(dir string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	return cmd.Output()
}

type repoInfo struct {
	name   string
	prefix string
	ok     bool
}

// Resolver memoises repository lookups per directory for one invocation.
type Resolver struct {
	mu      sync.Mutex
	aliases map[string]string
	home    string
	repos   map[string]repoInfo
}

// NewResolver returns a Resolver that renames repositories through aliases
// (repo basename -> label) and abbreviates home.
func NewResolver(aliases map[string]string, home string) *Resolver {
	copied := make(map[string]string, len(aliases))
	for k, v := range aliases {
		copied[k] = v
	}
	return &Resolver{
		aliases: copied,
		home:    strings.TrimRight(home, "/"),
		repos:   make(map[string]repoInfo),
	}
}

// ShortPath returns the display form of cwd.
func (r *Resolver) ShortPath(cwd string) string {
	cwd = strings.TrimSpace(cwd)
	if cwd == "" {
		return ""
	}
	if info := r.lookup(cwd); info.ok {
		name := info.name
		if alias, ok := r.aliases[name]; ok && alias != "" {
			name = alias
		}
		if info.prefix == "" {
			return name
		}
		return name + "/" + info.prefix
	}
	if r.home != "" && (cwd == r.home || strings.HasPrefix(cwd, r.home+"/")) {
		return "~" + cwd[len(r.home):]
	}
	return cwd
}

func (r *Resolver) lookup(cwd string) repoInfo {
	r.mu.Lock()
	if info, ok := r.repos[cwd]; ok {
		r.mu.Unlock()
		return info
	}
	r.mu.Unlock()

	info := repoInfo{}
	out, err := runGit(cwd, "rev-parse", "--show-toplevel", "--show-prefix")
	if err == nil {
		info = parseRevParse(string(out))
	}

	r.mu.Lock()
	r.repos[cwd] = info
	r.mu.Unlock()
	return info
}

// parseRevParse reads the two lines printed by
// `git rev-parse --show-toplevel --show-prefix`.
func parseRevParse(out string) repoInfo {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) == 0 {
		return repoInfo{}
	}
	top := strings.TrimSpace(lines[0])
	if top == "" {
		return repoInfo{}
	}
	prefix := ""
	if len(lines) > 1 {
		prefix = strings.Trim(strings.TrimSpace(lines[1]), "/")
	}
	return repoInfo{name: filepath.Base(top), prefix: prefix, ok: true}
}
