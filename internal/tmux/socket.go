package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
)

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

func paneTarget(session string, window, pane int) string {
	return session + ":" + strconv.Itoa(window) + "." + strconv.Itoa(pane)
}

var currentUser = user.Current

// ResolveSocketPath picks the tmux socket: an explicit value first, then the
// socket of the enclosing tmux ($TMUX), then tmux's own default location.
func ResolveSocketPath(explicit string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := currentUser()
	if err != nil {
		return "", fmt.Errorf("resolve tmux socket: %w", err)
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}
