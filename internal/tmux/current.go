package tmux

import (
	"context"
	"os"
	"strings"
	"unicode"
)

const paneTargetFormat = "#{session_name}:#{window_index}.#{pane_index}"

// originTarget names the pane the picker was launched from. Inside
// display-popup TMUX_PANE is empty, so the session id carried in $TMUX is used.
func originTarget() string {
	if pane := strings.TrimSpace(os.Getenv("TMUX_PANE")); pane != "" {
		return pane
	}
	parts := strings.Split(os.Getenv("TMUX"), ",")
	if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
		return "$" + strings.TrimSpace(parts[2])
	}
	return ""
}

// displayMessage expands format against target, preferring the control-mode
// client and falling back to the tmux binary.
func displayMessage(ctx context.Context, socketPath, target, format string) (string, error) {
	if client, err := newTmux(socketPath); err == nil {
		out, err := withContext(ctx, func() (string, error) {
			return client.DisplayMessage(target, format)
		})
		if err == nil {
			return strings.TrimSpace(out), nil
		}
		if ctx.Err() != nil {
			return "", err
		}
	}
	args := append(baseArgs(socketPath), "display-message", "-p")
	if target != "" {
		args = append(args, "-t", target)
	}
	args = append(args, format)
	output, err := runExecCommand(ctx, "tmux", args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// CurrentPane returns the session:window.pane address of the pane the picker
// was launched from, or "" when it cannot be determined.
func CurrentPane(ctx context.Context, socketPath string) string {
	out, err := displayMessage(ctx, socketPath, originTarget(), paneTargetFormat)
	if err != nil {
		return ""
	}
	return out
}

// LastPane returns the pane visited before current: the last pane of the
// current window, or else the active pane of the session's last window.
func LastPane(ctx context.Context, socketPath, current string) string {
	window := windowOf(current)
	if window == "" {
		return ""
	}
	session := current[:strings.LastIndex(current, ":")]
	for _, target := range []string{window + ".{last}", session + ":{last}"} {
		out, err := displayMessage(ctx, socketPath, target, paneTargetFormat)
		if err != nil || out == "" || out == current {
			continue
		}
		return out
	}
	return ""
}

// windowOf strips the pane index from a session:window.pane address.
func windowOf(target string) string {
	colon := strings.LastIndex(target, ":")
	dot := strings.LastIndex(target, ".")
	if colon <= 0 || dot <= colon {
		return ""
	}
	return target[:dot]
}

// CurrentClientID finds the terminal client attached to the picker's session
// so SwitchClient moves the visible client rather than the control-mode one.
func CurrentClientID(ctx context.Context, socketPath string) string {
	client, err := newTmux(socketPath)
	if err != nil {
		return ""
	}
	session, err := withContext(ctx, func() (string, error) {
		return client.DisplayMessage(originTarget(), "#{session_name}")
	})
	if err != nil {
		return ""
	}
	session = strings.TrimSpace(session)
	clients, err := withContext(ctx, client.ListClients)
	if err != nil {
		return ""
	}
	for _, c := range clients {
		if c == nil || c.ControlMode {
			continue
		}
		if c.Session != session || !isValidClientName(c.Name) {
			continue
		}
		return c.Name
	}
	return ""
}

func isValidClientName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
