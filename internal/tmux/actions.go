package tmux

import (
	"context"
	"fmt"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
	"github.com/idvorkin/rmux-helper/internal/logging/events"
)

// SwitchClient moves the launching client to target.
func SwitchClient(ctx context.Context, socketPath, target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return ErrEmptyTarget
	}
	clientID := CurrentClientID(ctx, socketPath)
	events.Tmux.Switch(clientID, target)
	if client, err := newTmux(socketPath); err == nil {
		_, err = withContext(ctx, func() (struct{}, error) {
			return struct{}{}, client.SwitchClient(&gotmux.SwitchClientOptions{
				TargetSession: target,
				TargetClient:  clientID,
			})
		})
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return fmt.Errorf("switch-client %s: %w", target, err)
		}
	}
	args := append(baseArgs(socketPath), "switch-client")
	if clientID != "" {
		args = append(args, "-c", clientID)
	}
	args = append(args, "-t", target)
	if err := runExecCommand(ctx, "tmux", args...).Run(); err != nil {
		return fmt.Errorf("switch-client %s: %w", target, err)
	}
	return nil
}

// RenameSession renames session to name.
func RenameSession(ctx context.Context, socketPath, session, name string) error {
	session = strings.TrimSpace(session)
	if session == "" {
		return ErrNoSession
	}
	events.Tmux.RenameSession(session, name)
	if err := runCommand(ctx, socketPath, "rename-session", "-t", session, name); err != nil {
		return fmt.Errorf("rename-session %s: %w", session, err)
	}
	return nil
}

// RenameWindow renames the window addressed by target (session:window).
func RenameWindow(ctx context.Context, socketPath, target, name string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return ErrEmptyTarget
	}
	events.Tmux.RenameWindow(target, name)
	if err := runCommand(ctx, socketPath, "rename-window", "-t", target, name); err != nil {
		return fmt.Errorf("rename-window %s: %w", target, err)
	}
	return nil
}

// runCommand runs a tmux command through the binary so arguments with spaces
// reach tmux unsplit.
func runCommand(ctx context.Context, socketPath string, parts ...string) error {
	args := append(baseArgs(socketPath), parts...)
	return runExecCommand(ctx, "tmux", args...).Run()
}
