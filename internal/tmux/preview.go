package tmux

import (
	"context"
	"fmt"
	"strings"
)

// PanePreview captures the visible contents of a pane with its escape
// sequences intact (capture-pane -ep). ctx bounds the call.
func PanePreview(ctx context.Context, socketPath, target string) ([]string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, ErrEmptyTarget
	}
	args := append(baseArgs(socketPath), "capture-pane", "-ep", "-t", target)
	output, err := runExecCommand(ctx, "tmux", args...).Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("capture-pane %s: %w", target, ctxErr)
		}
		return nil, fmt.Errorf("capture-pane %s: %w", target, err)
	}
	return splitPreviewLines(string(output)), nil
}

// splitPreviewLines normalises line endings and drops trailing blank lines.
// Interior blank lines are kept so the capture keeps its shape.
func splitPreviewLines(text string) []string {
	if text == "" {
		return nil
	}
	normalised := strings.ReplaceAll(text, "\r\n", "\n")
	normalised = strings.ReplaceAll(normalised, "\r", "\n")
	raw := strings.Split(normalised, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	if end == 0 {
		return nil
	}
	return lines[:end]
}
