package tmux

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/idvorkin/rmux-helper/internal/logging/events"
)

const paneRowFormat = "#{session_name}\t#{window_index}\t#{pane_index}\t#{window_name}\t#{pane_title}\t#{pane_current_path}\t#{pane_id}"

const paneRowMinFields = 6

// FetchPaneRows lists every pane on the server in tmux order, so rows of one
// session are contiguous. The control-mode client is tried first; the tmux
// binary is used when it cannot be reached. Malformed rows are skipped.
func FetchPaneRows(ctx context.Context, socketPath string) ([]PaneRow, error) {
	lines, err := listPaneLines(ctx, socketPath)
	fallback := false
	if err != nil {
		fallback = true
		lines, err = listPaneLinesExec(ctx, socketPath)
		if err != nil {
			return nil, fmt.Errorf("list-panes: %w", err)
		}
	}
	rows, skipped := parsePaneRows(lines)
	events.Tmux.Query(len(rows), skipped, fallback)
	return rows, nil
}

func listPaneLines(ctx context.Context, socketPath string) ([]string, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return nil, err
	}
	return withContext(ctx, func() ([]string, error) {
		return client.ListPanesFormat("", "", paneRowFormat)
	})
}

func listPaneLinesExec(ctx context.Context, socketPath string) ([]string, error) {
	args := append(baseArgs(socketPath), "list-panes", "-a", "-F", paneRowFormat)
	output, err := runExecCommand(ctx, "tmux", args...).Output()
	if err != nil {
		return nil, err
	}
	text := strings.TrimRight(string(output), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

func parsePaneRows(lines []string) ([]PaneRow, int) {
	rows := make([]PaneRow, 0, len(lines))
	skipped := 0
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, ok := parsePaneRow(line)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped
}

func parsePaneRow(line string) (PaneRow, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) < paneRowMinFields {
		return PaneRow{}, false
	}
	session := strings.TrimSpace(parts[0])
	if session == "" {
		return PaneRow{}, false
	}
	windowIndex, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return PaneRow{}, false
	}
	paneIndex, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return PaneRow{}, false
	}
	row := PaneRow{
		Session:     session,
		WindowIndex: windowIndex,
		PaneIndex:   paneIndex,
		WindowName:  parts[3],
		PaneTitle:   parts[4],
		PanePath:    strings.TrimSpace(parts[5]),
	}
	if len(parts) > 6 {
		row.PaneID = strings.TrimSpace(parts[6])
	}
	return row, true
}
