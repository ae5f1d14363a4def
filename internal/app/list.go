package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/idvorkin/rmux-helper/internal/format/table"
	"github.com/idvorkin/rmux-helper/internal/menu"
	uistate "github.com/idvorkin/rmux-helper/internal/ui/state"
)

var listHeader = []string{"TARGET", "IDX", "WINDOW", "TITLE", "PATH", ""}

var listAlignments = []table.Alignment{
	table.AlignLeft,
	table.AlignRight,
	table.AlignLeft,
	table.AlignLeft,
	table.AlignLeft,
	table.AlignLeft,
}

// List returns the pane rows matching query as an aligned table, the same
// rows the picker would show with query typed into its filter. Lines are
// clipped to width when it is positive.
func List(ctx context.Context, cfg Config, query string, width int) ([]string, error) {
	socketPath, err := resolveSocket(cfg.SocketPath)
	if err != nil {
		return nil, fmt.Errorf("resolve socket path: %w", err)
	}
	defer shutdownTmux()
	entries, err := LoadEntries(ctx, cfg, socketPath)
	if err != nil {
		return nil, err
	}
	return FormatEntries(entries, query, width), nil
}

// FormatEntries renders the pane entries that match query. Session headers
// and separators are left out: every pane row carries its session in the
// target.
func FormatEntries(entries []menu.Entry, query string, width int) []string {
	lvl := uistate.NewLevel(entries)
	lvl.SetFilter(strings.TrimSpace(query), 0)
	rows := [][]string{listHeader}
	for _, e := range lvl.VisibleEntries() {
		if !e.IsPane() {
			continue
		}
		mark := ""
		switch {
		case e.Current:
			mark = "current"
		case e.Last:
			mark = "last"
		}
		rows = append(rows, []string{e.Target, e.Columns.Index, e.WindowName, e.Columns.Title, e.Columns.Path, mark})
	}
	if len(rows) == 1 {
		return nil
	}
	lines := table.Format(rows, listAlignments)
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
		if width > 0 {
			lines[i] = table.Fit(lines[i], width, table.AlignLeft)
			lines[i] = strings.TrimRight(lines[i], " ")
		}
	}
	return lines
}
