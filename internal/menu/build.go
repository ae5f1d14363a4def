package menu

import (
	"strconv"
	"strings"

	"github.com/idvorkin/rmux-helper/internal/tmux"
)

// BuildInput is everything BuildEntries needs from the multiplexer.
type BuildInput struct {
	Rows    []tmux.PaneRow
	Current string
	Last    string
	// ShortPath renders a pane's working directory. Nil keeps the path as is.
	ShortPath func(string) string
}

// BuildEntries flattens pane rows into picker rows: a header per session
// (numbered from 1 in query order) preceded by a separator for every session
// but the first, then one row per pane. The first row seen for a window
// carries the index and window columns.
func BuildEntries(in BuildInput) []Entry {
	shortPath := in.ShortPath
	if shortPath == nil {
		shortPath = func(p string) string { return p }
	}
	currentSession := sessionOf(in.Current)
	last := in.Last
	if last == in.Current {
		last = ""
	}

	entries := make([]Entry, 0, len(in.Rows)+len(in.Rows)/2)
	sessionIndex := 0
	prevSession := ""
	seenWindow := make(map[string]bool)
	for _, row := range in.Rows {
		if sessionIndex == 0 || row.Session != prevSession {
			sessionIndex++
			if sessionIndex > 1 {
				entries = append(entries, NewSeparatorEntry(row.Session))
			}
			entries = append(entries, NewSessionEntry(row.Session, sessionIndex, row.Session == currentSession))
			prevSession = row.Session
		}
		target := row.Target()
		windowKey := row.Session + ":" + strconv.Itoa(row.WindowIndex)
		first := !seenWindow[windowKey]
		seenWindow[windowKey] = true
		entries = append(entries, NewPaneEntry(PaneSpec{
			Target:     target,
			Session:    row.Session,
			WindowName: row.WindowName,
			Columns: Columns{
				Index:  itoa(sessionIndex) + ";" + strconv.Itoa(row.WindowIndex),
				Window: row.WindowName,
				Title:  row.PaneTitle,
				Path:   shortPath(row.PanePath),
			},
			FirstInWindow:    first,
			Current:          in.Current != "" && target == in.Current,
			Last:             last != "" && target == last,
			InCurrentSession: row.Session == currentSession,
		}))
	}
	return entries
}

func sessionOf(target string) string {
	if i := strings.LastIndex(target, ":"); i > 0 {
		return target[:i]
	}
	return ""
}

func itoa(n int) string { return strconv.Itoa(n) }
