package state

import "github.com/idvorkin/rmux-helper/internal/menu"

// Level holds the picker list: the immutable entries, the filtered view over
// them, the cursor into that view and the filter text.
type Level struct {
	Entries []menu.Entry
	// Visible holds indices into Entries, in entry order.
	Visible []int
	// Cursor indexes Visible.
	Cursor         int
	Filter         string
	FilterCursor   int
	ViewportOffset int
}

// NewLevel builds a level showing every entry, with the cursor on the
// current pane when there is one.
func NewLevel(entries []menu.Entry) *Level {
	l := &Level{Entries: entries}
	l.applyFilter()
	return l
}

// Len returns the number of visible rows.
func (l *Level) Len() int { return len(l.Visible) }

// EntryAt returns the entry shown at visible position pos.
func (l *Level) EntryAt(pos int) (menu.Entry, bool) {
	if pos < 0 || pos >= len(l.Visible) {
		return menu.Entry{}, false
	}
	return l.Entries[l.Visible[pos]], true
}

// Selected returns the entry under the cursor.
func (l *Level) Selected() (menu.Entry, bool) {
	return l.EntryAt(l.Cursor)
}

// VisibleEntries returns the visible entries in display order.
func (l *Level) VisibleEntries() []menu.Entry {
	out := make([]menu.Entry, len(l.Visible))
	for i, idx := range l.Visible {
		out[i] = l.Entries[idx]
	}
	return out
}

func (l *Level) positionOf(match func(menu.Entry) bool) int {
	for pos, idx := range l.Visible {
		if match(l.Entries[idx]) {
			return pos
		}
	}
	return -1
}

// resetCursor places the cursor on the current pane if visible, else on the
// first visible pane, else at the top.
func (l *Level) resetCursor() {
	if pos := l.positionOf(func(e menu.Entry) bool { return e.Current }); pos >= 0 {
		l.Cursor = pos
		return
	}
	if pos := l.positionOf(menu.Entry.IsPane); pos >= 0 {
		l.Cursor = pos
		return
	}
	l.Cursor = 0
}
