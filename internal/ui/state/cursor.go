package state

import "github.com/idvorkin/rmux-helper/internal/menu"

// Move steps the cursor by delta (+1 or -1) with wraparound, skipping
// session and separator rows. If no pane row is visible the cursor stays
// put. It reports whether the cursor changed.
func (l *Level) Move(delta int) bool {
	n := len(l.Visible)
	if n == 0 || delta == 0 {
		return false
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	pos := l.Cursor
	for visited := 0; visited < n; visited++ {
		pos = ((pos+step)%n + n) % n
		if l.Entries[l.Visible[pos]].IsPane() {
			old := l.Cursor
			l.Cursor = pos
			return old != pos
		}
	}
	return false
}

// JumpToCurrent moves the cursor to the current pane if it is visible.
func (l *Level) JumpToCurrent() bool {
	return l.jumpTo(func(e menu.Entry) bool { return e.Current })
}

// JumpToLast moves the cursor to the last visited pane if it is visible.
func (l *Level) JumpToLast() bool {
	return l.jumpTo(func(e menu.Entry) bool { return e.Last })
}

// ToggleCurrentLast jumps to the last pane when the cursor is on the current
// pane, and to the current pane otherwise.
func (l *Level) ToggleCurrentLast() bool {
	if e, ok := l.Selected(); ok && e.Current {
		return l.JumpToLast()
	}
	return l.JumpToCurrent()
}

func (l *Level) jumpTo(match func(menu.Entry) bool) bool {
	pos := l.positionOf(match)
	if pos < 0 || pos == l.Cursor {
		return false
	}
	l.Cursor = pos
	return true
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Visible) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Visible) {
		l.Cursor = len(l.Visible) - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Visible) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
}
