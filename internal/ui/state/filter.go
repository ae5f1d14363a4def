package state

import (
	"strings"
	"unicode"

	"github.com/idvorkin/rmux-helper/internal/menu"
)

// Tokenize splits an already lowercased query into match tokens: on
// whitespace and at every letter/digit boundary. Other characters stay with
// the token being built, so "1;4" is one token and "cl2set" is three.
func Tokenize(query string) []string {
	var (
		tokens []string
		cur    []rune
		prev   rune
	)
	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range query {
		if unicode.IsSpace(r) {
			flush()
			prev = 0
			continue
		}
		if len(cur) > 0 && isBoundary(prev, r) {
			flush()
		}
		cur = append(cur, r)
		prev = r
	}
	flush()
	return tokens
}

func isBoundary(prev, next rune) bool {
	return (unicode.IsLetter(prev) && unicode.IsDigit(next)) ||
		(unicode.IsDigit(prev) && unicode.IsLetter(next))
}

// Matches reports whether display satisfies every token. A token matches as
// a substring of the lowercased display; an all-digit token longer than one
// character also matches when each of its digits appears anywhere in display,
// so "14" finds "1;4".
func Matches(display string, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	lower := strings.ToLower(display)
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			continue
		}
		if len([]rune(tok)) > 1 && allDigits(tok) && containsEachRune(lower, tok) {
			continue
		}
		return false
	}
	return true
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func containsEachRune(haystack, runes string) bool {
	for _, r := range runes {
		if !strings.ContainsRune(haystack, r) {
			return false
		}
	}
	return true
}

// SetFilter replaces the filter text, recomputes the visible rows and resets
// the cursor to the current pane (or the first visible pane).
func (l *Level) SetFilter(query string, cursor int) {
	l.Filter = query
	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	l.FilterCursor = cursor
	l.applyFilter()
}

func (l *Level) applyFilter() {
	tokens := Tokenize(strings.ToLower(l.Filter))
	visible := make([]int, 0, len(l.Entries))
	for i, e := range l.Entries {
		if e.Kind == menu.KindSeparator || Matches(e.Display, tokens) {
			visible = append(visible, i)
		}
	}
	l.Visible = visible
	l.ViewportOffset = 0
	l.resetCursor()
}

// VisiblePanes counts visible pane rows.
func (l *Level) VisiblePanes() int {
	n := 0
	for _, idx := range l.Visible {
		if l.Entries[idx].IsPane() {
			n++
		}
	}
	return n
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *Level) FilterCursorPos() int {
	runes := []rune(l.Filter)
	if l.FilterCursor < 0 {
		return 0
	}
	if l.FilterCursor > len(runes) {
		return len(runes)
	}
	return l.FilterCursor
}

// InsertFilterText inserts text into the filter at the cursor position.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the filter cursor.
func (l *Level) DeleteFilterRuneBackward() bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	l.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the cursor.
func (l *Level) DeleteFilterWordBackward() bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i:i], runes[pos:]...)
	l.SetFilter(string(updated), i)
	return true
}

// ClearFilter empties the filter.
func (l *Level) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("", 0)
	return true
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune backward.
func (l *Level) MoveFilterCursorRuneBackward() bool {
	if l.FilterCursorPos() == 0 {
		return false
	}
	l.FilterCursor = l.FilterCursorPos() - 1
	return true
}

// MoveFilterCursorRuneForward moves the filter cursor one rune forward.
func (l *Level) MoveFilterCursorRuneForward() bool {
	pos := l.FilterCursorPos()
	if pos >= len([]rune(l.Filter)) {
		return false
	}
	l.FilterCursor = pos + 1
	return true
}
