package ui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/idvorkin/rmux-helper/internal/logging/events"
)

func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.level
	switch {
	case key.Matches(msg, keys.ClearFilter):
		if !current.ClearFilter() {
			return false, nil
		}
		events.Filter.Cleared()
		return true, m.filterChanged()
	case key.Matches(msg, keys.DeleteWord):
		if !current.DeleteFilterWordBackward() {
			return false, nil
		}
		events.Filter.WordBackspace(current.Filter, current.VisiblePanes())
		return true, m.filterChanged()
	case key.Matches(msg, keys.Backspace):
		if !current.DeleteFilterRuneBackward() {
			return false, nil
		}
		events.Filter.Backspace(current.Filter, current.VisiblePanes())
		return true, m.filterChanged()
	case key.Matches(msg, keys.Left):
		return current.MoveFilterCursorRuneBackward(), nil
	case key.Matches(msg, keys.Right):
		return current.MoveFilterCursorRuneForward(), nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	}
	return false, nil
}

func (m *Model) appendToFilter(text string) (bool, tea.Cmd) {
	if !m.level.InsertFilterText(text) {
		return false, nil
	}
	events.Filter.Append(m.level.Filter, m.level.VisiblePanes())
	return true, m.filterChanged()
}

// filterChanged runs after the visible rows were recomputed; the cursor has
// already been reset by the level.
func (m *Model) filterChanged() tea.Cmd {
	m.syncViewport()
	return m.ensurePreview()
}

// filterPrompt renders the search line with the cursor drawn over the
// character at the edit position.
func (m *Model) filterPrompt() string {
	prompt := styles.FilterPrompt.Render("pick> ")
	text := []rune(m.level.Filter)
	if len(text) == 0 {
		m.filterCursor.TextStyle = *styles.Placeholder
		m.filterCursor.SetChar("t")
		return prompt + m.filterCursor.View() + styles.Placeholder.Render("ype to filter")
	}
	pos := m.level.FilterCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(text) {
		pos = len(text)
	}
	m.filterCursor.TextStyle = *styles.Filter
	before := styles.Filter.Render(string(text[:pos]))
	char := " "
	after := ""
	if pos < len(text) {
		char = string(text[pos])
		after = styles.Filter.Render(string(text[pos+1:]))
	}
	m.filterCursor.SetChar(char)
	return prompt + before + m.filterCursor.View() + after
}
