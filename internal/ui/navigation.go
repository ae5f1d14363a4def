package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/idvorkin/rmux-helper/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, keys.Cancel):
		events.Picker.Cancel()
		return m.quit()
	case key.Matches(keyMsg, keys.Confirm):
		return m.handleEnterKey()
	case key.Matches(keyMsg, keys.Down):
		return m.moveCursor(1)
	case key.Matches(keyMsg, keys.Up):
		return m.moveCursor(-1)
	case key.Matches(keyMsg, keys.Toggle):
		return m.toggleCurrentLast()
	case key.Matches(keyMsg, keys.Layout):
		return m.toggleLayout()
	case key.Matches(keyMsg, keys.Help):
		m.mode = ModeHelp
		events.Picker.Help(true)
		return nil
	case key.Matches(keyMsg, keys.Rename):
		m.openRenameForm()
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	return nil
}

// handleEnterKey picks the selected pane. Session and separator rows are
// not switch targets, so the picker keeps running.
func (m *Model) handleEnterKey() tea.Cmd {
	entry, ok := m.level.Selected()
	if !ok {
		return nil
	}
	if !entry.IsPane() {
		events.Picker.Ignore(entry.Target, entry.Kind.String())
		return nil
	}
	m.chosen = entry.Target
	events.Picker.Confirm(entry.Target)
	return m.quit()
}

func (m *Model) moveCursor(delta int) tea.Cmd {
	if !m.level.Move(delta) {
		return nil
	}
	return m.cursorChanged()
}

func (m *Model) toggleCurrentLast() tea.Cmd {
	if !m.level.ToggleCurrentLast() {
		return nil
	}
	if entry, ok := m.level.Selected(); ok {
		kind := "current"
		if entry.Last {
			kind = "last"
		}
		events.Picker.Jump(kind, entry.Target)
	}
	return m.cursorChanged()
}

// cursorChanged runs after every successful cursor move; the kept preview
// is always captured again.
func (m *Model) cursorChanged() tea.Cmd {
	m.syncViewport()
	m.invalidatePreview()
	if entry, ok := m.level.Selected(); ok {
		events.Picker.Cursor(m.level.Cursor, entry.Target)
	}
	return m.ensurePreview()
}

func (m *Model) toggleLayout() tea.Cmd {
	if m.layout == LayoutSideBySide {
		m.layout = LayoutStacked
	} else {
		m.layout = LayoutSideBySide
	}
	events.Picker.Layout(string(m.layout))
	m.syncViewport()
	return m.ensurePreview()
}

func (m *Model) handleHelpOverlay(msg tea.Msg) (bool, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok {
		return false, nil
	}
	m.mode = ModePicker
	events.Picker.Help(false)
	return true, nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return m.ensurePreview()
}

func (m *Model) syncViewport() {
	m.level.EnsureCursorVisible(m.computeLayout().listRows())
}
