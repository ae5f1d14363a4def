package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/idvorkin/rmux-helper/internal/logging"
	"github.com/idvorkin/rmux-helper/internal/menu"
	"github.com/idvorkin/rmux-helper/internal/ui/command"
)

const (
	renameOverlayWidth  = 50
	renameOverlayHeight = 5
)

// openRenameForm enters rename mode for the selected row. Separators and an
// empty list leave the picker as it is.
func (m *Model) openRenameForm() {
	entry, ok := m.level.Selected()
	if !ok {
		return
	}
	form := menu.NewRenameForm(entry, m.rename)
	if form == nil {
		return
	}
	form.SetWidth(renameOverlayWidth - 6)
	m.renameForm = form
	m.mode = ModeRename
}

func (m *Model) handleRenameForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.renameCommitting {
		// keys wait for the rename result
		_, isKey := msg.(tea.KeyMsg)
		return isKey, nil
	}
	if m.renameForm == nil {
		m.mode = ModePicker
		return false, nil
	}
	if _, ok := msg.(tea.KeyMsg); !ok {
		return false, nil
	}
	cmd, done, cancel := m.renameForm.Update(msg)
	if cancel {
		m.renameForm = nil
		m.mode = ModePicker
		return true, cmd
	}
	if done {
		form := m.renameForm
		m.renameForm = nil
		m.renameCommitting = true
		return true, m.bus.Execute(command.Request{
			ID:    "rename:" + form.Kind().String(),
			Label: form.Target(),
			Cmd:   cmd,
		})
	}
	return true, cmd
}

// handleRenameResultMsg ends the picker after a rename so the caller can
// re-query the hierarchy. A failed rename is logged, not shown.
func (m *Model) handleRenameResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.RenameResult)
	if !ok {
		return nil
	}
	m.renameCommitting = false
	m.mode = ModePicker
	if result.Err != nil {
		logging.Error(result.Err)
	}
	m.chosen = ""
	return m.quit()
}
