package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Cancel      key.Binding
	Confirm     key.Binding
	Down        key.Binding
	Up          key.Binding
	Toggle      key.Binding
	Layout      key.Binding
	Help        key.Binding
	Rename      key.Binding
	ClearFilter key.Binding
	DeleteWord  key.Binding
	Backspace   key.Binding
	Left        key.Binding
	Right       key.Binding
}

var keys = keyMap{
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("Esc", "quit"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("C-n/↓", "down"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("C-p/↑", "up"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "current/last"),
	),
	Layout: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("C-l", "layout"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1", "ctrl+_", "?"),
		key.WithHelp("?", "help"),
	),
	Rename: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "rename"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("C-u", "clear filter"),
	),
	DeleteWord: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("C-w", "delete word"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace", "ctrl+h"),
		key.WithHelp("⌫", "delete char"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "filter cursor left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "filter cursor right"),
	),
}

// footerBindings is the one-line hint shown under the picker.
func (k keyMap) footerBindings() []key.Binding {
	return []key.Binding{
		k.Help,
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓/C-p/n", "nav")),
		k.Confirm,
		k.Cancel,
		k.Rename,
		key.NewBinding(key.WithKeys("runes"), key.WithHelp("type", "filter")),
	}
}

// navigationBindings lists the keys described in the help overlay.
func (k keyMap) navigationBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("C-n / ↓", "Move down")),
		key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("C-p / ↑", "Move up")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Switch to selected pane")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc / C-c", "Cancel and quit")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Jump between current and last pane")),
		key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("C-l", "Toggle side-by-side/stacked")),
		key.NewBinding(key.WithKeys("runes"), key.WithHelp("Type", "Filter by text")),
		key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("C-u / C-w", "Clear filter / delete word")),
		key.NewBinding(key.WithKeys("?"), key.WithHelp("? / C-/", "Show this help")),
		key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("C-r", "Rename session/window")),
	}
}
