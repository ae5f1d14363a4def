package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/idvorkin/rmux-helper/internal/logging/events"
)

// RenameKind selects what a rename applies to.
type RenameKind int

const (
	RenameSession RenameKind = iota
	RenameWindow
)

func (k RenameKind) String() string {
	if k == RenameWindow {
		return "window"
	}
	return "session"
}

// RenameRequest is a confirmed rename: Target is a session name for
// RenameSession and a session:window address for RenameWindow.
type RenameRequest struct {
	Kind   RenameKind
	Target string
	Name   string
}

// RenameResult reports the outcome of a committed rename.
type RenameResult struct {
	Request RenameRequest
	Err     error
}

// RenameCommit performs a rename against the multiplexer.
type RenameCommit func(RenameRequest) error

// ExtractWindowPrefix returns the editable default for a window rename. A
// label of the form "<prefix> <fragment>" whose fragment equals or ends with
// the rendered path yields just the prefix; any other label is returned whole.
func ExtractWindowPrefix(label, path string) string {
	label = strings.TrimSpace(label)
	path = strings.TrimSpace(path)
	i := strings.LastIndex(label, " ")
	if i <= 0 || path == "" {
		return label
	}
	prefix := strings.TrimSpace(label[:i])
	fragment := label[i+1:]
	if prefix == "" {
		return label
	}
	if fragment == path || strings.HasSuffix(fragment, path) {
		return prefix
	}
	return label
}

// WindowTarget strips the pane index from a session:window.pane address.
func WindowTarget(target string) string {
	if i := strings.LastIndex(target, "."); i > strings.LastIndex(target, ":") {
		return target[:i]
	}
	return target
}

// RenameForm edits a new name for a session or window.
type RenameForm struct {
	input  textinput.Model
	kind   RenameKind
	target string
	title  string
	help   string
	commit RenameCommit
}

// NewRenameForm opens a form for entry, or returns nil when the row cannot
// be renamed. Session rows rename the session; pane rows rename their window.
func NewRenameForm(entry Entry, commit RenameCommit) *RenameForm {
	var (
		kind    RenameKind
		target  string
		initial string
	)
	switch entry.Kind {
	case KindSession:
		kind = RenameSession
		target = entry.SessionName
		initial = entry.SessionName
	case KindPane:
		kind = RenameWindow
		target = WindowTarget(entry.Target)
		initial = ExtractWindowPrefix(entry.WindowName, entry.Columns.Path)
	default:
		return nil
	}
	if strings.TrimSpace(target) == "" {
		return nil
	}

	ti := textinput.New()
	ti.Placeholder = kind.String() + "-name"
	ti.CharLimit = 64
	ti.Prompt = "> "
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	if initial != "" {
		ti.SetValue(initial)
	}
	events.Rename.Prompt(kind.String(), target, initial)
	return &RenameForm{
		input:  ti,
		kind:   kind,
		target: target,
		title:  renameTitle(kind),
		help:   "Enter: confirm  Esc: cancel",
		commit: commit,
	}
}

func renameTitle(kind RenameKind) string {
	if kind == RenameWindow {
		return "Rename Window"
	}
	return "Rename Session"
}

func (f *RenameForm) Kind() RenameKind  { return f.kind }
func (f *RenameForm) Target() string    { return f.target }
func (f *RenameForm) Title() string     { return f.title }
func (f *RenameForm) Help() string      { return f.help }
func (f *RenameForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *RenameForm) InputView() string { return f.input.View() }

// SetWidth bounds the rendered input width.
func (f *RenameForm) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	f.input.Width = width
}

// Update feeds msg to the form. done is true once a rename has been
// submitted (cmd performs it); cancel is true when the form closed without
// a rename.
func (f *RenameForm) Update(msg tea.Msg) (cmd tea.Cmd, done bool, cancel bool) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.Type {
		case tea.KeyEsc:
			events.Rename.Cancel(f.target, events.RenameReasonEscape)
			return nil, false, true
		case tea.KeyEnter:
			value := f.Value()
			if value == "" {
				events.Rename.Cancel(f.target, events.RenameReasonEmpty)
				return nil, false, true
			}
			events.Rename.Submit(f.kind.String(), f.target, value)
			return f.commitCommand(RenameRequest{Kind: f.kind, Target: f.target, Name: value}), true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

func (f *RenameForm) commitCommand(req RenameRequest) tea.Cmd {
	commit := f.commit
	return func() tea.Msg {
		if commit == nil {
			return RenameResult{Request: req}
		}
		err := commit(req)
		if err != nil {
			events.Rename.Error(req.Target, err)
		}
		return RenameResult{Request: req, Err: err}
	}
}
