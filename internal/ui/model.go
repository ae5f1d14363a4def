package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/idvorkin/rmux-helper/internal/menu"
	"github.com/idvorkin/rmux-helper/internal/theme"
	"github.com/idvorkin/rmux-helper/internal/ui/command"
	uistate "github.com/idvorkin/rmux-helper/internal/ui/state"
)

type level = uistate.Level

// Mode selects which overlay, if any, receives key input.
type Mode int

const (
	ModePicker Mode = iota
	ModeHelp
	ModeRename
)

// Layout is the preferred arrangement of the list and preview panes.
type Layout string

const (
	LayoutSideBySide Layout = "side-by-side"
	LayoutStacked    Layout = "stacked"
)

const defaultCaptureTimeout = 2 * time.Second

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// CaptureFunc returns the visible content of a pane.
type CaptureFunc func(ctx context.Context, target string) ([]string, error)

// Options configure a picker run.
type Options struct {
	Entries []menu.Entry
	// Width and Height pin the viewport; zero follows the terminal.
	Width          int
	Height         int
	ShowFooter     bool
	Layout         Layout
	CaptureTimeout time.Duration
	Capture        CaptureFunc
	Rename         menu.RenameCommit
	Version        string
}

// Model implements the Bubble Tea model for the pane picker.
type Model struct {
	ctx         context.Context
	level       *level
	mode        Mode
	layout      Layout
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	version     string

	help         help.Model
	filterCursor cursor.Model

	renameForm       *menu.RenameForm
	renameCommitting bool
	rename           menu.RenameCommit

	capture        CaptureFunc
	captureTimeout time.Duration
	preview        *previewData
	previewSeq     int

	chosen   string
	quitting bool

	bus      *command.Bus
	handlers map[reflect.Type]msgHandler
}

// NewModel builds the picker over an already-built entry list.
func NewModel(ctx context.Context, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	layout := opts.Layout
	if layout != LayoutStacked {
		layout = LayoutSideBySide
	}
	timeout := opts.CaptureTimeout
	if timeout <= 0 {
		timeout = defaultCaptureTimeout
	}
	m := &Model{
		ctx:            ctx,
		level:          uistate.NewLevel(opts.Entries),
		mode:           ModePicker,
		layout:         layout,
		showFooter:     opts.ShowFooter,
		version:        opts.Version,
		rename:         opts.Rename,
		capture:        opts.Capture,
		captureTimeout: timeout,
		bus:            command.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	h := help.New()
	h.ShortSeparator = " │ "
	h.Styles.ShortKey = *styles.FooterKey
	h.Styles.ShortDesc = *styles.FooterText
	h.Styles.ShortSeparator = *styles.FooterText
	m.help = h

	c := cursor.New()
	c.Style = *styles.Cursor
	c.TextStyle = *styles.Filter
	c.SetMode(cursor.CursorStatic)
	c.SetChar(" ")
	m.filterCursor = c

	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.filterCursor.Focus()
	m.syncViewport()
	return m.ensurePreview()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleOverlay(msg); handled {
		return m, cmd
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Chosen returns the target picked by the user, or "" when the picker was
// cancelled or closed after a rename.
func (m *Model) Chosen() string {
	return m.chosen
}

// Mode reports the active overlay.
func (m *Model) Mode() Mode {
	return m.mode
}

// Level exposes the list state.
func (m *Model) Level() *level {
	return m.level
}

// Layout reports the current layout preference.
func (m *Model) Layout() Layout {
	return m.layout
}

func (m *Model) handleOverlay(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeHelp:
		return m.handleHelpOverlay(msg)
	case ModeRename:
		return m.handleRenameForm(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(previewLoadedMsg{}):  m.handlePreviewLoadedMsg,
		reflect.TypeOf(menu.RenameResult{}): m.handleRenameResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}
