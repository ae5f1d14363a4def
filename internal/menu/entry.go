package menu

// Kind says what a picker row represents.
type Kind int

const (
	KindPane Kind = iota
	KindSession
	KindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindSession:
		return "session"
	case KindSeparator:
		return "separator"
	default:
		return "pane"
	}
}

// SeparatorTarget is the target carried by every separator row.
const SeparatorTarget = "---"

// Row glyphs, also shown in the picker legend.
const (
	SessionGlyph = "⊟"
	WindowGlyph  = "⊡"
	PaneGlyph    = "⊙"
	ColumnRule   = "│"
	// CurrentMarker is appended to the current pane's display text.
	CurrentMarker = " ◀"
)

// Columns are the aligned fields of a pane row. An empty field does not
// apply to the row: only the first pane of a window has Index and Window.
type Columns struct {
	Index  string
	Window string
	Title  string
	Path   string
}

// Entry is one row of the flattened session/window/pane list. Entries are
// built once per invocation and never mutated afterwards. Use the New*Entry
// constructors: Current and Last are only ever set on pane rows.
type Entry struct {
	Target      string
	Kind        Kind
	Display     string
	Columns     Columns
	Indent      int
	Current     bool
	Last        bool
	SessionName string
	// WindowName is the owning window's name on every pane row, including
	// rows whose Window column is blank.
	WindowName string
	// InCurrentSession marks rows of the session the picker was opened from.
	InCurrentSession bool
}

func NewSessionEntry(session string, sessionIndex int, inCurrent bool) Entry {
	return Entry{
		Target:           session + ":*",
		Kind:             KindSession,
		Display:          SessionGlyph + " " + itoa(sessionIndex) + " " + session,
		SessionName:      session,
		InCurrentSession: inCurrent,
	}
}

// NewSeparatorEntry returns the blank row placed before the header of
// session.
func NewSeparatorEntry(session string) Entry {
	return Entry{
		Target:      SeparatorTarget,
		Kind:        KindSeparator,
		SessionName: session,
	}
}

// PaneSpec describes a pane row for NewPaneEntry.
type PaneSpec struct {
	Target           string
	Session          string
	WindowName       string
	Columns          Columns
	FirstInWindow    bool
	Current          bool
	Last             bool
	InCurrentSession bool
}

func NewPaneEntry(spec PaneSpec) Entry {
	cols := spec.Columns
	indent := 2
	display := PaneGlyph + " " + cols.Title + " " + ColumnRule + " " + cols.Path
	if spec.FirstInWindow {
		indent = 1
		display = WindowGlyph + " " + cols.Index + " " + cols.Window + " " + cols.Title + " " + ColumnRule + " " + cols.Path
	} else {
		cols.Index = ""
		cols.Window = ""
	}
	if spec.Current {
		display += CurrentMarker
	}
	return Entry{
		Target:           spec.Target,
		Kind:             KindPane,
		Display:          display,
		Columns:          cols,
		Indent:           indent,
		Current:          spec.Current,
		Last:             spec.Last,
		SessionName:      spec.Session,
		WindowName:       spec.WindowName,
		InCurrentSession: spec.InCurrentSession,
	}
}

// IsPane reports whether the row can be confirmed or previewed as a pane.
func (e Entry) IsPane() bool { return e.Kind == KindPane }

func (e Entry) IsSeparator() bool { return e.Kind == KindSeparator }

func (e Entry) IsSession() bool { return e.Kind == KindSession }
