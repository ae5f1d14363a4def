package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestViewShowsChromeAndRows(t *testing.T) {
	m := newTestModel(t, Options{Version: "v1.2.3"})
	view := ansi.Strip(m.View())
	for _, want := range []string{
		"rmux-helper v1.2.3 │ " + projectURL,
		"⊟=session ⊡=window ⊙=pane ◀=current",
		"pick> ",
		"Sessions",
		"⊟ 1 main",
		"vim",
		"zsh",
		"▶ ",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestViewFitsTerminal(t *testing.T) {
	m := newTestModel(t, Options{Width: 100, Height: 20, ShowFooter: true})
	lines := strings.Split(m.View(), "\n")
	if len(lines) > 20 {
		t.Fatalf("expected at most 20 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > 100 {
			t.Fatalf("line %d is %d cells wide: %q", i, w, ansi.Strip(line))
		}
	}
}

func TestViewFooter(t *testing.T) {
	m := newTestModel(t, Options{ShowFooter: true})
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Enter select") || !strings.Contains(view, "C-r rename") {
		t.Fatalf("expected footer hints, got:\n%s", view)
	}
	m = newTestModel(t, Options{})
	if strings.Contains(ansi.Strip(m.View()), "C-r rename") {
		t.Fatalf("expected footer hidden by default")
	}
}

func TestViewHelpOverlay(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(tea.KeyMsg{Type: tea.KeyF1})
	view := ansi.Strip(h.View())
	for _, want := range []string{"NAVIGATION", "DISPLAY", "Press any key to close..."} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in help overlay, got:\n%s", want, view)
		}
	}
}

func TestHelpOverlayFitsAllLines(t *testing.T) {
	m := newTestModel(t, Options{})
	f := m.computeLayout()
	box := strings.Split(m.renderHelpOverlay(f), "\n")
	if want := len(m.helpLines()) + frameBorder; len(box) != want {
		t.Fatalf("expected help box of %d rows, got %d", want, len(box))
	}
	if !strings.Contains(ansi.Strip(box[len(box)-2]), "Press any key to close...") {
		t.Fatalf("expected close hint on the last inner row, got %q", ansi.Strip(box[len(box)-2]))
	}

	small := newTestModel(t, Options{Height: 12})
	f = small.computeLayout()
	if box := strings.Split(small.renderHelpOverlay(f), "\n"); len(box) != 12 {
		t.Fatalf("expected help box clamped to 12 rows, got %d", len(box))
	}
}

func TestViewLeavesViewportAlone(t *testing.T) {
	m := newTestModel(t, Options{})
	m.level.Cursor = 1
	m.level.ViewportOffset = 3
	_ = m.View()
	if m.level.ViewportOffset != 3 || m.level.Cursor != 1 {
		t.Fatalf("expected View not to touch list state, offset=%d cursor=%d", m.level.ViewportOffset, m.level.Cursor)
	}
}

func TestViewCurrentPaneMarker(t *testing.T) {
	m := newTestModel(t, Options{})
	view := ansi.Strip(m.View())
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "vim") && !strings.Contains(line, "◀") {
			t.Fatalf("expected current marker on the vim row, got %q", line)
		}
	}
}

func TestPlaceOverlayCentres(t *testing.T) {
	bg := strings.Join([]string{"aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc"}, "\n")
	out := ansi.Strip(placeOverlay(bg, "XX", 10, 3))
	lines := strings.Split(out, "\n")
	if lines[1] != "bbbbXXbbbb" {
		t.Fatalf("expected overlay centred on the middle row, got %q", lines[1])
	}
	if lines[0] != "aaaaaaaaaa" {
		t.Fatalf("expected other rows untouched, got %q", lines[0])
	}
}

func TestRenderBoxSize(t *testing.T) {
	rows := renderBox("Title", []string{"one", "two", "three"}, 12, 4, styles.Frame)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	for i, r := range rows {
		if w := ansi.StringWidth(r); w != 12 {
			t.Fatalf("row %d is %d cells wide: %q", i, w, ansi.Strip(r))
		}
	}
	if !strings.Contains(ansi.Strip(rows[0]), "Title") {
		t.Fatalf("expected title in the top edge, got %q", ansi.Strip(rows[0]))
	}
}
