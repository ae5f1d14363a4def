package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/idvorkin/rmux-helper/internal/menu"
)

const helpOverlayWidth = 60

func (m *Model) helpLines() []string {
	lines := []string{
		"",
		styles.OverlayTitle.Render("rmux-helper pick - tmux session/window/pane picker"),
		"Version: " + m.versionText(),
		"",
		styles.OverlayTitle.Render("NAVIGATION"),
	}
	for _, b := range keys.navigationBindings() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("  %s %s", styles.FooterKey.Render(fmt.Sprintf("%-11s", h.Key)), h.Desc))
	}
	lines = append(lines,
		"",
		styles.OverlayTitle.Render("DISPLAY"),
		fmt.Sprintf("  %s Session      Session header (cyan)", menu.SessionGlyph),
		fmt.Sprintf("  ├─ %s Window    Window with first pane (green)", menu.WindowGlyph),
		fmt.Sprintf("  │  └─ %s Pane   Additional pane", menu.PaneGlyph),
		fmt.Sprintf("  %s              Current pane marker", strings.TrimSpace(menu.CurrentMarker)),
		"  Bold           Current session",
		"",
		styles.OverlayHint.Render("Press any key to close..."),
	)
	return lines
}

func (m *Model) versionText() string {
	if v := strings.TrimSpace(m.version); v != "" {
		return v
	}
	return "dev"
}

func (m *Model) renderHelpOverlay(f frameLayout) string {
	lines := m.helpLines()
	width := min(helpOverlayWidth, f.width)
	height := min(len(lines)+frameBorder, f.height)
	return strings.Join(renderBox("Help", lines, width, height, styles.OverlayBorder), "\n")
}

func (m *Model) renderRenameOverlay(f frameLayout) string {
	form := m.renameForm
	width := min(renameOverlayWidth, f.width)
	height := min(renameOverlayHeight, f.height)
	rows := []string{
		styles.OverlayInput.Render(form.InputView()),
		"",
		styles.OverlayHint.Render(form.Help()),
	}
	return strings.Join(renderBox(form.Title(), rows, width, height, styles.OverlayBorder), "\n")
}

// placeOverlay draws fg centred over bg. bg rows are padded to width so the
// overlay always lands at the same column.
func placeOverlay(bg, fg string, width, height int) string {
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	fgLines := strings.Split(fg, "\n")
	fgWidth := 0
	for _, l := range fgLines {
		fgWidth = max(fgWidth, ansi.StringWidth(l))
	}
	x := max((width-fgWidth)/2, 0)
	y := max((height-len(fgLines))/2, 0)
	for i, fl := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		line := clipLine(bgLines[row], width)
		left := ansi.Truncate(line, x, "")
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(fl), "")
		bgLines[row] = left + sgrReset + fl + sgrReset + right
	}
	return strings.Join(bgLines, "\n")
}
