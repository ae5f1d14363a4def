package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/idvorkin/rmux-helper/internal/format/table"
	"github.com/idvorkin/rmux-helper/internal/menu"
)

const projectURL = "https://github.com/idvorkin/settings"

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	f := m.computeLayout()
	lines := []string{
		clipLine(styles.Header.Render(m.titleText()), f.width),
		clipLine(styles.Legend.Render(legendText()), f.width),
		clipLine(m.filterPrompt(), f.width),
	}
	if body := m.renderBody(f); body != "" {
		lines = append(lines, body)
	}
	if m.showFooter {
		m.help.Width = f.width
		lines = append(lines, clipLine(m.help.ShortHelpView(keys.footerBindings()), f.width))
	}
	frame := strings.Join(lines, "\n")
	switch m.mode {
	case ModeHelp:
		frame = placeOverlay(frame, m.renderHelpOverlay(f), f.width, f.height)
	case ModeRename:
		if m.renameForm != nil {
			frame = placeOverlay(frame, m.renderRenameOverlay(f), f.width, f.height)
		}
	}
	return frame
}

func (m *Model) titleText() string {
	return fmt.Sprintf("rmux-helper %s %s %s", m.versionText(), menu.ColumnRule, projectURL)
}

func legendText() string {
	return fmt.Sprintf("%s=session %s=window %s=pane %s=current",
		menu.SessionGlyph, menu.WindowGlyph, menu.PaneGlyph, strings.TrimSpace(menu.CurrentMarker))
}

func (m *Model) renderBody(f frameLayout) string {
	list := m.renderList(f)
	preview := m.renderPreview(f)
	switch {
	case list == "":
		return preview
	case preview == "":
		return list
	case f.sideBySide:
		return lipgloss.JoinHorizontal(lipgloss.Top, list, preview)
	default:
		return list + "\n" + preview
	}
}

func (m *Model) renderList(f frameLayout) string {
	rows := f.listRows()
	if rows <= 0 {
		return ""
	}
	innerW := f.listWidth - frameBorder
	visible := m.level.VisibleEntries()
	out := make([]string, 0, rows)
	if len(visible) == 0 || (m.level.VisiblePanes() == 0 && m.level.Filter != "") {
		msg := "(no panes)"
		if m.level.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.level.Filter)
		}
		out = append(out, styles.Info.Render(table.Fit(msg, innerW, table.AlignLeft)))
	} else {
		start := m.level.ViewportOffset
		for pos := start; pos < len(visible) && pos < start+rows; pos++ {
			out = append(out, m.renderRow(visible, pos, f.cols, innerW))
		}
	}
	return strings.Join(renderBox("Sessions", out, f.listWidth, f.listHeight, styles.Frame), "\n")
}

// renderRow draws the row at visible position pos padded to width cells.
func (m *Model) renderRow(visible []menu.Entry, pos int, cols columnWidths, width int) string {
	e := visible[pos]
	if e.IsSeparator() {
		return strings.Repeat(" ", width)
	}
	selected := pos == m.level.Cursor
	mark := "  "
	if selected {
		mark = "▶ "
	}
	prefix := ""
	text := e.Display
	style := styles.Session
	switch {
	case e.IsSession():
		if e.InCurrentSession {
			style = styles.SessionActive
		}
	default:
		prefix = table.Fit(treePrefix(visible, pos), treePrefixWidth, table.AlignLeft)
		text = paneRowText(e, cols)
		switch {
		case e.Current:
			style = styles.CurrentPane
		case e.InCurrentSession:
			style = styles.PaneActive
		default:
			style = styles.Pane
		}
	}
	text = table.Fit(text, width-selectWidth-ansi.StringWidth(prefix), table.AlignLeft)
	if selected {
		return styles.SelectedMark.Render(mark) + styles.Selected.Render(prefix+text)
	}
	return mark + styles.Tree.Render(prefix) + style.Render(text)
}

// paneRowText lays the pane columns out at the shared widths. Only the first
// pane of a window shows its index and window name.
func paneRowText(e menu.Entry, cols columnWidths) string {
	var b strings.Builder
	if e.Indent <= 1 {
		b.WriteString(menu.WindowGlyph + " ")
		b.WriteString(table.Fit(e.Columns.Index, cols.index, table.AlignLeft))
		b.WriteString(" ")
		b.WriteString(table.Fit(e.Columns.Window, cols.window, table.AlignLeft))
		b.WriteString(" ")
	} else {
		b.WriteString(menu.PaneGlyph + " ")
		b.WriteString(strings.Repeat(" ", cols.index+1+cols.window+1))
	}
	b.WriteString(table.Fit(e.Columns.Title, cols.title, table.AlignLeft))
	b.WriteString(" " + menu.ColumnRule + " ")
	b.WriteString(table.Fit(e.Columns.Path, cols.path, table.AlignLeft))
	if e.Current {
		b.WriteString(menu.CurrentMarker)
	} else {
		b.WriteString(strings.Repeat(" ", ansi.StringWidth(menu.CurrentMarker)))
	}
	return b.String()
}

func (m *Model) renderPreview(f frameLayout) string {
	if f.previewHeight < frameBorder || f.previewWidth < frameBorder {
		return ""
	}
	innerW, _ := f.previewInner()
	title := "Preview"
	var rows []string
	p := m.preview
	switch {
	case p == nil:
	case p.label != "":
		rows = []string{styles.PreviewLabel.Render(p.label)}
	case p.err != "":
		rows = []string{styles.PreviewError.Render(ansi.Truncate(p.err, innerW, "…"))}
	case p.loading:
		title = "Preview: " + p.key.target
		rows = []string{styles.Info.Render("Loading…")}
	default:
		title = "Preview: " + p.key.target
		rows = p.lines
	}
	return strings.Join(renderBox(title, rows, f.previewWidth, f.previewHeight, styles.Frame), "\n")
}

// renderBox frames rows in a rounded border of exactly width x height cells
// with title set into the top edge. Rows are clipped or padded to fit.
func renderBox(title string, rows []string, width, height int, border *lipgloss.Style) []string {
	if width < frameBorder || height < frameBorder {
		return nil
	}
	innerW := width - frameBorder
	innerH := height - frameBorder
	out := make([]string, 0, height)

	if innerW >= 1 {
		seg := ""
		if title != "" {
			seg = " " + title + " "
		}
		if ansi.StringWidth(seg) > innerW-1 {
			seg = ansi.Truncate(seg, innerW-1, "")
		}
		dashes := innerW - 1 - ansi.StringWidth(seg)
		top := border.Render("╭─")
		if seg != "" {
			top += styles.FrameTitle.Render(seg)
		}
		out = append(out, top+border.Render(strings.Repeat("─", dashes)+"╮"))
	} else {
		out = append(out, border.Render("╭╮"))
	}

	side := border.Render("│")
	for i := 0; i < innerH; i++ {
		content := ""
		if i < len(rows) {
			content = rows[i]
		}
		out = append(out, side+clipLine(content, innerW)+side)
	}
	out = append(out, border.Render("╰"+strings.Repeat("─", innerW)+"╯"))
	return out
}

// clipLine cuts s to width cells without a tail and pads it with spaces.
// Styling that was cut off is reset so it cannot leak past the cell.
func clipLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		s = ansi.Truncate(s, width, "")
		if strings.Contains(s, "\x1b[") {
			s += sgrReset
		}
		w = ansi.StringWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
