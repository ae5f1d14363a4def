package ui

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/idvorkin/rmux-helper/internal/format/table"
	"github.com/idvorkin/rmux-helper/internal/menu"
)

const (
	minIndexWidth    = 3
	minWindowWidth   = 6
	minTitleWidth    = 8
	minPathWidth     = 8
	maxTitleWidth    = 40
	maxPathWidth     = 48
	minPreviewWidth  = 30
	minPreviewHeight = 5

	treePrefixWidth = 6
	selectWidth     = 2
	glyphWidth      = 2
	frameBorder     = 2

	fallbackWidth  = 80
	fallbackHeight = 24
)

var columnBounds = []table.Bounds{
	{Min: minIndexWidth},
	{Min: minWindowWidth},
	{Min: minTitleWidth, Max: maxTitleWidth},
	{Min: minPathWidth, Max: maxPathWidth},
}

type columnWidths struct {
	index  int
	window int
	title  int
	path   int
}

// frameLayout is the geometry of one rendered frame. The list and preview
// sizes include their borders.
type frameLayout struct {
	width         int
	height        int
	sideBySide    bool
	cols          columnWidths
	listWidth     int
	listHeight    int
	previewWidth  int
	previewHeight int
}

// listRows is the number of entry rows visible inside the list border.
func (f frameLayout) listRows() int {
	if rows := f.listHeight - frameBorder; rows > 0 {
		return rows
	}
	return 0
}

// previewInner is the text area inside the preview border.
func (f frameLayout) previewInner() (int, int) {
	w := f.previewWidth - frameBorder
	h := f.previewHeight - frameBorder
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

func (m *Model) chromeRows() int {
	rows := 3 // title, legend, filter
	if m.showFooter {
		rows++
	}
	return rows
}

func (m *Model) viewportSize() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = fallbackWidth
	}
	if h <= 0 {
		h = fallbackHeight
	}
	return w, h
}

// computeLayout picks side-by-side when it is preferred and the preview
// would still get minPreviewWidth columns next to the list at its natural
// width. Otherwise the list sits above a preview of at least
// minPreviewHeight rows.
func (m *Model) computeLayout() frameLayout {
	width, height := m.viewportSize()
	visible := m.level.VisibleEntries()
	cols := computeColumnWidths(visible)
	natural := naturalListWidth(visible, cols)
	body := height - m.chromeRows()
	if body < 0 {
		body = 0
	}
	f := frameLayout{width: width, height: height, cols: cols}
	if m.layout == LayoutSideBySide && width-natural >= minPreviewWidth {
		f.sideBySide = true
		f.listWidth = natural
		f.listHeight = body
		f.previewWidth = width - natural
		f.previewHeight = body
		return f
	}
	listHeight := len(visible) + frameBorder
	if limit := body - minPreviewHeight; listHeight > limit {
		listHeight = limit
	}
	if minList := frameBorder + 1; listHeight < minList {
		listHeight = minList
		if listHeight > body {
			listHeight = body
		}
	}
	f.listWidth = width
	f.listHeight = listHeight
	f.previewWidth = width
	f.previewHeight = body - listHeight
	return f
}

// computeColumnWidths measures the visible pane rows.
func computeColumnWidths(visible []menu.Entry) columnWidths {
	rows := make([][]string, 0, len(visible))
	for _, e := range visible {
		if !e.IsPane() {
			continue
		}
		rows = append(rows, []string{e.Columns.Index, e.Columns.Window, e.Columns.Title, e.Columns.Path})
	}
	w := table.Widths(rows, columnBounds)
	return columnWidths{index: w[0], window: w[1], title: w[2], path: w[3]}
}

// paneRowWidth is the width of a rendered pane row without the selection
// marker and tree prefix.
func paneRowWidth(cols columnWidths) int {
	return glyphWidth + cols.index + 1 + cols.window + 1 + cols.title +
		ansi.StringWidth(" "+menu.ColumnRule+" ") + cols.path + ansi.StringWidth(menu.CurrentMarker)
}

// naturalListWidth is the width the list needs to show every visible row
// without truncation, border included.
func naturalListWidth(visible []menu.Entry, cols columnWidths) int {
	width := selectWidth + treePrefixWidth + paneRowWidth(cols)
	for _, e := range visible {
		if !e.IsSession() {
			continue
		}
		if w := selectWidth + ansi.StringWidth(e.Display); w > width {
			width = w
		}
	}
	return width + frameBorder
}

// treePrefix returns the branch drawn before the row at pos. A pane row is
// the last of its group when the next visible row is a separator, a session
// header or absent.
func treePrefix(visible []menu.Entry, pos int) string {
	if pos < 0 || pos >= len(visible) {
		return ""
	}
	e := visible[pos]
	if !e.IsPane() {
		return ""
	}
	last := pos+1 >= len(visible) || !visible[pos+1].IsPane()
	if e.Indent <= 1 {
		if last {
			return "└─ "
		}
		return "├─ "
	}
	if last {
		return "│  └─ "
	}
	return "│  ├─ "
}
