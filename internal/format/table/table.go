package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Bounds clamps a column width. A zero Max leaves the column uncapped.
type Bounds struct {
	Min int
	Max int
}

// Widths returns the display width of the widest cell in each column,
// clamped to bounds. Missing cells count as empty.
func Widths(rows [][]string, bounds []Bounds) []int {
	widths := make([]int, len(bounds))
	for _, row := range rows {
		for c := range bounds {
			if c >= len(row) {
				break
			}
			if w := cellWidth(row[c]); w > widths[c] {
				widths[c] = w
			}
		}
	}
	for c, b := range bounds {
		if widths[c] < b.Min {
			widths[c] = b.Min
		}
		if b.Max > 0 && widths[c] > b.Max {
			widths[c] = b.Max
		}
	}
	return widths
}

// Fit pads or truncates cell to exactly width display cells. Overlong
// cells end in "…".
func Fit(cell string, width int, align Alignment) string {
	if width <= 0 {
		return ""
	}
	w := cellWidth(cell)
	if w > width {
		cell = truncate.StringWithTail(cell, uint(width), "…")
		w = cellWidth(cell)
	}
	pad := width - w
	if pad <= 0 {
		return cell
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + cell
	}
	return cell + strings.Repeat(" ", pad)
}

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := len(rows[0])
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if c >= colCount {
				break
			}
			width := cellWidth(cell)
			if width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c >= colCount {
				break
			}
			if c > 0 {
				b.WriteString("  ")
			}
			width := widths[c] - cellWidth(cell)
			if width < 0 {
				width = 0
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, width)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				// no trailing padding on the last column
				if c < colCount-1 {
					writeSpaces(&b, width)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		b.WriteByte(' ')
	}
}
