package ui

import (
	"context"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/idvorkin/rmux-helper/internal/logging/events"
	"github.com/idvorkin/rmux-helper/internal/menu"
	"github.com/idvorkin/rmux-helper/internal/ui/command"
)

const sgrReset = "\x1b[0m"

// previewKey identifies one capture: the same pane rendered into a different
// box is captured again.
type previewKey struct {
	target string
	width  int
	height int
}

type previewData struct {
	key     previewKey
	label   string
	lines   []string
	err     string
	loading bool
	plain   bool
	seq     int
}

type previewLoadedMsg struct {
	key   previewKey
	seq   int
	lines []string
	err   error
}

// ensurePreview points the preview at the selected row. Only the current
// selection's capture is kept: it is reused while the (target, size) pair is
// unchanged and replaced otherwise.
func (m *Model) ensurePreview() tea.Cmd {
	entry, ok := m.level.Selected()
	if !ok {
		m.preview = nil
		return nil
	}
	if !entry.IsPane() {
		m.preview = &previewData{label: sessionPreviewLabel(entry)}
		return nil
	}
	width, height := m.computeLayout().previewInner()
	key := previewKey{target: entry.Target, width: width, height: height}
	if m.preview != nil && m.preview.label == "" && m.preview.key == key {
		events.Preview.CacheHit(key.target, width, height)
		return nil
	}
	if m.capture == nil || height <= 0 || width <= 0 {
		m.preview = &previewData{key: key}
		return nil
	}
	m.previewSeq++
	data := &previewData{key: key, loading: true, seq: m.previewSeq}
	m.preview = data
	events.Preview.Request(key.target, width, height, data.seq)
	return m.bus.Execute(command.Request{
		ID:    "preview:capture",
		Label: key.target,
		Cmd:   m.captureCmd(key, data.seq),
	})
}

// invalidatePreview drops the kept capture so the next ensurePreview
// captures again, even for the same pane.
func (m *Model) invalidatePreview() {
	m.preview = nil
}

func (m *Model) captureCmd(key previewKey, seq int) tea.Cmd {
	capture := m.capture
	parent := m.ctx
	timeout := m.captureTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		lines, err := capture(ctx, key.target)
		return previewLoadedMsg{key: key, seq: seq, lines: lines, err: err}
	}
}

func (m *Model) handlePreviewLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(previewLoadedMsg)
	if !ok {
		return nil
	}
	data := m.preview
	if data == nil || data.key != update.key || data.seq != update.seq {
		events.Preview.Stale(update.key.target, update.seq)
		return nil
	}
	data.loading = false
	if update.err != nil {
		events.Preview.Error(update.key.target, update.err)
		data.err = "preview unavailable: " + update.err.Error()
		data.lines = nil
		return nil
	}
	lines, plain := normalizePreview(update.lines)
	data.lines = reshapePreview(lines, update.key.width, update.key.height)
	data.plain = plain
	data.err = ""
	events.Preview.Loaded(update.key.target, len(data.lines), plain)
	return nil
}

func sessionPreviewLabel(entry menu.Entry) string {
	return "Session: " + entry.SessionName
}

// previewLineBudget is the number of captured lines shown in a width x height
// box. Wide boxes (at least twice as wide as tall) show fewer, full-width
// lines; narrow boxes fill every row.
func previewLineBudget(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	if isWidePreview(width, height) {
		return max((2*height+2)/3, 1)
	}
	return height
}

func isWidePreview(width, height int) bool {
	return width >= 2*height
}

// reshapePreview fits captured lines into a width x height box, keeping the
// tail of the capture. Lines in wide boxes are left whole for the frame to
// clip; narrow boxes truncate every overflowing line with an ellipsis.
func reshapePreview(lines []string, width, height int) []string {
	budget := previewLineBudget(width, height)
	if budget == 0 {
		return nil
	}
	end := len(lines)
	for end > 0 && strings.TrimSpace(ansi.Strip(lines[end-1])) == "" {
		end--
	}
	lines = lines[:end]
	if len(lines) > budget {
		lines = lines[len(lines)-budget:]
	}
	out := make([]string, len(lines))
	wide := isWidePreview(width, height)
	for i, line := range lines {
		if !wide && ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, "…")
			if strings.Contains(line, "\x1b[") {
				line += sgrReset
			}
		}
		out[i] = line
	}
	return out
}

// normalizePreview keeps SGR styling from capture-pane output and drops every
// other control sequence. When a line is not valid UTF-8 the whole capture
// falls back to plain text.
func normalizePreview(lines []string) ([]string, bool) {
	p := ansi.NewParser()
	out := make([]string, len(lines))
	for i, line := range lines {
		clean, ok := sanitizeSGR(p, line)
		if !ok {
			return plainPreview(lines), true
		}
		out[i] = clean
	}
	return out, false
}

func plainPreview(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.ToValidUTF8(ansi.Strip(line), "?")
	}
	return out
}

// sanitizeSGR walks line one sequence or grapheme at a time, keeping text and
// complete SGR sequences. Tabs become four spaces; any other control is
// dropped.
func sanitizeSGR(p *ansi.Parser, line string) (string, bool) {
	if !utf8.ValidString(line) {
		return "", false
	}
	var b strings.Builder
	styled := false
	var state byte
	for len(line) > 0 {
		seq, width, n, newState := ansi.DecodeSequence(line, state, p)
		if n <= 0 {
			n = 1
			seq = line[:1]
		}
		line = line[n:]
		complete := newState == ansi.NormalState
		state = newState
		switch {
		case width > 0:
			b.WriteString(seq)
		case seq == "\t":
			b.WriteString("    ")
		case complete && isSGR(p, seq):
			b.WriteString(seq)
			styled = true
		case len(seq) > 1 && seq[0] != ansi.ESC:
			// zero-width graphemes such as combining marks
			b.WriteString(seq)
		}
	}
	if styled {
		b.WriteString(sgrReset)
	}
	return b.String(), true
}

func isSGR(p *ansi.Parser, seq string) bool {
	cmd := ansi.Cmd(p.Command())
	return ansi.HasCsiPrefix(seq) && cmd.Final() == 'm' && cmd.Prefix() == 0 && cmd.Intermediate() == 0
}
