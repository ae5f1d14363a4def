package menu

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type commitRecorder struct {
	calls []RenameRequest
	err   error
}

func (r *commitRecorder) commit(req RenameRequest) error {
	r.calls = append(r.calls, req)
	return r.err
}

func sessionEntry() Entry {
	return NewSessionEntry("main", 1, true)
}

func paneEntry(window, path string) Entry {
	return NewPaneEntry(PaneSpec{
		Target:        "main:3.2",
		Session:       "main",
		WindowName:    window,
		Columns:       Columns{Title: "zsh", Path: path},
		FirstInWindow: false,
	})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestExtractWindowPrefix(t *testing.T) {
	cases := []struct {
		label, path, want string
	}{
		{"claude settings", "settings", "claude"},
		{"vim me/settings", "settings", "vim"},
		{"vim settings", "blog", "vim settings"},
		{"editor", "settings", "editor"},
		{"my shell ~/src", "~/src", "my shell"},
		{"vim settings", "", "vim settings"},
		{" settings", "settings", "settings"},
	}
	for _, tc := range cases {
		if got := ExtractWindowPrefix(tc.label, tc.path); got != tc.want {
			t.Errorf("ExtractWindowPrefix(%q, %q) = %q, want %q", tc.label, tc.path, got, tc.want)
		}
	}
}

func TestWindowTarget(t *testing.T) {
	cases := map[string]string{
		"mysession:3.2": "mysession:3",
		"my.sess:1.4":   "my.sess:1",
		"main:1":        "main:1",
	}
	for in, want := range cases {
		if got := WindowTarget(in); got != want {
			t.Errorf("WindowTarget(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewRenameFormPrefills(t *testing.T) {
	form := NewRenameForm(sessionEntry(), nil)
	if form == nil || form.Kind() != RenameSession || form.Value() != "main" || form.Target() != "main" {
		t.Fatalf("unexpected session form %#v", form)
	}
	if form.Title() != "Rename Session" {
		t.Fatalf("unexpected title %q", form.Title())
	}

	form = NewRenameForm(paneEntry("claude settings", "settings"), nil)
	if form == nil || form.Kind() != RenameWindow {
		t.Fatalf("expected window form, got %#v", form)
	}
	if form.Target() != "main:3" || form.Value() != "claude" {
		t.Fatalf("unexpected window form target=%q value=%q", form.Target(), form.Value())
	}

	if NewRenameForm(NewSeparatorEntry("main"), nil) != nil {
		t.Fatalf("separator rows must not open a rename form")
	}
}

func TestRenameFormSubmitCommitsOnce(t *testing.T) {
	rec := &commitRecorder{}
	form := NewRenameForm(sessionEntry(), rec.commit)
	form.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	form.Update(keyRunes("x"))

	cmd, done, cancel := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !done || cancel || cmd == nil {
		t.Fatalf("expected submit, got done=%v cancel=%v cmd=%v", done, cancel, cmd != nil)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("rename must run inside the command, got %d early calls", len(rec.calls))
	}
	res, ok := cmd().(RenameResult)
	if !ok {
		t.Fatalf("expected RenameResult")
	}
	want := RenameRequest{Kind: RenameSession, Target: "main", Name: "maix"}
	if len(rec.calls) != 1 || rec.calls[0] != want || res.Request != want || res.Err != nil {
		t.Fatalf("unexpected commit calls %#v result %#v", rec.calls, res)
	}
}

func TestRenameFormReportsCommitError(t *testing.T) {
	rec := &commitRecorder{err: errors.New("no such window")}
	form := NewRenameForm(paneEntry("editor", "src"), rec.commit)
	cmd, done, _ := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !done {
		t.Fatalf("expected submit")
	}
	res := cmd().(RenameResult)
	if res.Err == nil || res.Request.Target != "main:3" || res.Request.Kind != RenameWindow {
		t.Fatalf("unexpected result %#v", res)
	}
}

func TestRenameFormEmptyValueCancelsWithoutCommit(t *testing.T) {
	rec := &commitRecorder{}
	form := NewRenameForm(paneEntry("", "src"), rec.commit)
	form.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	form.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	cmd, done, cancel := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || done || !cancel {
		t.Fatalf("expected cancel on blank value, got done=%v cancel=%v", done, cancel)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no rename calls, got %d", len(rec.calls))
	}
}

func TestRenameFormEscapeCancels(t *testing.T) {
	rec := &commitRecorder{}
	form := NewRenameForm(sessionEntry(), rec.commit)
	cmd, done, cancel := form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil || done || !cancel || len(rec.calls) != 0 {
		t.Fatalf("expected escape to cancel without commit")
	}
}
