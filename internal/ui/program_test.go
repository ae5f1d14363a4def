package ui

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestProgramFilterAndChoose(t *testing.T) {
	stub := &captureStub{}
	m := NewModel(t.Context(), Options{Entries: testEntries(), Capture: stub.capture})
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 30))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Sessions"))
	}, teatest.WithDuration(2*time.Second))

	tm.Type("htop")
	time.Sleep(50 * time.Millisecond)
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second))
	fm, ok := final.(*Model)
	if !ok {
		t.Fatalf("expected *Model, got %T", final)
	}
	if got := fm.Chosen(); got != "work:2.1" {
		t.Fatalf("expected work:2.1 chosen, got %q", got)
	}
}

func TestProgramEscapeQuits(t *testing.T) {
	m := NewModel(t.Context(), Options{Entries: testEntries()})
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))
	time.Sleep(100 * time.Millisecond)

	tm.Send(tea.KeyMsg{Type: tea.KeyEscape})
	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second))
	if got := final.(*Model).Chosen(); got != "" {
		t.Fatalf("expected no choice, got %q", got)
	}
}

type fakeProgram struct {
	model tea.Model
	err   error
}

func (p fakeProgram) Run() (tea.Model, error) { return p.model, p.err }

func withStubProgram(t *testing.T, fn func(*Model) (tea.Model, error)) {
	t.Helper()
	prev := newProgram
	newProgram = func(_ context.Context, model tea.Model) interface{ Run() (tea.Model, error) } {
		final, err := fn(model.(*Model))
		return fakeProgram{model: final, err: err}
	}
	t.Cleanup(func() { newProgram = prev })
}

func TestRunReturnsChosenTarget(t *testing.T) {
	withStubProgram(t, func(m *Model) (tea.Model, error) {
		m.chosen = "main:1.2"
		return m, nil
	})
	got, err := Run(t.Context(), Options{Entries: testEntries()})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got != "main:1.2" {
		t.Fatalf("expected main:1.2, got %q", got)
	}
}

func TestRunTreatsKilledProgramAsCancel(t *testing.T) {
	withStubProgram(t, func(m *Model) (tea.Model, error) {
		return m, tea.ErrProgramKilled
	})
	got, err := Run(t.Context(), Options{Entries: testEntries()})
	if err != nil || got != "" {
		t.Fatalf("expected clean cancel, got %q, %v", got, err)
	}
}

func TestRunWrapsProgramErrors(t *testing.T) {
	withStubProgram(t, func(m *Model) (tea.Model, error) {
		return nil, errors.New("no tty")
	})
	if _, err := Run(t.Context(), Options{Entries: testEntries()}); err == nil || err.Error() != "run picker: no tty" {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
