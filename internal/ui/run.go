package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

var newProgram = func(ctx context.Context, model tea.Model) interface {
	Run() (tea.Model, error)
} {
	return tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
}

// Run shows the picker until the user chooses a pane, renames something or
// quits, and returns the chosen target ("" when there is none). The terminal
// is restored before Run returns.
func Run(ctx context.Context, opts Options) (string, error) {
	model := NewModel(ctx, opts)
	final, err := newProgram(ctx, model).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return "", fmt.Errorf("run picker: %w", err)
	}
	if m, ok := final.(*Model); ok && m != nil {
		return m.Chosen(), nil
	}
	return model.Chosen(), nil
}
