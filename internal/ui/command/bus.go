package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/idvorkin/rmux-helper/internal/logging/events"
)

// Request names a command so its execution can be traced.
type Request struct {
	ID    string
	Label string
	Cmd   tea.Cmd
}

// Bus runs picker side effects as Bubble Tea commands.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps req.Cmd so that queueing and the resulting message type are
// traced. A request without a command yields nil.
func (b *Bus) Execute(req Request) tea.Cmd {
	if req.Cmd == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		msg := req.Cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
