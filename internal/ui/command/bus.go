package command

import (
	"github.com/fermata-io/menunav/internal/actions"
	"github.com/fermata-io/menunav/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates an action invocation coming from the UI.
type Request struct {
	Name  string
	Label string
	Arg   string
}

// Result reports the outcome of an executed action back to the model.
type Result struct {
	Name  string
	Label string
	Arg   string
	Err   error
}

// Bus coordinates the execution of dispatched actions.
type Bus struct {
	registry *actions.Registry
}

// New initialises a command bus over the action registry.
func New(registry *actions.Registry) *Bus {
	return &Bus{registry: registry}
}

// Execute wraps an action dispatch into a Bubble Tea command while emitting
// trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.Name, req.Label)
	return func() tea.Msg {
		err := b.registry.DispatchArg(req.Name, req.Arg)
		result := "ok"
		if err != nil {
			result = err.Error()
		}
		events.Command.Result(req.Name, req.Label, result)
		return Result{Name: req.Name, Label: req.Label, Arg: req.Arg, Err: err}
	}
}
