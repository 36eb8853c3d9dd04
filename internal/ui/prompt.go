package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/fermata-io/menunav/internal/logging/events"
	"github.com/fermata-io/menunav/internal/ui/command"
)

// fileForm collects a file path for the prompt-backed file actions.
type fileForm struct {
	action string
	input  textinput.Model
}

func newFileForm(action string) *fileForm {
	in := textinput.New()
	in.Placeholder = "path/to/score.mscz"
	in.CharLimit = 512
	in.Focus()
	return &fileForm{action: action, input: in}
}

func (f *fileForm) Title() string {
	if f.action == "file-save-as" {
		return "Save score as"
	}
	return "Open score"
}

func (f *fileForm) Value() string {
	return strings.TrimSpace(f.input.Value())
}

// Update feeds a message to the form. done reports a submitted value, cancel
// an abandoned one; otherwise the text input handles the message.
func (f *fileForm) Update(msg tea.Msg) (cmd tea.Cmd, done, cancel bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape:
			return nil, false, true
		case tea.KeyEnter:
			return nil, true, false
		}
	}
	f.input, cmd = f.input.Update(msg)
	return cmd, false, false
}

// openPrompt swaps the shell into path-entry mode for a file action.
func (m *Model) openPrompt(action string) {
	m.prompt = newFileForm(action)
	events.UI.PromptOpen(action)
}

// handlePromptForm intercepts every message while the prompt is visible.
// Submitting dispatches the pending file action with the typed path.
func (m *Model) handlePromptForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.prompt == nil {
		return false, nil
	}
	if _, ok := msg.(tea.KeyMsg); !ok {
		// Non-key traffic (backend events, command results) keeps flowing
		// to the regular handlers underneath the prompt.
		return false, nil
	}

	cmd, done, cancel := m.prompt.Update(msg)
	if cancel {
		events.UI.PromptCancel(m.prompt.action)
		m.prompt = nil
		return true, nil
	}
	if done {
		form := m.prompt
		m.prompt = nil
		value := form.Value()
		if value == "" {
			events.UI.PromptCancel(form.action)
			return true, nil
		}
		events.UI.PromptSubmit(form.action, value)
		label := m.registry.Title(form.action)
		return true, m.bus.Execute(command.Request{Name: form.action, Label: label, Arg: value})
	}
	return true, cmd
}
