package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fermata-io/menunav/internal/actions"
	"github.com/fermata-io/menunav/internal/menu"
	"github.com/fermata-io/menunav/internal/navigation"
	"github.com/fermata-io/menunav/internal/ui/command"
)

// workspaceSection is the focus-subsystem section holding the editor panels.
const workspaceSection = "notation"

type panelSpec struct {
	name     string
	controls []string
}

// workspacePanels is the fixed panel layout of the editor shell. Controls are
// plain names; actual widgets live behind the focus subsystem only.
var workspacePanels = []panelSpec{
	{name: "toolbar", controls: []string{"new-score", "open-score", "play", "rewind", "loop"}},
	{name: "palettes", controls: []string{"clefs", "key-signatures", "time-signatures", "dynamics"}},
	{name: "score", controls: []string{"page-1"}},
}

// registerWorkspace populates the focus subsystem with the editor's panels
// and gives the first toolbar control initial focus.
func (m *Model) registerWorkspace() {
	m.nav.RegisterSection(workspaceSection)
	for _, spec := range workspacePanels {
		for _, name := range spec.controls {
			m.nav.RegisterControl(workspaceSection, spec.name, name)
		}
	}
	if ctl, ok := m.nav.FindControl(workspaceSection, workspacePanels[0].name, workspacePanels[0].controls[0]); ok {
		ctl.RequestActive()
	}
}

// cycleFocus moves keyboard focus to the first control of the next workspace
// panel. Tab reaches here only when the menu bar leaves the key unconsumed.
func (m *Model) cycleFocus() {
	current := ""
	if panel := m.nav.ActivePanel(); panel != nil {
		current = panel.Name()
	}
	next := workspacePanels[0]
	for i, spec := range workspacePanels {
		if spec.name == current {
			next = workspacePanels[(i+1)%len(workspacePanels)]
			break
		}
	}
	if ctl, ok := m.nav.FindControl(workspaceSection, next.name, next.controls[0]); ok {
		ctl.RequestActive()
	}
}

// registerActions binds every menu leaf to a handler. Most document actions
// are stubs that only record themselves; the file actions talk to the recent
// store, and quitting is finished by the command-result handler because only
// the Bubble Tea layer can emit tea.Quit.
func (m *Model) registerActions() {
	m.registry.Register(actions.NavFirstControl, "Focus first control", func(string) error {
		m.focusFirstControl()
		return nil
	})

	touchRecent := func(arg string) error {
		if arg == "" || m.store == nil {
			return nil
		}
		return m.store.Touch(arg)
	}
	// Registered up front: the Open Recent submenu is empty until the first
	// backend snapshot arrives, so the walk below never sees its entries.
	m.registry.Register("file-open-recent", "Open Recent File", touchRecent)

	m.menus.WalkLeaves(func(menuID string, item menu.Item) {
		name := item.Action
		if name == "" || m.registry.Has(name) {
			return
		}
		title := menu.CleanTitle(item.Title)
		switch name {
		case "file-open", "file-save-as", "file-open-recent":
			m.registry.Register(name, title, touchRecent)
		default:
			m.registry.Register(name, title, func(string) error { return nil })
		}
	})
}

// subscribeController reacts to menu-bar state changes: an activated menu
// materialises as a dropdown, and leaving navigation tears it down.
func (m *Model) subscribeController() {
	m.controller.OnOpenMenu(func(id string) {
		m.openDropdown(id)
	})
	m.controller.OnHighlightedChanged(func(id string) {
		if id == "" {
			m.closeDropdown()
		}
	})
}

// focusFirstControl answers the nav-first-control action: focus lands on the
// first control of the open dropdown panel, or of the active panel otherwise.
func (m *Model) focusFirstControl() {
	var panel *navigation.Panel
	if len(m.dropdown) > 0 {
		top := m.dropdown[len(m.dropdown)-1]
		panel = m.nav.RegisterPanel(menuSection, top.ID)
	} else {
		panel = m.nav.ActivePanel()
	}
	if panel == nil {
		return
	}
	if ctl := panel.FirstControl(); ctl != nil {
		ctl.RequestActive()
	}
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if res.Err != nil {
		m.errMsg = res.Err.Error()
		m.clearInfo()
		return nil
	}
	m.errMsg = ""
	switch res.Name {
	case "file-quit":
		return tea.Quit
	case "file-open", "file-open-recent":
		if res.Arg != "" {
			m.currentFile = res.Arg
			m.setInfo("Opened " + res.Arg)
		}
	case "file-save-as":
		if res.Arg != "" {
			m.currentFile = res.Arg
			m.setInfo("Saved " + res.Arg)
		}
	default:
		if m.verbose && res.Label != "" {
			m.setInfo("Executed " + res.Label)
		}
	}
	return nil
}
