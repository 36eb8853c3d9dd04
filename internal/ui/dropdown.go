package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fermata-io/menunav/internal/logging/events"
	"github.com/fermata-io/menunav/internal/menu"
	"github.com/fermata-io/menunav/internal/ui/command"
	uistate "github.com/fermata-io/menunav/internal/ui/state"
)

// recentIDPrefix tags Open Recent entries so activation can recover the path
// from the item id alone.
const recentIDPrefix = "recent:"

// openDropdown materialises the dropdown for an activated top-level menu and
// registers its items as focusable controls. Registration happens before the
// controller dispatches nav-first-control, so first-item focus always finds
// the panel.
func (m *Model) openDropdown(menuID string) {
	m.refreshOpenRecent()
	top, ok := m.menus.FindMenu(menuID)
	if !ok {
		return
	}
	if len(m.dropdown) > 0 {
		m.closeDropdown()
	}
	lvl := newDropdownLevel(menuID, menu.CleanTitle(top.Title), top.Items)
	m.dropdown = []*level{lvl}
	m.registerDropdownPanel(lvl, top.Items)
	m.controller.SetOpenedMenuID(menuID)
	events.UI.DropdownOpen(menuID, len(top.Items))
}

// pushDropdownLevel opens a submenu as a nested level on the dropdown stack.
func (m *Model) pushDropdownLevel(item menu.Item) {
	lvl := newDropdownLevel(item.ID, menu.CleanTitle(item.Title), item.Items)
	m.dropdown = append(m.dropdown, lvl)
	m.registerDropdownPanel(lvl, item.Items)
	if ctl := m.nav.RegisterPanel(menuSection, lvl.ID).FirstControl(); ctl != nil {
		ctl.RequestActive()
	}
	events.UI.DropdownOpen(item.ID, len(item.Items))
}

func newDropdownLevel(id, title string, items []menu.Item) *level {
	entries := make([]uistate.Item, 0, len(items))
	for _, item := range items {
		entries = append(entries, uistate.Item{ID: item.ID, Label: item.Title})
	}
	lvl := uistate.NewLevel(id, title, entries)
	if len(entries) > 0 {
		lvl.Cursor = 0
	}
	return lvl
}

// registerDropdownPanel mirrors the level's items into the focus subsystem.
// Activating a control moves the level cursor; triggering a submenu control
// pushes its child level, which is how mnemonic routing descends.
func (m *Model) registerDropdownPanel(lvl *level, items []menu.Item) {
	m.nav.RegisterSection(menuSection)
	for _, item := range items {
		item := item
		ctl := m.nav.RegisterControl(menuSection, lvl.ID, item.ID)
		ctl.OnActive(func() {
			if idx := lvl.IndexOf(item.ID); idx >= 0 {
				lvl.Cursor = idx
			}
		})
		if !item.IsLeaf() {
			ctl.OnTrigger(func() {
				m.pushDropdownLevel(item)
			})
		}
	}
}

// closeDropdown tears the whole dropdown stack down and unregisters its
// panels from the focus subsystem.
func (m *Model) closeDropdown() {
	if len(m.dropdown) == 0 {
		return
	}
	for i := len(m.dropdown) - 1; i >= 0; i-- {
		m.nav.UnregisterPanel(menuSection, m.dropdown[i].ID)
		events.UI.DropdownClose(m.dropdown[i].ID)
	}
	m.dropdown = nil
	m.controller.SetOpenedMenuID("")
}

// popDropdownLevel closes the innermost submenu, or ends navigation entirely
// when only the root level remains.
func (m *Model) popDropdownLevel() {
	if len(m.dropdown) <= 1 {
		m.controller.CancelNavigation()
		return
	}
	last := m.dropdown[len(m.dropdown)-1]
	m.nav.UnregisterPanel(menuSection, last.ID)
	events.UI.DropdownClose(last.ID)
	m.dropdown = m.dropdown[:len(m.dropdown)-1]
	parent := m.dropdown[len(m.dropdown)-1]
	if ctl, ok := m.nav.FindControl(menuSection, parent.ID, last.ID); ok {
		ctl.RequestActive()
	}
}

func (m *Model) handleDropdownKey(msg tea.KeyMsg) tea.Cmd {
	lvl := m.dropdown[len(m.dropdown)-1]
	switch msg.Type {
	case tea.KeyUp:
		if lvl.MoveCursorUp() {
			m.syncDropdownFocus(lvl)
		}
	case tea.KeyDown:
		if lvl.MoveCursorDown() {
			m.syncDropdownFocus(lvl)
		}
	case tea.KeyHome:
		if lvl.MoveCursorHome() {
			m.syncDropdownFocus(lvl)
		}
	case tea.KeyEnd:
		if lvl.MoveCursorEnd() {
			m.syncDropdownFocus(lvl)
		}
	case tea.KeyEnter, tea.KeySpace:
		return m.activateDropdownItem(lvl)
	case tea.KeyEscape:
		m.popDropdownLevel()
	}
	return nil
}

// syncDropdownFocus keeps the focus subsystem in step with cursor movement so
// a later save/restore cycle lands on the item the user last saw.
func (m *Model) syncDropdownFocus(lvl *level) {
	item, ok := lvl.Current()
	if !ok {
		return
	}
	if ctl, okCtl := m.nav.FindControl(menuSection, lvl.ID, item.ID); okCtl {
		ctl.SetActive(true)
	}
	events.UI.DropdownCursor(lvl.ID, lvl.Cursor)
}

// activateDropdownItem commits the item under the cursor: submenus descend,
// prompt-backed file actions open the path form, everything else dispatches
// over the command bus. Any dispatch ends menu navigation first.
func (m *Model) activateDropdownItem(lvl *level) tea.Cmd {
	entry, ok := lvl.Current()
	if !ok {
		return nil
	}
	item, ok := m.menus.FindItem(entry.ID)
	if !ok {
		return nil
	}
	if !item.IsLeaf() {
		m.pushDropdownLevel(item)
		return nil
	}

	action := item.Action
	label := menu.CleanTitle(item.Title)
	arg := strings.TrimPrefix(entry.ID, recentIDPrefix)
	if arg == entry.ID {
		arg = ""
	}

	m.controller.CancelNavigation()
	switch action {
	case "":
		return nil
	case "file-open", "file-save-as":
		m.openPrompt(action)
		return nil
	}
	return m.bus.Execute(command.Request{Name: action, Label: label, Arg: arg})
}
