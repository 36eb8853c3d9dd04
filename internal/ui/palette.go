package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/fermata-io/menunav/internal/logging/events"
	"github.com/fermata-io/menunav/internal/menu"
	"github.com/fermata-io/menunav/internal/ui/command"
	uistate "github.com/fermata-io/menunav/internal/ui/state"
)

// openPalette shows the fuzzy action palette over every menu leaf. Opening it
// ends any menu-bar navigation in flight; the two flows never share the
// keyboard.
func (m *Model) openPalette() {
	m.controller.CancelNavigation()
	items := make([]uistate.Item, 0, 48)
	m.menus.WalkLeaves(func(menuID string, item menu.Item) {
		if item.Action == "" {
			return
		}
		items = append(items, uistate.Item{ID: item.Action, Label: menu.CleanTitle(item.Title)})
	})
	lvl := uistate.NewLevel("palette", "Actions", items)
	if len(items) > 0 {
		lvl.Cursor = 0
	}
	m.palette = lvl
	m.filterCursorDirty = true
	events.UI.PaletteOpen()
}

func (m *Model) closePalette(reason string) {
	if m.palette == nil {
		return
	}
	m.palette = nil
	events.UI.PaletteClose(reason)
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	lvl := m.palette

	if key.Matches(msg, m.keymap.Quit) {
		return tea.Quit
	}
	if key.Matches(msg, m.keymap.Palette) {
		m.closePalette("toggle")
		return nil
	}

	switch msg.Type {
	case tea.KeyEscape:
		m.closePalette("escape")
		return nil
	case tea.KeyEnter:
		entry, ok := lvl.Current()
		if !ok {
			m.closePalette("empty")
			return nil
		}
		m.closePalette("run")
		if entry.ID == "file-open" || entry.ID == "file-save-as" {
			m.openPrompt(entry.ID)
			return nil
		}
		return m.bus.Execute(command.Request{Name: entry.ID, Label: entry.Label})
	case tea.KeyUp:
		lvl.MoveCursorUp()
		return nil
	case tea.KeyDown:
		lvl.MoveCursorDown()
		return nil
	case tea.KeyHome:
		if lvl.Filter == "" {
			lvl.MoveCursorHome()
		} else {
			m.noteFilterCursorMoved(lvl.MoveFilterCursorStart())
		}
		return nil
	case tea.KeyEnd:
		if lvl.Filter == "" {
			lvl.MoveCursorEnd()
		} else {
			m.noteFilterCursorMoved(lvl.MoveFilterCursorEnd())
		}
		return nil
	case tea.KeyLeft:
		m.noteFilterCursorMoved(lvl.MoveFilterCursorRuneBackward())
		return nil
	case tea.KeyRight:
		m.noteFilterCursorMoved(lvl.MoveFilterCursorRuneForward())
		return nil
	case tea.KeyBackspace:
		if msg.Alt {
			m.noteFilterChange(lvl.DeleteFilterWordBackward())
		} else {
			m.noteFilterChange(lvl.DeleteFilterRuneBackward())
		}
		return nil
	case tea.KeyCtrlU:
		if lvl.Filter != "" {
			lvl.SetFilter("", 0)
			m.filterCursorDirty = true
			events.Filter.Cleared()
		}
		return nil
	case tea.KeySpace:
		m.noteFilterChange(lvl.InsertFilterText(" "))
		return nil
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		m.noteFilterChange(lvl.InsertFilterText(string(msg.Runes)))
		return nil
	}
	return nil
}

func (m *Model) noteFilterCursorMoved(moved bool) {
	if moved {
		m.filterCursorDirty = true
	}
}

func (m *Model) noteFilterChange(changed bool) {
	if !changed {
		return
	}
	m.filterCursorDirty = true
	events.Filter.Changed(m.palette.Filter, len(m.palette.Items))
}
