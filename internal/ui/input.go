package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/fermata-io/menunav/internal/keys"
	"github.com/fermata-io/menunav/internal/logging/events"
	"github.com/fermata-io/menunav/internal/menubar"
)

// handleKeyMsg routes every key press. The menu-bar controller gets first
// refusal: it sees a shortcut-override probe followed by the key event itself,
// mirroring how a desktop toolkit lets a focused widget claim a chord before
// the shortcut system fires. Only unconsumed keys reach the dropdown, the
// workspace, or the chrome bindings.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.palette != nil {
		return m.handlePaletteKey(keyMsg)
	}

	if key.Matches(keyMsg, m.keymap.Quit) {
		return tea.Quit
	}
	if key.Matches(keyMsg, m.keymap.Palette) {
		m.openPalette()
		return nil
	}

	target := menubar.Target{Window: appWindowName}
	if len(m.dropdown) > 0 {
		target = menubar.Target{TopLevel: true}
	}

	var evs []keys.Event
	if key.Matches(keyMsg, m.keymap.Menu) {
		// Terminals deliver no Alt press/release pair, so the menu key
		// synthesizes the whole tap: arm on press, commit on release. The
		// tap always addresses the application window, so it also ends
		// navigation when a menu is open.
		evs = []keys.Event{
			keys.Press(keys.KeyAlt, keys.ModAlt),
			keys.Release(keys.KeyAlt, keys.ModNone),
		}
		target = menubar.Target{Window: appWindowName}
	} else {
		evs = translateKeyMsg(keyMsg)
	}

	if m.feedController(target, evs) {
		return nil
	}

	if len(m.dropdown) > 0 {
		return m.handleDropdownKey(keyMsg)
	}
	if keyMsg.Type == tea.KeyTab {
		m.cycleFocus()
		return nil
	}
	return nil
}

// translateKeyMsg converts a terminal key press into the event pair the
// controller expects. Unmapped keys translate to nothing and fall through.
func translateKeyMsg(msg tea.KeyMsg) []keys.Event {
	mods := keys.ModNone
	if msg.Alt {
		mods |= keys.ModAlt
	}

	var ev keys.Event
	switch msg.Type {
	case tea.KeyLeft:
		ev = keys.Press(keys.KeyLeft, mods)
	case tea.KeyRight:
		ev = keys.Press(keys.KeyRight, mods)
	case tea.KeyUp:
		ev = keys.Press(keys.KeyUp, mods)
	case tea.KeyDown:
		ev = keys.Press(keys.KeyDown, mods)
	case tea.KeyEnter:
		ev = keys.Press(keys.KeyReturn, mods)
	case tea.KeyEscape:
		ev = keys.Press(keys.KeyEscape, mods)
	case tea.KeySpace:
		ev = keys.Press(keys.KeySpace, mods)
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return nil
		}
		ev = keys.Typed(msg.Runes[0], mods)
	default:
		return nil
	}
	return []keys.Event{keys.ShortcutOverride(ev), ev}
}

// feedController offers each event to the menu-bar controller and reports
// whether any of them was consumed.
func (m *Model) feedController(target menubar.Target, evs []keys.Event) bool {
	consumed := false
	for _, ev := range evs {
		if m.controller.FilterEvent(target, ev) {
			consumed = true
		}
	}
	return consumed
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouseMsg, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if mouseMsg.Action != tea.MouseActionPress {
		return nil
	}
	// A click lands outside the bar: navigation cancels without touching the
	// saved focus, matching click-away behavior in desktop menu bars.
	m.feedController(menubar.Target{Window: appWindowName}, []keys.Event{
		keys.MouseDown(),
	})
	return nil
}

func (m *Model) handleFocusMsg(msg tea.Msg) tea.Cmd {
	events.App.FocusGained()
	m.filterCursor.Focus()
	return nil
}

func (m *Model) handleBlurMsg(msg tea.Msg) tea.Cmd {
	events.App.FocusLost()
	m.filterCursor.Blur()
	// Losing the terminal window drops any in-flight navigation; the armed
	// Alt state would otherwise fire on a release we never see.
	m.controller.Reset()
	return nil
}
