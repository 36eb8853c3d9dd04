package ui

import "github.com/charmbracelet/bubbles/key"

// KeyOverrides carries user-configured chrome key bindings; empty fields keep
// the defaults. Core navigation keys (arrows, Escape, mnemonics) are fixed by
// the menu-bar controller and cannot be remapped.
type KeyOverrides struct {
	Menu    string
	Palette string
	Quit    string
}

// Keymap binds the shell's own chrome keys.
type Keymap struct {
	Menu    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

// NewKeymap builds the chrome keymap, applying any overrides.
func NewKeymap(o KeyOverrides) Keymap {
	menuKey := firstNonEmpty(o.Menu, "f10")
	paletteKey := firstNonEmpty(o.Palette, "ctrl+p")
	quitKey := firstNonEmpty(o.Quit, "ctrl+c")
	return Keymap{
		Menu: key.NewBinding(
			key.WithKeys(menuKey),
			key.WithHelp(menuKey, "menu"),
		),
		Palette: key.NewBinding(
			key.WithKeys(paletteKey),
			key.WithHelp(paletteKey, "palette"),
		),
		Quit: key.NewBinding(
			key.WithKeys(quitKey),
			key.WithHelp(quitKey, "quit"),
		),
	}
}

func firstNonEmpty(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
