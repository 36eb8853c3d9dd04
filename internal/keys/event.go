package keys

import "fmt"

// EventKind distinguishes the host event types the menu bar inspects.
type EventKind int

const (
	KindNone EventKind = iota

	// KindShortcutOverride is the pre-dispatch query asking whether a
	// component wants to claim a key combination before default handling.
	KindShortcutOverride

	// KindKeyDown and KindKeyUp are ordinary key transitions.
	KindKeyDown
	KindKeyUp

	// KindMouseDown is any mouse button press.
	KindMouseDown
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case KindShortcutOverride:
		return "shortcut-override"
	case KindKeyDown:
		return "key-down"
	case KindKeyUp:
		return "key-up"
	case KindMouseDown:
		return "mouse-down"
	default:
		return "none"
	}
}

// Event is a single input event as delivered by the host event system.
type Event struct {
	Kind EventKind
	Key  Key
	Rune rune
	Mods Modifier

	// Text is the text the event would type, empty for non-printing keys.
	Text string
}

// Press builds a key-press event for a non-character key.
func Press(key Key, mods Modifier) Event {
	return Event{Kind: KindKeyDown, Key: key, Mods: mods}
}

// Release builds a key-release event for a non-character key.
func Release(key Key, mods Modifier) Event {
	return Event{Kind: KindKeyUp, Key: key, Mods: mods}
}

// Typed builds a key-press event for a typed character.
func Typed(r rune, mods Modifier) Event {
	return Event{Kind: KindKeyDown, Key: runeKey(r), Rune: r, Mods: mods, Text: string(r)}
}

// ShortcutOverride builds the claim-check twin of an event, preserving its
// key, rune, and modifiers.
func ShortcutOverride(ev Event) Event {
	ev.Kind = KindShortcutOverride
	return ev
}

// MouseDown builds a mouse button press event.
func MouseDown() Event {
	return Event{Kind: KindMouseDown}
}

func runeKey(r rune) Key {
	if k := LetterKey(r); k != KeyNone {
		return k
	}
	if k := DigitKey(r); k != KeyNone {
		return k
	}
	if r == ' ' {
		return KeySpace
	}
	return KeyRune
}

// SingleRune returns the event's typed character when the event types
// exactly one, which is the qualification mnemonic handling uses.
func (e Event) SingleRune() (rune, bool) {
	rs := []rune(e.Text)
	if len(rs) != 1 {
		return 0, false
	}
	return rs[0], true
}

// String renders the event for trace logs, e.g. "key-down Alt+F".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune && e.Rune != 0 {
		name = string(e.Rune)
	}
	if mods := e.Mods.String(); mods != "" {
		return fmt.Sprintf("%s %s+%s", e.Kind, mods, name)
	}
	return fmt.Sprintf("%s %s", e.Kind, name)
}
