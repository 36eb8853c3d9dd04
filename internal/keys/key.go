// Package keys models the host event system's keyboard events: key codes,
// modifiers, event kinds, and layout-aware resolution of the physical keys
// that could have produced a typed character.
package keys

import "fmt"

// Key identifies a physical key code independent of the active layout.
type Key uint16

const (
	KeyNone Key = iota

	KeyEscape
	KeyReturn
	KeyTab
	KeyBackspace
	KeySpace

	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Modifier keys as standalone codes, for bare press/release events.
	KeyAlt
	KeyShift
	KeyControl
	KeyMeta

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// KeyRune marks character events that carry their rune in Event.Rune and
	// do not map onto one of the dedicated codes above.
	KeyRune
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyReturn:    "Return",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeySpace:     "Space",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyAlt:       "Alt",
	KeyShift:     "Shift",
	KeyControl:   "Control",
	KeyMeta:      "Meta",
	KeyRune:      "Rune",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k.IsLetter() {
		return string(rune('A' + k - KeyA))
	}
	if k.IsDigit() {
		return string(rune('0' + k - Key0))
	}
	if k.IsFunctionKey() {
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// IsLetter reports whether the key is one of the dedicated letter codes.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit reports whether the key is one of the dedicated digit codes.
func (k Key) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// IsFunctionKey reports whether the key is F1 through F12.
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsModifierKey reports whether the key itself is a modifier.
func (k Key) IsModifierKey() bool {
	return k == KeyAlt || k == KeyShift || k == KeyControl || k == KeyMeta
}

// LetterKey returns the dedicated code for an ASCII letter, or KeyNone.
func LetterKey(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	}
	return KeyNone
}

// DigitKey returns the dedicated code for an ASCII digit, or KeyNone.
func DigitKey(r rune) Key {
	if r >= '0' && r <= '9' {
		return Key0 + Key(r-'0')
	}
	return KeyNone
}
