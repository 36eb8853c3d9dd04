package keys

import "unicode"

// Resolver reports the physical key codes that could have produced an event
// under the active keyboard layout. Implementations interpret the event as if
// Alt were the only held modifier; that normalization is what lets Alt+letter
// mnemonics match regardless of the modifiers actually reported.
type Resolver interface {
	PossibleKeys(ev Event) Set
}

// PossibleKeysForRune resolves a bare character through res by synthesizing a
// key-release event that types it, with Alt as the only modifier.
func PossibleKeysForRune(res Resolver, r rune) Set {
	fake := Event{Kind: KindKeyUp, Key: KeyNone, Rune: r, Mods: ModAlt, Text: string(r)}
	return res.PossibleKeys(fake)
}

// USLayout resolves events against a fixed US-English layout: letters and
// digits map to their dedicated key codes with case folded, anything else
// resolves to the event's own key code when it has one.
type USLayout struct{}

// PossibleKeys implements Resolver.
func (USLayout) PossibleKeys(ev Event) Set {
	ev.Mods = ModAlt

	if ev.Key != KeyNone && ev.Key != KeyRune {
		return NewSet(ev.Key)
	}

	r := ev.Rune
	if r == 0 {
		sr, ok := ev.SingleRune()
		if !ok {
			return Set{}
		}
		r = sr
	}

	r = unicode.ToLower(r)
	if k := LetterKey(r); k != KeyNone {
		return NewSet(k)
	}
	if k := DigitKey(r); k != KeyNone {
		return NewSet(k)
	}
	if r == ' ' {
		return NewSet(KeySpace)
	}
	return Set{}
}
