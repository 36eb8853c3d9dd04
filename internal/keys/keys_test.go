package keys

import "testing"

func TestLetterKeyFoldsCase(t *testing.T) {
	if LetterKey('f') != KeyF {
		t.Fatalf("expected 'f' to map to KeyF, got %v", LetterKey('f'))
	}
	if LetterKey('F') != KeyF {
		t.Fatalf("expected 'F' to map to KeyF, got %v", LetterKey('F'))
	}
	if LetterKey('1') != KeyNone {
		t.Fatalf("expected digit to miss LetterKey, got %v", LetterKey('1'))
	}
}

func TestTypedAssignsDedicatedCodes(t *testing.T) {
	ev := Typed('q', ModAlt)
	if ev.Key != KeyQ {
		t.Fatalf("expected KeyQ, got %v", ev.Key)
	}
	if ev.Text != "q" {
		t.Fatalf("expected text %q, got %q", "q", ev.Text)
	}
	if ev.Kind != KindKeyDown {
		t.Fatalf("expected key-down kind, got %v", ev.Kind)
	}

	if got := Typed('7', ModNone).Key; got != Key7 {
		t.Fatalf("expected Key7, got %v", got)
	}
	if got := Typed('ö', ModNone).Key; got != KeyRune {
		t.Fatalf("expected KeyRune for non-ASCII, got %v", got)
	}
}

func TestSingleRuneQualification(t *testing.T) {
	if _, ok := Press(KeyLeft, ModNone).SingleRune(); ok {
		t.Fatalf("arrow keys type no text")
	}
	r, ok := Typed('x', ModNone).SingleRune()
	if !ok || r != 'x' {
		t.Fatalf("expected single rune 'x', got %q (ok=%v)", r, ok)
	}
}

func TestShortcutOverridePreservesPayload(t *testing.T) {
	down := Typed('f', ModAlt)
	check := ShortcutOverride(down)
	if check.Kind != KindShortcutOverride {
		t.Fatalf("expected shortcut-override kind, got %v", check.Kind)
	}
	if check.Key != down.Key || check.Rune != down.Rune || check.Mods != down.Mods {
		t.Fatalf("expected payload preserved, got %#v", check)
	}
}

func TestSetIntersects(t *testing.T) {
	a := NewSet(KeyF, KeyG)
	b := NewSet(KeyG)
	if !a.Intersects(b) || !b.Intersects(a) {
		t.Fatalf("expected sets to intersect")
	}
	if a.Intersects(NewSet(KeyZ)) {
		t.Fatalf("expected no intersection with disjoint set")
	}
	if (Set{}).Intersects(a) {
		t.Fatalf("empty set intersects nothing")
	}
}

func TestUSLayoutResolvesLettersCaseInsensitively(t *testing.T) {
	var layout USLayout
	lower := layout.PossibleKeys(Typed('f', ModNone))
	upper := layout.PossibleKeys(Typed('F', ModShift))
	if !lower.Has(KeyF) || !upper.Has(KeyF) {
		t.Fatalf("expected both cases to resolve to KeyF, got %v / %v", lower, upper)
	}
}

func TestUSLayoutResolvesConcreteKeys(t *testing.T) {
	var layout USLayout
	got := layout.PossibleKeys(Press(KeyEscape, ModNone))
	if !got.Has(KeyEscape) || len(got) != 1 {
		t.Fatalf("expected {Escape}, got %v", got)
	}
}

func TestPossibleKeysForRuneSynthesizesAltRelease(t *testing.T) {
	got := PossibleKeysForRune(USLayout{}, 'N')
	if !got.Has(KeyN) {
		t.Fatalf("expected KeyN in %v", got)
	}
	if !PossibleKeysForRune(USLayout{}, '3').Has(Key3) {
		t.Fatalf("expected Key3 resolution for digit")
	}
	if !PossibleKeysForRune(USLayout{}, '€').Empty() {
		t.Fatalf("expected unmapped symbol to resolve to empty set")
	}
}
