package menu

import "strings"

// Item represents a menu entry. Top-level items and submenus carry children;
// leaf items carry the action dispatched when they are activated.
type Item struct {
	ID     string
	Title  string
	Action string
	Items  []Item
}

// IsLeaf reports whether the item has no children.
func (i Item) IsLeaf() bool {
	return len(i.Items) == 0
}

// Mnemonic returns the character following the first '&' in the item title,
// uppercased, or 0 when the title carries no marker.
func (i Item) Mnemonic() rune {
	return Mnemonic(i.Title)
}

// Mnemonic extracts the accelerator character from a title. The marker is the
// first '&'; a trailing '&' with nothing after it yields no mnemonic.
func Mnemonic(title string) rune {
	idx := strings.IndexRune(title, '&')
	if idx < 0 {
		return 0
	}
	rest := []rune(title[idx+1:])
	if len(rest) == 0 {
		return 0
	}
	return toUpper(rest[0])
}

// CleanTitle strips the first '&' marker so titles render without it.
func CleanTitle(title string) string {
	idx := strings.IndexRune(title, '&')
	if idx < 0 {
		return title
	}
	return title[:idx] + title[idx+1:]
}

// MnemonicIndex returns the rune offset of the mnemonic character within the
// cleaned title, or -1 when the title has none. Renderers use it to underline
// the accelerator.
func MnemonicIndex(title string) int {
	idx := strings.IndexRune(title, '&')
	if idx < 0 {
		return -1
	}
	if len([]rune(title[idx+1:])) == 0 {
		return -1
	}
	return len([]rune(title[:idx]))
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
