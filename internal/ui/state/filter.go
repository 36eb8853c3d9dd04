package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the filter query and cursor position, refiltering the
// visible items. Entering a query remembers the list cursor; clearing the
// query restores it when the remembered row still exists.
func (l *Level) SetFilter(query string, cursor int) {
	hadQuery := strings.TrimSpace(l.Filter) != ""
	hasQuery := strings.TrimSpace(query) != ""

	l.Filter = query
	l.FilterCursor = clampRunePos(query, cursor)

	if hasQuery && !hadQuery {
		l.LastCursor = l.Cursor
	}
	if hasQuery {
		l.Cursor = 0
	}

	l.refilter()

	switch {
	case hasQuery:
		if idx := BestMatchIndex(l.Items, strings.TrimSpace(query)); idx >= 0 {
			l.Cursor = idx
		}
	case hadQuery:
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		} else if len(l.Items) > 0 {
			l.Cursor = len(l.Items) - 1
		}
		l.LastCursor = -1
	}
}

func (l *Level) refilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	switch {
	case len(l.Items) == 0:
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	case l.Cursor < 0:
		l.Cursor = len(l.Items) - 1
		return
	case l.Cursor >= len(l.Items):
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *Level) FilterCursorPos() int {
	return clampRunePos(l.Filter, l.FilterCursor)
}

// InsertFilterText inserts text at the cursor position.
func (l *Level) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	pos := l.FilterCursorPos()
	l.spliceFilter(pos, pos, text)
	return true
}

// DeleteFilterRuneBackward removes the rune before the cursor.
func (l *Level) DeleteFilterRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.spliceFilter(pos-1, pos, "")
	return true
}

// DeleteFilterWordBackward removes the word preceding the cursor, along with
// any whitespace between the word and the cursor.
func (l *Level) DeleteFilterWordBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	runes := []rune(l.Filter)
	start := pos
	for start > 0 && unicode.IsSpace(runes[start-1]) {
		start--
	}
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	l.spliceFilter(start, pos, "")
	return true
}

// MoveFilterCursorStart moves the filter cursor to the start.
func (l *Level) MoveFilterCursorStart() bool {
	if l.FilterCursorPos() == 0 {
		return false
	}
	l.FilterCursor = 0
	return true
}

// MoveFilterCursorEnd moves the filter cursor to the end.
func (l *Level) MoveFilterCursorEnd() bool {
	end := len([]rune(l.Filter))
	if l.FilterCursorPos() == end {
		return false
	}
	l.FilterCursor = end
	return true
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune left.
func (l *Level) MoveFilterCursorRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.FilterCursor = pos - 1
	return true
}

// MoveFilterCursorRuneForward moves the filter cursor one rune right.
func (l *Level) MoveFilterCursorRuneForward() bool {
	pos := l.FilterCursorPos()
	if pos >= len([]rune(l.Filter)) {
		return false
	}
	l.FilterCursor = pos + 1
	return true
}

// spliceFilter replaces the rune range [from, to) with text and reapplies
// the filter with the cursor after the inserted text.
func (l *Level) spliceFilter(from, to int, text string) {
	runes := []rune(l.Filter)
	insert := []rune(text)
	updated := make([]rune, 0, len(runes)-(to-from)+len(insert))
	updated = append(updated, runes[:from]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[to:]...)
	l.SetFilter(string(updated), from+len(insert))
}

func clampRunePos(s string, pos int) int {
	if pos < 0 {
		return 0
	}
	if n := len([]rune(s)); pos > n {
		return n
	}
	return pos
}

// FilterItems returns the items matching query, fuzzy-matched against labels
// first and falling back to case-insensitive substring search over labels
// and ids. An empty query returns everything.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	if matched := fuzzyFilter(items, trimmed); len(matched) > 0 {
		return CloneItems(matched)
	}
	return CloneItems(substringFilter(items, trimmed))
}

func fuzzyFilter(items []Item, query string) []Item {
	ranks := fuzzy.RankFindNormalizedFold(query, itemLabels(items))
	if len(ranks) == 0 {
		return nil
	}
	keep := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		keep[rank.OriginalIndex] = struct{}{}
	}
	matched := make([]Item, 0, len(keep))
	for idx, item := range items {
		if _, ok := keep[idx]; ok {
			matched = append(matched, item)
		}
	}
	return matched
}

func substringFilter(items []Item, query string) []Item {
	needle := strings.ToLower(query)
	matched := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), needle) ||
			strings.Contains(strings.ToLower(item.ID), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}

// BestMatchIndex picks the item a query most plausibly refers to: exact
// label/id match, then label prefix, id prefix, id substring, label
// substring, and finally the closest fuzzy rank.
func BestMatchIndex(items []Item, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(items) == 0 {
		if len(items) == 0 {
			return -1
		}
		return 0
	}
	needle := strings.ToLower(trimmed)
	matchers := []func(Item) bool{
		func(it Item) bool { return strings.EqualFold(it.Label, trimmed) || strings.EqualFold(it.ID, trimmed) },
		func(it Item) bool { return strings.HasPrefix(strings.ToLower(it.Label), needle) },
		func(it Item) bool { return strings.HasPrefix(strings.ToLower(it.ID), needle) },
		func(it Item) bool { return strings.Contains(strings.ToLower(it.ID), needle) },
		func(it Item) bool { return strings.Contains(strings.ToLower(it.Label), needle) },
	}
	for _, match := range matchers {
		for i, item := range items {
			if match(item) {
				return i
			}
		}
	}
	return closestFuzzyRank(items, trimmed)
}

func closestFuzzyRank(items []Item, query string) int {
	ranks := fuzzy.RankFindNormalizedFold(query, itemLabels(items))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return 0
	}
	return best.OriginalIndex
}

func itemLabels(items []Item) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	return labels
}
