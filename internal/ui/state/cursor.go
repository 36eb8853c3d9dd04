package state

// MoveCursorUp moves the cursor one item up, wrapping at the top.
func (l *Level) MoveCursorUp() bool { return l.wrapCursorBy(-1) }

// MoveCursorDown moves the cursor one item down, wrapping at the bottom.
func (l *Level) MoveCursorDown() bool { return l.wrapCursorBy(1) }

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool { return l.placeCursor(0) }

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool { return l.placeCursor(len(l.Items) - 1) }

// MoveCursorPageUp moves the cursor up by one page, clamping at the top.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.placeCursor(l.Cursor - l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page, clamping at the
// bottom.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.placeCursor(l.Cursor + l.pageSize(maxVisible))
}

func (l *Level) wrapCursorBy(step int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	l.Cursor = (clampIndex(l.Cursor, n) + step + n) % n
	return true
}

func (l *Level) placeCursor(pos int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clampIndex(pos, n)
	return l.Cursor != old
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	switch {
	case total == 0:
		return 0
	case maxVisible <= 0 || maxVisible > total:
		return total
	default:
		return maxVisible
	}
}

// EnsureCursorVisible clamps the cursor into range and scrolls the viewport
// the minimum distance needed to keep it on screen.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clampIndex(l.Cursor, n)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}

	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := l.ViewportOffset
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if l.Cursor < offset {
		offset = l.Cursor
	} else if l.Cursor >= offset+maxVisible {
		offset = l.Cursor - maxVisible + 1
		if offset > maxOffset {
			offset = maxOffset
		}
	}
	l.ViewportOffset = offset
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
