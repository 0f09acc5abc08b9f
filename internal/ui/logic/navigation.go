package logic

// Navigator tracks the cursor and scroll offset of the library list and
// keeps the cursor inside the visible window.
type Navigator struct {
	cursor int
	offset int
	height int
}

// NewNavigator creates a navigator with a default viewport height.
func NewNavigator() *Navigator {
	return &Navigator{height: 20}
}

// Cursor returns the current cursor row.
func (n *Navigator) Cursor() int { return n.cursor }

// Offset returns the current scroll offset.
func (n *Navigator) Offset() int { return n.offset }

// SetHeight updates the viewport height (rows available for the list).
func (n *Navigator) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.height = height
}

// SetCursor moves the cursor to the given row and scrolls it into view.
func (n *Navigator) SetCursor(row, total int) {
	n.cursor = row
	n.Clamp(total)
	n.ensureVisible(total)
}

// Clamp pulls cursor and offset back into range after the row count changed.
func (n *Navigator) Clamp(total int) {
	if total <= 0 {
		n.cursor = 0
		n.offset = 0
		return
	}
	if n.cursor >= total {
		n.cursor = total - 1
	}
	if n.cursor < 0 {
		n.cursor = 0
	}
	if n.offset > n.cursor {
		n.offset = n.cursor
	}
	if n.offset < 0 {
		n.offset = 0
	}
}

// MoveUp moves the cursor one row up.
func (n *Navigator) MoveUp(total int) {
	if n.cursor > 0 {
		n.cursor--
		n.ensureVisible(total)
	}
}

// MoveDown moves the cursor one row down.
func (n *Navigator) MoveDown(total int) {
	if n.cursor < total-1 {
		n.cursor++
		n.ensureVisible(total)
	}
}

// PageUp moves the cursor one viewport up.
func (n *Navigator) PageUp(total int) {
	n.cursor -= n.height
	if n.cursor < 0 {
		n.cursor = 0
	}
	n.ensureVisible(total)
}

// PageDown moves the cursor one viewport down.
func (n *Navigator) PageDown(total int) {
	n.cursor += n.height
	if n.cursor > total-1 {
		n.cursor = total - 1
	}
	if n.cursor < 0 {
		n.cursor = 0
	}
	n.ensureVisible(total)
}

// Home moves the cursor to the first row.
func (n *Navigator) Home(total int) {
	n.cursor = 0
	n.ensureVisible(total)
}

// End moves the cursor to the last row.
func (n *Navigator) End(total int) {
	n.cursor = total - 1
	if n.cursor < 0 {
		n.cursor = 0
	}
	n.ensureVisible(total)
}

// ensureVisible adjusts the offset so the cursor lands inside the window,
// accounting for the lines the scroll indicators occupy.
func (n *Navigator) ensureVisible(total int) {
	if n.cursor < n.offset {
		n.offset = n.cursor
	}
	for n.offset < total-1 {
		_, end, _, _ := Window(total, n.offset, n.height)
		if n.cursor < end {
			break
		}
		n.offset++
	}
	n.Clamp(total)
}

// Window computes the visible slice [start, end) of a list of total rows
// given the scroll offset and viewport height, plus whether scroll
// indicators are needed above and below. Indicator lines are carved out
// of the viewport height.
func Window(total, offset, height int) (start, end int, above, below bool) {
	if height < 1 {
		height = 1
	}
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}

	above = offset > 0
	effective := height
	if above {
		effective--
	}
	if total-offset > effective {
		below = true
		effective--
	}
	if effective < 1 {
		effective = 1
	}

	start = offset
	end = offset + effective
	if end > total {
		end = total
	}
	return start, end, above, below
}
