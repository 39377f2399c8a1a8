// Package cursor tracks a cursor and a scroll window over a list.
package cursor

// Cursor holds a cursor position and the index of the first visible row.
// List length and viewport height are passed in, since both change while
// the cursor lives.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible around the cursor
}

// New creates a cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: max(margin, 0)}
}

// Pos returns the cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta and keeps it on screen.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.EnsureVisible(listLen, height)
}

// Jump moves the cursor to pos and keeps it on screen.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.EnsureVisible(listLen, height)
}

// EnsureVisible scrolls the minimum needed so the cursor, plus the margin,
// is inside the viewport.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// Center scrolls so the cursor sits in the middle of the viewport.
func (c *Cursor) Center(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	c.offset = clamp(c.pos-height/2, max(listLen-height, 0))
}

// Scroll moves the viewport by delta rows without moving the cursor.
func (c *Cursor) Scroll(delta, listLen, height int) {
	if height <= 0 {
		return
	}
	c.offset = clamp(c.offset+delta, max(listLen-height, 0))
}

// ClampToBounds pulls the cursor and offset back inside a list that may
// have shrunk. Returns true if the cursor moved.
func (c *Cursor) ClampToBounds(listLen, height int) bool {
	if listLen == 0 {
		moved := c.pos != 0
		c.pos, c.offset = 0, 0
		return moved
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	if height > 0 {
		c.offset = clamp(c.offset, max(listLen-height, 0))
	}
	return c.pos != old
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, listLen)
	return start, min(start+height, listLen)
}

// IndexAtRow maps a viewport row to a list index.
// Returns -1 when the row shows no item.
func (c Cursor) IndexAtRow(row, listLen, height int) int {
	if row < 0 || row >= height {
		return -1
	}
	idx := c.offset + row
	if idx >= listLen {
		return -1
	}
	return idx
}

// HandleKey applies list navigation keys and reports whether key was one:
// j/down, k/up, g/home, G/end, ctrl+d and ctrl+u (half page).
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.Jump(0, listLen, height)
	case "G", "end":
		c.Jump(listLen-1, listLen, height)
	case "ctrl+d":
		c.Move(max(height/2, 1), listLen, height)
	case "ctrl+u":
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	if v > maxVal {
		v = maxVal
	}
	if v < 0 {
		return 0
	}
	return v
}
