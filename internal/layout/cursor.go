package layout

// Direction is a keyboard navigation direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cursor tracks the highlighted item across layout passes. Movement
// saturates at the sequence boundaries rather than wrapping, and every
// transition clamps into [0, count) - there is no error path.
type Cursor struct {
	index    int
	present  bool
	disabled bool
}

// SetEnabled toggles navigation. While disabled, Move is a silent no-op.
func (c *Cursor) SetEnabled(enabled bool) {
	c.disabled = !enabled
}

// Enabled reports whether navigation is active
func (c *Cursor) Enabled() bool {
	return !c.disabled
}

// Index returns the current item index, and whether one is set
func (c *Cursor) Index() (int, bool) {
	if !c.present {
		return 0, false
	}
	return c.index, true
}

// Move applies one directional step. Left/right step by one item, up/down
// by one row (the column count). A cursor that isn't set yet lands on the
// first item.
func (c *Cursor) Move(dir Direction, columns, count int) {
	if c.disabled || count <= 0 {
		return
	}
	if columns < 1 {
		columns = 1
	}
	if !c.present {
		c.index = 0
		c.present = true
		return
	}

	switch dir {
	case DirRight:
		c.index++
	case DirLeft:
		c.index--
	case DirDown:
		c.index += columns
	case DirUp:
		c.index -= columns
	}

	if c.index < 0 {
		c.index = 0
	}
	if c.index > count-1 {
		c.index = count - 1
	}
}

// Select places the cursor on a specific item, clamped into range
func (c *Cursor) Select(i, count int) {
	if c.disabled || count <= 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > count-1 {
		i = count - 1
	}
	c.index = i
	c.present = true
}

// Clamp pulls a stale cursor back in range after the sequence shrank
func (c *Cursor) Clamp(count int) {
	if !c.present {
		return
	}
	if count <= 0 {
		c.index = 0
		c.present = false
		return
	}
	if c.index > count-1 {
		c.index = count - 1
	}
}

// Clear unsets the cursor
func (c *Cursor) Clear() {
	c.index = 0
	c.present = false
}
