package state

// Cursor tracks the selected row of a list view. Movement clamps at the
// list edges rather than wrapping.
type Cursor struct {
	Pos int
}

// Next moves the cursor down one row within a list of n items.
func (c *Cursor) Next(n int) {
	if c.Pos < n-1 {
		c.Pos++
	}
}

// Prev moves the cursor up one row.
func (c *Cursor) Prev() {
	if c.Pos > 0 {
		c.Pos--
	}
}

// Home jumps to the first row.
func (c *Cursor) Home() {
	c.Pos = 0
}

// End jumps to the last row of a list of n items.
func (c *Cursor) End(n int) {
	if n > 0 {
		c.Pos = n - 1
	}
}

// Clamp pulls the cursor back into range after the list shrinks.
func (c *Cursor) Clamp(n int) {
	if n == 0 {
		c.Pos = 0
		return
	}
	if c.Pos > n-1 {
		c.Pos = n - 1
	}
	if c.Pos < 0 {
		c.Pos = 0
	}
}
