// Package cursor implements the source cursor component of spec.md §4.1: a
// rune-addressed view over the input text that tracks offset/line/column and
// supports O(1) checkpoint/restore for the combinator kernel's speculative
// backtracking.
package cursor

// Position identifies a point in the source text for diagnostics.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Checkpoint is an opaque, O(1)-restorable save point. The zero value is not
// a valid checkpoint; always obtain one from Cursor.Save.
type Checkpoint struct {
	index int
	pos   Position
}

// Cursor wraps the input text as runes and tracks position. It never
// mutates the input buffer; advancing only moves an internal index.
type Cursor struct {
	runes []rune
	index int
	pos   Position
}

// New creates a Cursor positioned before the first rune of input.
func New(input string) *Cursor {
	return &Cursor{
		runes: []rune(input),
		pos:   Position{Offset: 0, Line: 1, Column: 1},
	}
}

// Peek returns the rune at the current offset without consuming it, and
// false once the cursor is at end-of-input.
func (c *Cursor) Peek() (rune, bool) {
	if c.index >= len(c.runes) {
		return 0, false
	}
	return c.runes[c.index], true
}

// PeekAt returns the rune offsetFromCurrent positions ahead, without
// consuming anything. offsetFromCurrent == 0 is equivalent to Peek.
func (c *Cursor) PeekAt(offsetFromCurrent int) (rune, bool) {
	i := c.index + offsetFromCurrent
	if i < 0 || i >= len(c.runes) {
		return 0, false
	}
	return c.runes[i], true
}

// AtEOF reports whether the cursor has consumed the entire input.
func (c *Cursor) AtEOF() bool {
	return c.index >= len(c.runes)
}

// Advance consumes and returns the current rune, updating line/column.
// Advancing past end-of-input is a no-op that returns (0, false).
func (c *Cursor) Advance() (rune, bool) {
	r, ok := c.Peek()
	if !ok {
		return 0, false
	}
	c.index++
	c.pos.Offset++
	if r == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	return r, true
}

// Position reports the cursor's current offset/line/column.
func (c *Cursor) Position() Position {
	return c.pos
}

// Save returns a checkpoint for the cursor's current state. Restore(Save())
// is a no-op; checkpoints remain valid until the cursor is discarded.
func (c *Cursor) Save() Checkpoint {
	return Checkpoint{index: c.index, pos: c.pos}
}

// Restore rewinds the cursor to a previously saved checkpoint.
func (c *Cursor) Restore(cp Checkpoint) {
	c.index = cp.index
	c.pos = cp.pos
}

// Remaining returns the unconsumed suffix of the input as a string. Intended
// for diagnostics and tests, not hot-path scanning.
func (c *Cursor) Remaining() string {
	return string(c.runes[c.index:])
}
