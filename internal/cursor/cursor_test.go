package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdvanceTracksLineAndColumn(t *testing.T) {
	c := New("ab\ncd")

	r, ok := c.Advance()
	require.True(t, ok)
	require.Equal(t, 'a', r)
	require.Equal(t, Position{Offset: 1, Line: 1, Column: 2}, c.Position())

	c.Advance() // 'b'
	c.Advance() // '\n'
	require.Equal(t, Position{Offset: 3, Line: 2, Column: 1}, c.Position())

	r, ok = c.Advance()
	require.True(t, ok)
	require.Equal(t, 'c', r)
}

func TestAdvancePastEOFIsNoOp(t *testing.T) {
	c := New("a")
	c.Advance()
	require.True(t, c.AtEOF())

	r, ok := c.Advance()
	require.False(t, ok)
	require.Equal(t, rune(0), r)
	require.True(t, c.AtEOF())
}

func TestPeekDoesNotConsume(t *testing.T) {
	c := New("xyz")
	r, ok := c.Peek()
	require.True(t, ok)
	require.Equal(t, 'x', r)

	r, ok = c.Peek()
	require.True(t, ok)
	require.Equal(t, 'x', r, "Peek must not advance the cursor")
}

func TestPeekAtOffsets(t *testing.T) {
	c := New("abc")
	r, ok := c.PeekAt(2)
	require.True(t, ok)
	require.Equal(t, 'c', r)

	_, ok = c.PeekAt(3)
	require.False(t, ok)

	_, ok = c.PeekAt(-1)
	require.False(t, ok)
}

func TestSaveRestoreRoundTrips(t *testing.T) {
	c := New("hello world")
	c.Advance()
	c.Advance()
	cp := c.Save()
	remainingAtCheckpoint := c.Remaining()

	c.Advance()
	c.Advance()
	c.Advance()
	require.NotEqual(t, remainingAtCheckpoint, c.Remaining())

	c.Restore(cp)
	require.Equal(t, remainingAtCheckpoint, c.Remaining())
}

func TestRemaining(t *testing.T) {
	c := New("swift")
	c.Advance()
	c.Advance()
	require.Equal(t, "ift", c.Remaining())
}

func TestUnicodeRunesCountAsOnePosition(t *testing.T) {
	c := New("café")
	for i := 0; i < 4; i++ {
		_, ok := c.Advance()
		require.True(t, ok)
	}
	require.True(t, c.AtEOF())
}
