package combinator

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
)

// char is a minimal leaf Parser used only to exercise the combinators in
// isolation, without depending on internal/lexer.
func char(want rune) Parser[rune] {
	return func(c *cursor.Cursor) (rune, *diagnostics.ParseError) {
		r, ok := c.Peek()
		if !ok || r != want {
			return 0, diagnostics.NewParseError(diagnostics.KindSyntax, c.Position(), "expected %q", want)
		}
		c.Advance()
		return r, nil
	}
}

func digit() Parser[rune] {
	return func(c *cursor.Cursor) (rune, *diagnostics.ParseError) {
		r, ok := c.Peek()
		if !ok || r < '0' || r > '9' {
			return 0, diagnostics.NewParseError(diagnostics.KindSyntax, c.Position(), "expected a digit")
		}
		c.Advance()
		return r, nil
	}
}

func TestTryRestoresOnFailure(t *testing.T) {
	c := cursor.New("abc")
	_, err := Try(char('x'))(c)
	require.NotNil(t, err)
	require.Equal(t, "abc", c.Remaining())
}

func TestMapTransformsResult(t *testing.T) {
	c := cursor.New("5")
	p := Map(digit(), func(r rune) int { return int(r - '0') })
	v, err := p(c)
	require.Nil(t, err)
	require.Equal(t, 5, v)
}

func TestAltPicksFirstMatch(t *testing.T) {
	c := cursor.New("b")
	v, err := Alt(char('a'), char('b'), char('c'))(c)
	require.Nil(t, err)
	require.Equal(t, 'b', v)
}

func TestAltCommitsAfterConsumingInput(t *testing.T) {
	// "ax" should commit to the "a" branch (below) and fail, rather than
	// falling through to an alternative that also starts with 'a', since
	// the first alternative consumed input without being wrapped in Try.
	consumesThenFails := Seq2(char('a'), char('y'), func(a, b rune) string { return string([]rune{a, b}) })
	fallback := Map(char('a'), func(r rune) string { return "fallback" })

	c := cursor.New("ax")
	_, err := Alt(consumesThenFails, fallback)(c)
	require.Error(t, err, "Alt must not silently fall through once an alternative has consumed input")
}

func TestAltFallsThroughWhenWrappedInTry(t *testing.T) {
	consumesThenFails := Try(Seq2(char('a'), char('y'), func(a, b rune) string { return string([]rune{a, b}) }))
	fallback := Map(char('a'), func(r rune) string { return "fallback" })

	c := cursor.New("ax")
	v, err := Alt(consumesThenFails, fallback)(c)
	require.Nil(t, err)
	require.Equal(t, "fallback", v)
}

func TestManyCollectsZeroOrMore(t *testing.T) {
	c := cursor.New("aaab")
	v, err := Many(char('a'))(c)
	require.Nil(t, err)
	require.Equal(t, []rune{'a', 'a', 'a'}, v)
	require.Equal(t, "b", c.Remaining())
}

func TestManyOnNoMatchesReturnsEmpty(t *testing.T) {
	c := cursor.New("b")
	v, err := Many(char('a'))(c)
	require.Nil(t, err)
	require.Empty(t, v)
	require.Equal(t, "b", c.Remaining())
}

func TestSomeRequiresAtLeastOne(t *testing.T) {
	c := cursor.New("b")
	_, err := Some(char('a'))(c)
	require.NotNil(t, err)
}

func TestSepBy1ParsesCommaList(t *testing.T) {
	c := cursor.New("1,2,3")
	v, err := SepBy1[rune, rune](digit(), char(','))(c)
	require.Nil(t, err)
	require.Equal(t, []rune{'1', '2', '3'}, v)
}

func TestOptReturnsZeroValueWithoutConsuming(t *testing.T) {
	c := cursor.New("xyz")
	v, err := Opt(char('a'))(c)
	require.Nil(t, err)
	require.Equal(t, rune(0), v)
	require.Equal(t, "xyz", c.Remaining())
}

func TestNotFollowedBySucceedsWhenInnerFails(t *testing.T) {
	c := cursor.New("b")
	_, err := NotFollowedBy(char('a'))(c)
	require.Nil(t, err)
	require.Equal(t, "b", c.Remaining(), "NotFollowedBy must not consume input")
}

func TestNotFollowedByFailsWhenInnerSucceeds(t *testing.T) {
	c := cursor.New("a")
	_, err := NotFollowedBy(char('a'))(c)
	require.NotNil(t, err)
}

func TestLookAheadDoesNotConsume(t *testing.T) {
	c := cursor.New("abc")
	v, err := LookAhead(char('a'))(c)
	require.Nil(t, err)
	require.Equal(t, 'a', v)
	require.Equal(t, "abc", c.Remaining())
}

func TestChainl1FoldsLeftAssociatively(t *testing.T) {
	// "1-2-3" as left-subtract should read ((1-2)-3) = -4, not 1-(2-3) = 2.
	intDigit := Map(digit(), func(r rune) int { return int(r - '0') })
	dash := func(c *cursor.Cursor) (string, *diagnostics.ParseError) {
		_, err := char('-')(c)
		if err != nil {
			return "", err
		}
		return "-", nil
	}
	c := cursor.New("1-2-3")
	v, err := Chainl1(intDigit, Parser[string](dash), func(left, right int, _ string) int {
		return left - right
	})(c)
	require.Nil(t, err)
	require.Equal(t, -4, v)
}
