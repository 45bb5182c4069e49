package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/token"
)

func TestKeywordMatchesExactWord(t *testing.T) {
	c := cursor.New("func foo")
	tok, err := Keyword("func")(c)
	require.Nil(t, err)
	require.Equal(t, "func", tok.Lexeme)
	require.Equal(t, token.Keyword, tok.Kind)
}

func TestKeywordRejectsOtherIdentifier(t *testing.T) {
	c := cursor.New("funky")
	_, err := Keyword("func")(c)
	require.NotNil(t, err)
}

func TestIdentRejectsReservedWord(t *testing.T) {
	c := cursor.New("return")
	_, err := Ident(c)
	require.NotNil(t, err)
}

func TestIdentAcceptsBacktickedReservedWord(t *testing.T) {
	c := cursor.New("`class`")
	tok, err := Ident(c)
	require.Nil(t, err)
	require.Equal(t, "class", tok.Lexeme)
}

func TestOperatorSymbolMatchesExactly(t *testing.T) {
	c := cursor.New("<=")
	tok, err := OperatorSymbol("<=")(c)
	require.Nil(t, err)
	require.Equal(t, "<=", tok.Lexeme)
}

func TestOperatorSymbolRejectsPrefixMatchOnLongerOperator(t *testing.T) {
	// "<" should not be accepted as a match for "<=" just because it's a
	// prefix: the scanner greedily consumes the whole operator run first,
	// so the lexeme actually produced is "<=", not "<".
	c := cursor.New("<=")
	_, err := OperatorSymbol("<")(c)
	require.NotNil(t, err)
}

func TestPunctMatchesSingleCharacter(t *testing.T) {
	c := cursor.New("{}")
	tok, err := Punct("{")(c)
	require.Nil(t, err)
	require.Equal(t, "{", tok.Lexeme)
}

func TestIntegerLiteralPreservesUnderscoreSeparators(t *testing.T) {
	c := cursor.New("1_000_000")
	tok, err := Integer(c)
	require.Nil(t, err)
	require.Equal(t, "1_000_000", tok.Lexeme, "literal lexeme must be kept verbatim, not normalized")
}

func TestTokSkipsLeadingTriviaAndComments(t *testing.T) {
	c := cursor.New("  // a comment\n\tfoo")
	tok, err := Ident(c)
	require.Nil(t, err)
	require.Equal(t, "foo", tok.Lexeme)
}

func TestPoundDirectiveMatchesExactly(t *testing.T) {
	c := cursor.New("#if os(Linux)")
	tok, err := Pound("#if")(c)
	require.Nil(t, err)
	require.Equal(t, "#if", tok.Lexeme)
}
