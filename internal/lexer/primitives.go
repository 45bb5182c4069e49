package lexer

import (
	"github.com/swiftsyntax/swiftparse/internal/combinator"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/token"
)

// Tok adapts a raw scanner into a combinator.Parser[token.Token] that skips
// leading trivia first, matching the spec.md §4.2 rule that trivia-skipping
// runs "before every token-producing parser."
func Tok(scan func(*cursor.Cursor) (token.Token, *diagnostics.ParseError)) combinator.Parser[token.Token] {
	return func(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
		before := c.Save()
		if err := SkipTrivia(c); err != nil {
			c.Restore(before)
			return token.Token{}, err
		}
		tok, err := scan(c)
		if err != nil {
			c.Restore(before)
		}
		return tok, err
	}
}

// Keyword matches the reserved word `word` exactly, failing without
// consuming input on any other identifier or non-identifier token.
func Keyword(word string) combinator.Parser[token.Token] {
	return Tok(func(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
		start := c.Position()
		tok, err := ScanIdentifierOrKeyword(c)
		if err != nil {
			return token.Token{}, err
		}
		if tok.Lexeme != word {
			return token.Token{}, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected keyword '%s', got '%s'", word, tok.Lexeme)
		}
		return tok, nil
	})
}

// Ident matches any non-reserved identifier (IdentLower or IdentUpper).
func Ident(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
	return Tok(func(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
		start := c.Position()
		if r, ok := c.Peek(); ok && r == '`' {
			return ScanBacktickedIdentifier(c)
		}
		tok, err := ScanIdentifierOrKeyword(c)
		if err != nil {
			return token.Token{}, err
		}
		if tok.Kind == token.Keyword {
			return token.Token{}, diagnostics.NewParseError(diagnostics.KindSyntax, start, "reserved word '%s' cannot be used as an identifier", tok.Lexeme)
		}
		return tok, nil
	})(c)
}

// Operator matches any operator-class run.
func Operator(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
	return Tok(ScanOperator)(c)
}

// OperatorSymbol matches a specific operator lexeme exactly.
func OperatorSymbol(symbol string) combinator.Parser[token.Token] {
	return Tok(func(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
		start := c.Position()
		tok, err := ScanOperator(c)
		if err != nil {
			return token.Token{}, err
		}
		if tok.Lexeme != symbol {
			return token.Token{}, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected operator '%s', got '%s'", symbol, tok.Lexeme)
		}
		return tok, nil
	})
}

// Punct matches a specific single-character delimiter exactly.
func Punct(ch string) combinator.Parser[token.Token] {
	return Tok(func(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
		start := c.Position()
		tok, err := ScanPunct(c)
		if err != nil {
			return token.Token{}, err
		}
		if tok.Lexeme != ch {
			return token.Token{}, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected '%s', got '%s'", ch, tok.Lexeme)
		}
		return tok, nil
	})
}

// Pound matches a specific directive exactly, e.g. Pound("#if").
func Pound(directive string) combinator.Parser[token.Token] {
	return Tok(func(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
		start := c.Position()
		tok, err := ScanPoundDirective(c)
		if err != nil {
			return token.Token{}, err
		}
		if tok.Lexeme != directive {
			return token.Token{}, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected '%s', got '%s'", directive, tok.Lexeme)
		}
		return tok, nil
	})
}

// Integer matches a numeric literal token (any radix). Floating-point
// literals such as `1.5` or `0x1p4` are matched too, with Kind FloatLiteral.
func Integer(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
	return Tok(func(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
		return ScanNumericLiteral(c, false)
	})(c)
}
