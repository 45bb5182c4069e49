// Package lexer implements spec.md §4.2's lexical primitives: trivia
// skipping, identifier/keyword recognition, operator scanning, numeric and
// string literal scanners, and delimiter recognition. Each primitive is a
// small function operating directly on a *cursor.Cursor and returning a
// token.Token or failing with a *diagnostics.ParseError — there is no
// separate pre-tokenization pass; the grammar layer calls these primitives
// on demand, the way a hand-written scannerless parser does.
package lexer

import (
	"strings"
	"unicode"

	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/config"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/token"
)

// SkipTrivia skips whitespace, line comments, and nested block comments.
// It is applied before every token-producing primitive and once more at
// end of input by the top-level entry points.
func SkipTrivia(c *cursor.Cursor) *diagnostics.ParseError {
	for {
		r, ok := c.Peek()
		if !ok {
			return nil
		}
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			c.Advance()
		case r == '/' && peekIs(c, 1, '/'):
			for {
				r, ok := c.Peek()
				if !ok || r == '\n' {
					break
				}
				c.Advance()
			}
		case r == '/' && peekIs(c, 1, '*'):
			if err := skipBlockComment(c); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func peekIs(c *cursor.Cursor, offset int, want rune) bool {
	r, ok := c.PeekAt(offset)
	return ok && r == want
}

// skipBlockComment consumes a `/* ... */` comment, honoring arbitrary
// nesting (spec.md §8 testable property: comment nesting).
func skipBlockComment(c *cursor.Cursor) *diagnostics.ParseError {
	start := c.Position()
	c.Advance() // '/'
	c.Advance() // '*'
	depth := 1
	for depth > 0 {
		r, ok := c.Peek()
		if !ok {
			return diagnostics.NewParseError(diagnostics.KindLexical, start, "unterminated block comment")
		}
		if r == '/' && peekIs(c, 1, '*') {
			c.Advance()
			c.Advance()
			depth++
			continue
		}
		if r == '*' && peekIs(c, 1, '/') {
			c.Advance()
			c.Advance()
			depth--
			continue
		}
		c.Advance()
	}
	return nil
}

// identKindFor distinguishes lowercase- from uppercase-led identifiers.
func identKindFor(name string) token.Kind {
	r := []rune(name)[0]
	if unicode.IsUpper(r) {
		return token.IdentUpper
	}
	return token.IdentLower
}

// isIdentifierStart reports whether r may begin an identifier: a Unicode
// letter or underscore. Spec.md §9 open question #3 notes the reference
// implementation restricts the full Unicode identifier classes; this
// accepts Go's unicode.IsLetter classification, a documented superset of
// the minimal ASCII-plus-underscore subset many embedded Swift subsets use.
func isIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentifierContinue(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r)
}

// ScanIdentifierOrKeyword scans a maximal identifier run. It returns
// token.Keyword if the text is one of the four reserved-word sets
// (token.IsReserved), matching spec.md §4.2: reserved words are lexically
// distinct from plain identifiers and may only be accepted by productions
// that explicitly look for that keyword.
func ScanIdentifierOrKeyword(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
	start := c.Position()
	r, ok := c.Peek()
	if !ok || !isIdentifierStart(r) {
		return token.Token{}, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected an identifier")
	}
	var sb strings.Builder
	for {
		r, ok := c.Peek()
		if !ok || !isIdentifierContinue(r) {
			break
		}
		sb.WriteRune(r)
		c.Advance()
	}
	name := sb.String()
	kind := identKindFor(name)
	if token.IsReserved(name) {
		kind = token.Keyword
	}
	return token.Token{Kind: kind, Lexeme: name, Line: start.Line, Column: start.Column, Offset: start.Offset}, nil
}

// ScanBacktickedIdentifier scans `` `identifier` ``, used to let a reserved
// word serve as a plain identifier when the source explicitly escapes it.
func ScanBacktickedIdentifier(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
	start := c.Position()
	if r, ok := c.Peek(); !ok || r != '`' {
		return token.Token{}, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected '`'")
	}
	c.Advance()
	inner, err := ScanIdentifierOrKeyword(c)
	if err != nil {
		return token.Token{}, err
	}
	if r, ok := c.Peek(); !ok || r != '`' {
		return token.Token{}, diagnostics.NewParseError(diagnostics.KindLexical, c.Position(), "unterminated backtick identifier")
	}
	c.Advance()
	inner.Kind = identKindFor(inner.Lexeme)
	inner.Line, inner.Column, inner.Offset = start.Line, start.Column, start.Offset
	return inner, nil
}

// ScanOperator scans a maximal run of operator-class characters (ASCII
// operator punctuation plus the Unicode ranges config.IsOperatorHead/
// IsOperatorTail name) or a backtick-quoted operator.
func ScanOperator(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
	start := c.Position()
	r, ok := c.Peek()
	if !ok || !config.IsOperatorHead(r) {
		return token.Token{}, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected an operator")
	}
	var sb strings.Builder
	sb.WriteRune(r)
	c.Advance()
	for {
		r, ok := c.Peek()
		if !ok || !config.IsOperatorTail(r) {
			break
		}
		sb.WriteRune(r)
		c.Advance()
	}
	return token.Token{Kind: token.Operator, Lexeme: sb.String(), Line: start.Line, Column: start.Column, Offset: start.Offset}, nil
}

// ScanPunct scans one of the single-character delimiters `(` `)` `{` `}`
// `[` `]` `,` `:` `;` `.` — everything spec.md §4.2 lists outside angle
// brackets, which the grammar layer treats as operator-class `<`/`>`.
const punctChars = "(){}[],:;."

func ScanPunct(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
	start := c.Position()
	r, ok := c.Peek()
	if !ok || !strings.ContainsRune(punctChars, r) {
		return token.Token{}, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected a delimiter")
	}
	c.Advance()
	return token.Token{Kind: token.Punct, Lexeme: string(r), Line: start.Line, Column: start.Column, Offset: start.Offset}, nil
}

// ScanPoundDirective scans `#` followed by an identifier run, producing the
// combined lexeme (`#if`, `#available`, `#line`, ...).
func ScanPoundDirective(c *cursor.Cursor) (token.Token, *diagnostics.ParseError) {
	start := c.Position()
	if r, ok := c.Peek(); !ok || r != '#' {
		return token.Token{}, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected '#'")
	}
	c.Advance()
	ident, err := ScanIdentifierOrKeyword(c)
	if err != nil {
		return token.Token{}, diagnostics.NewParseError(diagnostics.KindLexical, start, "expected a directive name after '#'")
	}
	return token.Token{Kind: token.PoundDirective, Lexeme: "#" + ident.Lexeme, Line: start.Line, Column: start.Column, Offset: start.Offset}, nil
}

// ExpressionParser is the callback ScanStringLiteral uses to parse an
// embedded `\(expression)` splice. The lexer package has no dependency on
// the parser package; the grammar layer's literal production injects its
// own expression parser here, breaking what would otherwise be an import
// cycle (string literals are lexical, but interpolation embeds the full
// expression grammar).
type ExpressionParser func(c *cursor.Cursor) (*ast.Expression, *diagnostics.ParseError)

// ScanStringLiteral scans a `"`-delimited literal, resolving escapes and,
// for interpolated literals, alternating ast.TextChunk/ast.ExprChunk in
// source order.
func ScanStringLiteral(c *cursor.Cursor, parseExpr ExpressionParser) (*ast.StringLiteral, *diagnostics.ParseError) {
	start := c.Position()
	if r, ok := c.Peek(); !ok || r != '"' {
		return nil, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected '\"'")
	}
	c.Advance()

	var chunks []ast.StringChunk
	var text strings.Builder
	interpolated := false

	flushText := func() {
		if text.Len() > 0 {
			chunks = append(chunks, ast.TextChunk{Text: text.String()})
			text.Reset()
		}
	}

	for {
		r, ok := c.Peek()
		if !ok {
			return nil, diagnostics.NewParseError(diagnostics.KindLexical, start, "unterminated string literal")
		}
		switch {
		case r == '"':
			c.Advance()
			flushText()
			if len(chunks) == 0 {
				chunks = []ast.StringChunk{ast.TextChunk{Text: ""}}
			}
			return &ast.StringLiteral{
				Span:         ast.Span{Start: start, End: c.Position()},
				Interpolated: interpolated,
				Chunks:       chunks,
			}, nil

		case r == '\\' && peekIs(c, 1, '('):
			interpolated = true
			flushText()
			c.Advance() // '\'
			c.Advance() // '('
			expr, err := parseExpr(c)
			if err != nil {
				return nil, err
			}
			if err := SkipTrivia(c); err != nil {
				return nil, err
			}
			r, ok := c.Peek()
			if !ok || r != ')' {
				return nil, diagnostics.NewParseError(diagnostics.KindLexical, c.Position(), "expected ')' to close string interpolation")
			}
			c.Advance()
			chunks = append(chunks, ast.ExprChunk{Expression: expr})

		case r == '\\':
			resolved, err := scanEscape(c)
			if err != nil {
				return nil, err
			}
			text.WriteRune(resolved)

		case r == '\n':
			return nil, diagnostics.NewParseError(diagnostics.KindLexical, c.Position(), "unterminated string literal")

		default:
			text.WriteRune(r)
			c.Advance()
		}
	}
}

func scanEscape(c *cursor.Cursor) (rune, *diagnostics.ParseError) {
	pos := c.Position()
	c.Advance() // consume '\'
	r, ok := c.Peek()
	if !ok {
		return 0, diagnostics.NewParseError(diagnostics.KindLexical, pos, "unterminated escape sequence")
	}
	switch r {
	case '0':
		c.Advance()
		return 0, nil
	case '\\':
		c.Advance()
		return '\\', nil
	case 't':
		c.Advance()
		return '\t', nil
	case 'n':
		c.Advance()
		return '\n', nil
	case 'r':
		c.Advance()
		return '\r', nil
	case '"':
		c.Advance()
		return '"', nil
	case '\'':
		c.Advance()
		return '\'', nil
	case 'u':
		c.Advance()
		return scanUnicodeEscape(c, pos)
	default:
		return 0, diagnostics.NewParseError(diagnostics.KindLexical, pos, "invalid escape sequence '\\%c'", r)
	}
}

func scanUnicodeEscape(c *cursor.Cursor, start cursor.Position) (rune, *diagnostics.ParseError) {
	if r, ok := c.Peek(); !ok || r != '{' {
		return 0, diagnostics.NewParseError(diagnostics.KindLexical, start, "expected '{' after '\\u'")
	}
	c.Advance()
	var sb strings.Builder
	for {
		r, ok := c.Peek()
		if !ok {
			return 0, diagnostics.NewParseError(diagnostics.KindLexical, start, "unterminated unicode escape")
		}
		if r == '}' {
			c.Advance()
			break
		}
		if !isHexDigit(r) {
			return 0, diagnostics.NewParseError(diagnostics.KindLexical, start, "invalid hex digit in unicode escape")
		}
		sb.WriteRune(r)
		c.Advance()
	}
	digits := sb.String()
	if len(digits) == 0 || len(digits) > 8 {
		return 0, diagnostics.NewParseError(diagnostics.KindLexical, start, "unicode escape must have 1-8 hex digits")
	}
	var value int64
	for _, d := range digits {
		value = value*16 + int64(hexDigitValue(d))
	}
	return rune(value), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexDigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}
