package lexer

import (
	"strings"

	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/token"
)

// ScanNumericLiteral scans binary/octal/hex/decimal integer and floating
// literals per spec.md §4.2, preserving the exact recognized text
// (including digit separators and radix prefix) as the token's Lexeme; the
// grammar layer's numeric-literal production copies this straight into
// ast.NumericLiteral.Text (spec.md §3 invariant). allowLeadingMinus permits
// a leading `-` where the calling context allows a signed literal.
func ScanNumericLiteral(c *cursor.Cursor, allowLeadingMinus bool) (token.Token, *diagnostics.ParseError) {
	start := c.Position()
	var sb strings.Builder

	if allowLeadingMinus {
		if r, ok := c.Peek(); ok && r == '-' {
			sb.WriteRune(r)
			c.Advance()
		}
	}

	r, ok := c.Peek()
	if !ok || !isDecDigit(r) {
		return token.Token{}, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected a numeric literal")
	}

	if r == '0' {
		if r2, ok2 := c.PeekAt(1); ok2 {
			switch r2 {
			case 'b':
				return scanRadixInteger(c, start, &sb, "01", "binary")
			case 'o':
				return scanRadixInteger(c, start, &sb, "01234567", "octal")
			case 'x':
				return scanHex(c, start, &sb)
			}
		}
	}

	return scanDecimal(c, start, &sb)
}

func isDecDigit(r rune) bool { return r >= '0' && r <= '9' }

func scanRadixInteger(c *cursor.Cursor, start cursor.Position, sb *strings.Builder, digits, name string) (token.Token, *diagnostics.ParseError) {
	sb.WriteRune('0')
	c.Advance()
	r, _ := c.Peek()
	sb.WriteRune(r)
	c.Advance()
	count := 0
	for {
		r, ok := c.Peek()
		if !ok {
			break
		}
		if r == '_' {
			sb.WriteRune(r)
			c.Advance()
			continue
		}
		if !strings.ContainsRune(digits, r) {
			break
		}
		sb.WriteRune(r)
		c.Advance()
		count++
	}
	if count == 0 {
		return token.Token{}, diagnostics.NewParseError(diagnostics.KindLexical, start, "empty %s literal digit run", name)
	}
	return token.Token{Kind: token.IntegerLiteral, Lexeme: sb.String(), Line: start.Line, Column: start.Column, Offset: start.Offset}, nil
}

func scanHex(c *cursor.Cursor, start cursor.Position, sb *strings.Builder) (token.Token, *diagnostics.ParseError) {
	sb.WriteRune('0')
	c.Advance()
	r, _ := c.Peek()
	sb.WriteRune(r)
	c.Advance()
	count := 0
	for {
		r, ok := c.Peek()
		if !ok {
			break
		}
		if r == '_' {
			sb.WriteRune(r)
			c.Advance()
			continue
		}
		if !isHexDigit(r) {
			break
		}
		sb.WriteRune(r)
		c.Advance()
		count++
	}
	if count == 0 {
		return token.Token{}, diagnostics.NewParseError(diagnostics.KindLexical, start, "empty hex literal digit run")
	}
	kind := token.IntegerLiteral
	// hex-float: the fraction is optional, but the exponent is mandatory
	// once a fraction is present.
	if r, ok := c.Peek(); ok && r == '.' {
		if r2, ok2 := c.PeekAt(1); ok2 && isHexDigit(r2) {
			kind = token.FloatLiteral
			sb.WriteRune('.')
			c.Advance()
			fcount := 0
			for {
				r, ok := c.Peek()
				if !ok {
					break
				}
				if r == '_' {
					sb.WriteRune(r)
					c.Advance()
					continue
				}
				if !isHexDigit(r) {
					break
				}
				sb.WriteRune(r)
				c.Advance()
				fcount++
			}
			if fcount == 0 {
				return token.Token{}, diagnostics.NewParseError(diagnostics.KindLexical, start, "empty hex fraction digit run")
			}
		}
	}
	if r, ok := c.Peek(); ok && (r == 'p' || r == 'P') {
		kind = token.FloatLiteral
		sb.WriteRune(r)
		c.Advance()
		if err := scanExponentTail(c, sb); err != nil {
			return token.Token{}, err
		}
	} else if kind == token.FloatLiteral {
		return token.Token{}, diagnostics.NewParseError(diagnostics.KindLexical, start, "hex float literal requires a 'p' exponent")
	}
	return token.Token{Kind: kind, Lexeme: sb.String(), Line: start.Line, Column: start.Column, Offset: start.Offset}, nil
}

func scanDecimal(c *cursor.Cursor, start cursor.Position, sb *strings.Builder) (token.Token, *diagnostics.ParseError) {
	count := 0
	for {
		r, ok := c.Peek()
		if !ok {
			break
		}
		if r == '_' {
			sb.WriteRune(r)
			c.Advance()
			continue
		}
		if !isDecDigit(r) {
			break
		}
		sb.WriteRune(r)
		c.Advance()
		count++
	}
	if count == 0 {
		return token.Token{}, diagnostics.NewParseError(diagnostics.KindLexical, start, "empty decimal literal digit run")
	}
	kind := token.IntegerLiteral
	if r, ok := c.Peek(); ok && r == '.' {
		if r2, ok2 := c.PeekAt(1); ok2 && isDecDigit(r2) {
			kind = token.FloatLiteral
			sb.WriteRune('.')
			c.Advance()
			for {
				r, ok := c.Peek()
				if !ok {
					break
				}
				if r == '_' {
					sb.WriteRune(r)
					c.Advance()
					continue
				}
				if !isDecDigit(r) {
					break
				}
				sb.WriteRune(r)
				c.Advance()
			}
		}
	}
	if r, ok := c.Peek(); ok && (r == 'e' || r == 'E') {
		kind = token.FloatLiteral
		sb.WriteRune(r)
		c.Advance()
		if err := scanExponentTail(c, sb); err != nil {
			return token.Token{}, err
		}
	}
	return token.Token{Kind: kind, Lexeme: sb.String(), Line: start.Line, Column: start.Column, Offset: start.Offset}, nil
}

func scanExponentTail(c *cursor.Cursor, sb *strings.Builder) *diagnostics.ParseError {
	start := c.Position()
	if r, ok := c.Peek(); ok && (r == '+' || r == '-') {
		sb.WriteRune(r)
		c.Advance()
	}
	count := 0
	for {
		r, ok := c.Peek()
		if !ok || !isDecDigit(r) {
			break
		}
		sb.WriteRune(r)
		c.Advance()
		count++
	}
	if count == 0 {
		return diagnostics.NewParseError(diagnostics.KindLexical, start, "exponent requires at least one digit")
	}
	return nil
}
