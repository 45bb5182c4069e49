package parser

import (
	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/lexer"
)

// parseLiteral parses a numeric, boolean, nil, or string literal.
func parseLiteral(c *cursor.Cursor) (ast.Literal, *diagnostics.ParseError) {
	start := c.Position()

	if err := lexer.SkipTrivia(c); err != nil {
		return nil, err
	}
	if r, ok := c.Peek(); ok && r == '"' {
		return lexer.ScanStringLiteral(c, ParseExpression)
	}
	if r, ok := c.Peek(); ok && (r >= '0' && r <= '9') {
		tok, err := lexer.Integer(c)
		if err != nil {
			return nil, err
		}
		return ast.NumericLiteral{Span: ast.Span{Start: start, End: c.Position()}, Text: tok.Lexeme}, nil
	}
	if _, e := lexer.Keyword("true")(c); e == nil {
		return ast.BooleanLiteral{Span: ast.Span{Start: start, End: c.Position()}, Value: true}, nil
	}
	if _, e := lexer.Keyword("false")(c); e == nil {
		return ast.BooleanLiteral{Span: ast.Span{Start: start, End: c.Position()}, Value: false}, nil
	}
	if _, e := lexer.Keyword("nil")(c); e == nil {
		return ast.NilLiteral{Span: ast.Span{Start: start, End: c.Position()}}, nil
	}
	return nil, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected a literal")
}
