package parser

import (
	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/lexer"
)

// ParseModule parses a sequence of top-level statements up to end of input.
// Swift has no separate top-level declaration list: a compilation unit is
// just a statement list, so this is ParseStatement run in a loop.
func ParseModule(c *cursor.Cursor) (*ast.Module, *diagnostics.ParseError) {
	start := c.Position()
	var stmts []ast.Statement
	for {
		if err := lexer.SkipTrivia(c); err != nil {
			return nil, err
		}
		if _, ok := c.Peek(); !ok {
			break
		}
		stmt, err := ParseStatement(c)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Module{Span: ast.Span{Start: start, End: c.Position()}, Statements: stmts}, nil
}
