package parser

import (
	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/combinator"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/lexer"
)

// ParseClosure implements spec.md §4.4: `{ [signature `in`] statements }`,
// with signature one of capture-list-alone, parameter-clause(+result),
// identifier-list(+result), or capture-list combined with either.
func ParseClosure(c *cursor.Cursor) (*ast.Closure, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Punct("{")(c); e != nil {
		return nil, e
	}

	sig := tryParseClosureSignature(c)

	var body []ast.Statement
	for {
		before := c.Save()
		if _, e := lexer.Punct("}")(c); e == nil {
			return &ast.Closure{Span: ast.Span{Start: start, End: c.Position()}, Signature: sig, Body: body}, nil
		}
		c.Restore(before)
		stmt, err := ParseStatement(c)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
}

// tryParseClosureSignature speculatively attempts a closure signature
// (capture list and/or parameter-clause/identifier-list and/or result)
// followed by `in`, restoring the cursor if no `in` is found so the brace
// body is parsed as plain statements instead.
func tryParseClosureSignature(c *cursor.Cursor) *ast.ClosureSignature {
	before := c.Save()
	start := c.Position()

	var captures []ast.Capture
	if _, e := lexer.Punct("[")(c); e == nil {
		caps, err := parseCaptureList(c)
		if err != nil {
			c.Restore(before)
			return nil
		}
		if _, e := lexer.Punct("]")(c); e != nil {
			c.Restore(before)
			return nil
		}
		captures = caps
	}

	var params []ast.Parameter
	var idents []string

	pbefore := c.Save()
	if _, e := lexer.Punct("(")(c); e == nil {
		ps, err := parseParameterList(c)
		if err == nil {
			if _, e := lexer.Punct(")")(c); e == nil {
				params = ps
			} else {
				c.Restore(pbefore)
			}
		} else {
			c.Restore(pbefore)
		}
	} else {
		c.Restore(pbefore)
	}

	if params == nil {
		ibefore := c.Save()
		ids, ok := tryParseIdentifierList(c)
		if ok {
			idents = ids
		} else {
			c.Restore(ibefore)
		}
	}

	var result ast.Type
	rbefore := c.Save()
	if _, e := lexer.OperatorSymbol("->")(c); e == nil {
		t, err := ParseType(c)
		if err == nil {
			result = t
		} else {
			c.Restore(rbefore)
		}
	} else {
		c.Restore(rbefore)
	}

	if _, e := lexer.Keyword("in")(c); e != nil {
		c.Restore(before)
		return nil
	}

	if len(captures) == 0 && params == nil && idents == nil && result == nil {
		c.Restore(before)
		return nil
	}

	return &ast.ClosureSignature{
		Span:        ast.Span{Start: start, End: c.Position()},
		Captures:    captures,
		Parameters:  params,
		Identifiers: idents,
		Result:      result,
	}
}

func parseCaptureList(c *cursor.Cursor) ([]ast.Capture, *diagnostics.ParseError) {
	return combinator.SepBy(combinator.Parser[ast.Capture](parseCapture), lexer.Punct(","))(c)
}

func parseCapture(c *cursor.Cursor) (ast.Capture, *diagnostics.ParseError) {
	spec := ast.CaptureNone
	before := c.Save()
	if _, e := lexer.Keyword("weak")(c); e == nil {
		spec = ast.CaptureWeak
	} else {
		c.Restore(before)
		if _, e := lexer.Keyword("unowned")(c); e == nil {
			spec = ast.CaptureUnowned
			ubefore := c.Save()
			if _, e := lexer.Punct("(")(c); e == nil {
				if _, e := lexer.Keyword("safe")(c); e == nil {
					spec = ast.CaptureUnownedSafe
				} else if _, e := lexer.Keyword("unsafe")(c); e == nil {
					spec = ast.CaptureUnownedUnsafe
				}
				if _, e := lexer.Punct(")")(c); e != nil {
					c.Restore(ubefore)
					spec = ast.CaptureUnowned
				}
			} else {
				c.Restore(ubefore)
			}
		} else {
			c.Restore(before)
		}
	}
	expr, err := ParseExpression(c)
	if err != nil {
		return ast.Capture{}, err
	}
	return ast.Capture{Specifier: spec, Expression: expr}, nil
}

func tryParseIdentifierList(c *cursor.Cursor) ([]string, bool) {
	before := c.Save()
	var idents []string
	first, err := lexer.Ident(c)
	if err != nil {
		c.Restore(before)
		return nil, false
	}
	idents = append(idents, first.Lexeme)
	for {
		ibefore := c.Save()
		if _, e := lexer.Punct(",")(c); e != nil {
			c.Restore(ibefore)
			break
		}
		tok, err := lexer.Ident(c)
		if err != nil {
			c.Restore(ibefore)
			break
		}
		idents = append(idents, tok.Lexeme)
	}
	return idents, true
}
