package parser

import (
	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/combinator"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/lexer"
)

// ParsePattern implements spec.md §4.4's pattern alternation order:
// wildcard, then value-binding, then type-casting, then a speculative
// optional-pattern, then identifier-with-type-annotation, then tuple, and
// finally expression-pattern as the catch-all.
func ParsePattern(c *cursor.Cursor) (ast.Pattern, *diagnostics.ParseError) {
	if p, e := combinator.Try(combinator.Parser[ast.Pattern](parseWildcardPattern))(c); e == nil {
		return p, nil
	}
	if p, e := combinator.Try(combinator.Parser[ast.Pattern](parseValueBindingPattern))(c); e == nil {
		return p, nil
	}
	if p, e := combinator.Try(combinator.Parser[ast.Pattern](parseIsTypePattern))(c); e == nil {
		return p, nil
	}
	if p, e := combinator.Try(combinator.Parser[ast.Pattern](parseEnumCasePattern))(c); e == nil {
		return p, nil
	}
	if p, e := combinator.Try(combinator.Parser[ast.Pattern](parseOptionalPattern))(c); e == nil {
		return p, nil
	}
	if p, e := combinator.Try(combinator.Parser[ast.Pattern](parseIdentifierPattern))(c); e == nil {
		return p, nil
	}
	if p, e := combinator.Try(combinator.Parser[ast.Pattern](parseTuplePattern))(c); e == nil {
		return p, nil
	}
	return parseExpressionPattern(c)
}

func parseWildcardPattern(c *cursor.Cursor) (ast.Pattern, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("_")(c); e != nil {
		return nil, e
	}
	typ := parseOptionalTypeAnnotation(c)
	return ast.WildcardPattern{Span: ast.Span{Start: start, End: c.Position()}, TypeAnnotation: typ}, nil
}

func parseOptionalTypeAnnotation(c *cursor.Cursor) ast.Type {
	before := c.Save()
	if _, e := lexer.Punct(":")(c); e != nil {
		c.Restore(before)
		return nil
	}
	typ, err := ParseType(c)
	if err != nil {
		c.Restore(before)
		return nil
	}
	return typ
}

func parseValueBindingPattern(c *cursor.Cursor) (ast.Pattern, *diagnostics.ParseError) {
	start := c.Position()
	kind := ast.BindingVar
	if _, e := lexer.Keyword("var")(c); e == nil {
		kind = ast.BindingVar
	} else if _, e := lexer.Keyword("let")(c); e == nil {
		kind = ast.BindingLet
	} else {
		return nil, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected 'var' or 'let'")
	}
	inner, err := ParsePattern(c)
	if err != nil {
		return nil, err
	}
	return ast.ValueBindingPattern{Span: ast.Span{Start: start, End: c.Position()}, Kind: kind, Wrapped: inner}, nil
}

func parseIsTypePattern(c *cursor.Cursor) (ast.Pattern, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("is")(c); e != nil {
		return nil, e
	}
	typ, err := ParseType(c)
	if err != nil {
		return nil, err
	}
	return ast.IsTypePattern{Span: ast.Span{Start: start, End: c.Position()}, Type: typ}, nil
}

// parseEnumCasePattern resolves spec.md §9 open question #1: an optional
// dotted type qualifier, a leading `.`, a case name, and an optional
// payload tuple of sub-patterns.
func parseEnumCasePattern(c *cursor.Cursor) (ast.Pattern, *diagnostics.ParseError) {
	start := c.Position()
	typeName := ""
	before := c.Save()
	if id, e := lexer.Ident(c); e == nil {
		if _, e2 := lexer.Punct(".")(c); e2 == nil {
			typeName = id.Lexeme
		} else {
			c.Restore(before)
		}
	} else {
		c.Restore(before)
	}
	if _, e := lexer.Punct(".")(c); e != nil {
		if typeName == "" {
			return nil, e
		}
	}
	nameTok, err := lexer.Ident(c)
	if err != nil {
		return nil, err
	}
	var payload []ast.TuplePatternElement
	pbefore := c.Save()
	if _, e := lexer.Punct("(")(c); e == nil {
		elems, err := parseTuplePatternElements(c)
		if err != nil {
			return nil, err
		}
		if _, e := lexer.Punct(")")(c); e != nil {
			return nil, e
		}
		payload = elems
	} else {
		c.Restore(pbefore)
	}
	return ast.EnumCasePattern{
		Span:       ast.Span{Start: start, End: c.Position()},
		TypeName:   typeName,
		CaseName:   nameTok.Lexeme,
		Associated: payload,
	}, nil
}

func parseOptionalPattern(c *cursor.Cursor) (ast.Pattern, *diagnostics.ParseError) {
	start := c.Position()
	inner, err := parseIdentifierPatternBare(c)
	if err != nil {
		return nil, err
	}
	if _, e := lexer.OperatorSymbol("?")(c); e != nil {
		return nil, e
	}
	return ast.OptionalPattern{Span: ast.Span{Start: start, End: c.Position()}, Wrapped: inner}, nil
}

func parseIdentifierPatternBare(c *cursor.Cursor) (ast.Pattern, *diagnostics.ParseError) {
	start := c.Position()
	nameTok, err := lexer.Ident(c)
	if err != nil {
		return nil, err
	}
	return ast.IdentifierPattern{Span: ast.Span{Start: start, End: c.Position()}, Name: nameTok.Lexeme}, nil
}

func parseIdentifierPattern(c *cursor.Cursor) (ast.Pattern, *diagnostics.ParseError) {
	start := c.Position()
	nameTok, err := lexer.Ident(c)
	if err != nil {
		return nil, err
	}
	typ := parseOptionalTypeAnnotation(c)
	return ast.IdentifierPattern{Span: ast.Span{Start: start, End: c.Position()}, Name: nameTok.Lexeme, TypeAnnotation: typ}, nil
}

func parseTuplePatternElements(c *cursor.Cursor) ([]ast.TuplePatternElement, *diagnostics.ParseError) {
	return combinator.SepBy(combinator.Parser[ast.TuplePatternElement](parseTuplePatternElement), lexer.Punct(","))(c)
}

func parseTuplePatternElement(c *cursor.Cursor) (ast.TuplePatternElement, *diagnostics.ParseError) {
	before := c.Save()
	if labelTok, e := lexer.Ident(c); e == nil {
		if _, e2 := lexer.Punct(":")(c); e2 == nil {
			p, err := ParsePattern(c)
			if err != nil {
				return ast.TuplePatternElement{}, err
			}
			return ast.TuplePatternElement{Label: labelTok.Lexeme, Pattern: p}, nil
		}
	}
	c.Restore(before)
	p, err := ParsePattern(c)
	if err != nil {
		return ast.TuplePatternElement{}, err
	}
	return ast.TuplePatternElement{Pattern: p}, nil
}

func parseTuplePattern(c *cursor.Cursor) (ast.Pattern, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Punct("(")(c); e != nil {
		return nil, e
	}
	elems, err := parseTuplePatternElements(c)
	if err != nil {
		return nil, err
	}
	if _, e := lexer.Punct(")")(c); e != nil {
		return nil, e
	}
	typ := parseOptionalTypeAnnotation(c)
	return ast.TuplePattern{Span: ast.Span{Start: start, End: c.Position()}, Elements: elems, TypeAnnotation: typ}, nil
}

func parseExpressionPattern(c *cursor.Cursor) (ast.Pattern, *diagnostics.ParseError) {
	start := c.Position()
	expr, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	return ast.ExpressionPattern{Span: ast.Span{Start: start, End: c.Position()}, Expression: expr}, nil
}
