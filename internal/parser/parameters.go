package parser

import (
	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/combinator"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/lexer"
)

// parseParameterClause parses one curried `(...)` group shared by function,
// initializer, and subscript declarations.
func parseParameterClause(c *cursor.Cursor) (ast.ParameterClause, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Punct("(")(c); e != nil {
		return ast.ParameterClause{}, e
	}
	params, err := parseParameterList(c)
	if err != nil {
		return ast.ParameterClause{}, err
	}
	if _, e := lexer.Punct(")")(c); e != nil {
		return ast.ParameterClause{}, e
	}
	return ast.ParameterClause{Span: ast.Span{Start: start, End: c.Position()}, Parameters: params}, nil
}

func parseParameterList(c *cursor.Cursor) ([]ast.Parameter, *diagnostics.ParseError) {
	return combinator.SepBy(combinator.Parser[ast.Parameter](parseParameter), lexer.Punct(","))(c)
}

// parseParameter parses one `[external] name: [inout] Type [= default]`
// element, or `_ name: Type` when the parameter has no external name, or
// `...` variadic marker trailing the type.
func parseParameter(c *cursor.Cursor) (ast.Parameter, *diagnostics.ParseError) {
	start := c.Position()

	external := ""
	before := c.Save()
	if _, e := lexer.Keyword("_")(c); e == nil {
		external = "_"
	} else {
		c.Restore(before)
		if tok, e := lexer.Ident(c); e == nil {
			external = tok.Lexeme
		} else {
			c.Restore(before)
		}
	}

	nbefore := c.Save()
	name := ""
	if tok, e := lexer.Ident(c); e == nil {
		name = tok.Lexeme
	} else {
		c.Restore(nbefore)
		// single-name form: the external name IS the local name.
		name = external
		external = ""
	}
	if name == "" {
		return ast.Parameter{}, diagnostics.NewParseError(diagnostics.KindSyntax, c.Position(), "expected a parameter name")
	}

	if _, e := lexer.Punct(":")(c); e != nil {
		return ast.Parameter{}, e
	}

	inout := false
	if _, e := lexer.Keyword("inout")(c); e == nil {
		inout = true
	}

	typ, err := ParseType(c)
	if err != nil {
		return ast.Parameter{}, err
	}

	variadic := false
	if _, e := lexer.OperatorSymbol("...")(c); e == nil {
		variadic = true
	}

	var def *ast.Expression
	dbefore := c.Save()
	if _, e := lexer.OperatorSymbol("=")(c); e == nil {
		expr, err := ParseExpression(c)
		if err != nil {
			return ast.Parameter{}, err
		}
		def = expr
	} else {
		c.Restore(dbefore)
	}

	if external == name {
		external = ""
	}
	return ast.Parameter{
		Span:           ast.Span{Start: start, End: c.Position()},
		ExternalName:   external,
		Name:           name,
		TypeAnnotation: typ,
		Default:        def,
		Variadic:       variadic,
		InOut:          inout,
	}, nil
}
