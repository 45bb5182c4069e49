package parser

import (
	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/combinator"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/lexer"
)

// ParseType implements spec.md §4.4's type grammar: a right-associative
// function-type chain over a primary type, each primary further wrapped by
// zero or more of the `.Type`/`.Protocol`/`?`/`!` suffixes.
func ParseType(c *cursor.Cursor) (ast.Type, *diagnostics.ParseError) {
	start := c.Position()
	left, err := parseTypeSuffixed(c)
	if err != nil {
		return nil, err
	}
	before := c.Save()
	throwsMarker := ast.ThrowsNone
	if _, e := lexer.Keyword("throws")(c); e == nil {
		throwsMarker = ast.ThrowsThrows
	} else if _, e := lexer.Keyword("rethrows")(c); e == nil {
		throwsMarker = ast.ThrowsRethrows
	}
	if _, e := lexer.OperatorSymbol("->")(c); e != nil {
		c.Restore(before)
		return left, nil
	}
	result, err := ParseType(c)
	if err != nil {
		return nil, err
	}
	return ast.FunctionType{
		Span:      ast.Span{Start: start, End: c.Position()},
		Parameter: left,
		Throws:    throwsMarker,
		Result:    result,
	}, nil
}

// parseTypeSuffixed wraps a primary type with zero or more of the
// `.Type`/`.Protocol`/`?`/`!` suffixes, each wrapping the accumulated type.
func parseTypeSuffixed(c *cursor.Cursor) (ast.Type, *diagnostics.ParseError) {
	start := c.Position()
	base, err := parsePrimaryType(c)
	if err != nil {
		return nil, err
	}
	for {
		before := c.Save()
		if _, e := lexer.OperatorSymbol("?")(c); e == nil {
			base = ast.OptionalType{Span: ast.Span{Start: start, End: c.Position()}, Wrapped: base}
			continue
		}
		c.Restore(before)
		if _, e := lexer.OperatorSymbol("!")(c); e == nil {
			base = ast.ImplicitlyUnwrappedOptionalType{Span: ast.Span{Start: start, End: c.Position()}, Wrapped: base}
			continue
		}
		c.Restore(before)
		if _, e := lexer.Punct(".")(c); e == nil {
			if _, e2 := lexer.Keyword("Type")(c); e2 == nil {
				base = ast.MetatypeType{Span: ast.Span{Start: start, End: c.Position()}, Base: base, Kind: ast.MetatypeKindType}
				continue
			}
			c.Restore(before)
			if _, e := lexer.Punct(".")(c); e == nil {
				if _, e2 := lexer.Keyword("Protocol")(c); e2 == nil {
					base = ast.MetatypeType{Span: ast.Span{Start: start, End: c.Position()}, Base: base, Kind: ast.MetatypeKindProtocol}
					continue
				}
			}
		}
		c.Restore(before)
		break
	}
	return base, nil
}

// parsePrimaryType parses array/dictionary/protocol-composition/tuple/
// type-identifier forms.
func parsePrimaryType(c *cursor.Cursor) (ast.Type, *diagnostics.ParseError) {
	start := c.Position()

	if _, e := lexer.Punct("[")(c); e == nil {
		elem, err := ParseType(c)
		if err != nil {
			return nil, err
		}
		if _, e := lexer.Punct(":")(c); e == nil {
			val, err := ParseType(c)
			if err != nil {
				return nil, err
			}
			if _, e := lexer.Punct("]")(c); e != nil {
				return nil, e
			}
			return ast.DictionaryType{Span: ast.Span{Start: start, End: c.Position()}, Key: elem, Value: val}, nil
		}
		if _, e := lexer.Punct("]")(c); e != nil {
			return nil, e
		}
		return ast.ArrayType{Span: ast.Span{Start: start, End: c.Position()}, Element: elem}, nil
	}

	if _, e := lexer.Keyword("protocol")(c); e == nil {
		if _, e := lexer.OperatorSymbol("<")(c); e != nil {
			return nil, e
		}
		protos, err := combinator.SepBy1(combinator.Parser[ast.Type](ParseType), lexer.Punct(","))(c)
		if err != nil {
			return nil, err
		}
		if _, e := lexer.OperatorSymbol(">")(c); e != nil {
			return nil, e
		}
		return ast.ProtocolCompositionType{Span: ast.Span{Start: start, End: c.Position()}, Protocols: protos}, nil
	}

	if _, e := lexer.Punct("(")(c); e == nil {
		elems, err := combinator.SepBy(combinator.Parser[ast.TupleTypeElement](parseTupleTypeElement), lexer.Punct(","))(c)
		if err != nil {
			return nil, err
		}
		variadic := false
		if _, e := lexer.OperatorSymbol("...")(c); e == nil {
			variadic = true
		}
		if _, e := lexer.Punct(")")(c); e != nil {
			return nil, e
		}
		return ast.TupleType{Span: ast.Span{Start: start, End: c.Position()}, Elements: elems, Variadic: variadic}, nil
	}

	return parseTypeIdentifier(c)
}

func parseTupleTypeElement(c *cursor.Cursor) (ast.TupleTypeElement, *diagnostics.ParseError) {
	attrs, err := parseAttributes(c)
	if err != nil {
		return ast.TupleTypeElement{}, err
	}
	inout := false
	if _, e := lexer.Keyword("inout")(c); e == nil {
		inout = true
	}

	before := c.Save()
	if nameTok, e := lexer.Ident(c); e == nil {
		if _, e2 := lexer.Punct(":")(c); e2 == nil {
			typ, err := ParseType(c)
			if err != nil {
				return ast.TupleTypeElement{}, err
			}
			return ast.TupleTypeElement{Attributes: attrs, InOut: inout, Name: nameTok.Lexeme, Type: typ}, nil
		}
	}
	c.Restore(before)

	typ, err := ParseType(c)
	if err != nil {
		return ast.TupleTypeElement{}, err
	}
	return ast.TupleTypeElement{Attributes: attrs, InOut: inout, Type: typ}, nil
}

// parseTypeIdentifier parses a dotted path of name+generic-argument
// components. Generic-argument clauses are only accepted via a speculative
// attempt at `<`, since `<` overlaps with the operator character class
// (spec.md §4.4, §9 "angle brackets vs. operators").
func parseTypeIdentifier(c *cursor.Cursor) (ast.TypeIdentifier, *diagnostics.ParseError) {
	start := c.Position()
	var components []ast.TypeIdentifierComponent
	for {
		nameTok, err := lexer.Ident(c)
		if err != nil {
			return ast.TypeIdentifier{}, err
		}
		args := parseOptionalGenericArgumentClause(c)
		components = append(components, ast.TypeIdentifierComponent{Name: nameTok.Lexeme, GenericArgs: args})

		before := c.Save()
		if _, e := lexer.Punct(".")(c); e == nil {
			// Only continue the dotted path if another identifier follows;
			// `.Type`/`.Protocol` suffixes are handled by the caller.
			aheadBefore := c.Save()
			if _, e2 := lexer.Keyword("Type")(c); e2 == nil {
				c.Restore(before)
				break
			}
			c.Restore(aheadBefore)
			if _, e2 := lexer.Keyword("Protocol")(c); e2 == nil {
				c.Restore(before)
				break
			}
			c.Restore(aheadBefore)
			continue
		}
		c.Restore(before)
		break
	}
	return ast.TypeIdentifier{Span: ast.Span{Start: start, End: c.Position()}, Components: components}, nil
}

// parseOptionalGenericArgumentClause speculatively tries `<Type,...>`,
// restoring the cursor and returning nil if the attempt fails — the
// "always attempt, fall back to operator" rule spec.md §9 names.
func parseOptionalGenericArgumentClause(c *cursor.Cursor) []ast.Type {
	before := c.Save()
	if _, e := lexer.OperatorSymbol("<")(c); e != nil {
		c.Restore(before)
		return nil
	}
	args, err := combinator.SepBy1(combinator.Parser[ast.Type](ParseType), lexer.Punct(","))(c)
	if err != nil {
		c.Restore(before)
		return nil
	}
	if _, e := lexer.OperatorSymbol(">")(c); e != nil {
		c.Restore(before)
		return nil
	}
	return args
}
