package parser

import (
	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/combinator"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/lexer"
)

// ParseExpression implements spec.md §4.4: an optional try marker, a seed
// PrefixExpression, and `many(binaryExpression)` tails. Precedence and
// associativity are not resolved here (spec.md §1/§9); Tails preserves
// surface order only.
func ParseExpression(c *cursor.Cursor) (*ast.Expression, *diagnostics.ParseError) {
	start := c.Position()
	tryMarker := parseTryMarker(c)

	prefix, err := ParsePrefixExpression(c)
	if err != nil {
		return nil, err
	}

	var tails []ast.BinaryTail
	for {
		before := c.Save()
		tail, err := parseBinaryTail(c)
		if err != nil {
			if c.Save() != before {
				return nil, err
			}
			c.Restore(before)
			break
		}
		tails = append(tails, tail)
	}

	return &ast.Expression{
		Span:   ast.Span{Start: start, End: c.Position()},
		Try:    tryMarker,
		Prefix: prefix,
		Tails:  tails,
	}, nil
}

// parseTryMarker recognizes `try`, `try?`, `try!` (spec.md §9: alternatives
// sharing a prefix must be tried speculatively so a failure past the
// shared prefix cannot poison the alternation).
func parseTryMarker(c *cursor.Cursor) ast.TryKind {
	before := c.Save()
	if _, e := lexer.Keyword("try")(c); e != nil {
		c.Restore(before)
		return ast.TryNone
	}
	if _, e := lexer.OperatorSymbol("?")(c); e == nil {
		return ast.TryOptional
	}
	if _, e := lexer.OperatorSymbol("!")(c); e == nil {
		return ast.TryForced
	}
	return ast.TryPlain
}

// parseBinaryTail tries, in order, conditional `?...:`, assignment `=`,
// type-casting (`is`/`as`/`as?`/`as!`), then an ordinary binary operator.
func parseBinaryTail(c *cursor.Cursor) (ast.BinaryTail, *diagnostics.ParseError) {
	if t, e := combinator.Try(combinator.Parser[ast.BinaryTail](parseConditionalTail))(c); e == nil {
		return t, nil
	}
	if t, e := combinator.Try(combinator.Parser[ast.BinaryTail](parseAssignmentTail))(c); e == nil {
		return t, nil
	}
	if t, e := combinator.Try(combinator.Parser[ast.BinaryTail](parseTypeCastingTail))(c); e == nil {
		return t, nil
	}
	return parseOperatorTail(c)
}

func parseConditionalTail(c *cursor.Cursor) (ast.BinaryTail, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.OperatorSymbol("?")(c); e != nil {
		return nil, e
	}
	then, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	if _, e := lexer.Punct(":")(c); e != nil {
		return nil, e
	}
	right, err := ParsePrefixExpression(c)
	if err != nil {
		return nil, err
	}
	return ast.ConditionalTail{Span: ast.Span{Start: start, End: c.Position()}, Then: then, Right: right}, nil
}

// parseAssignmentTail matches a standalone `=` not immediately followed by
// another operator character, distinguishing it from `==`, `=>`, etc.
func parseAssignmentTail(c *cursor.Cursor) (ast.BinaryTail, *diagnostics.ParseError) {
	start := c.Position()
	if err := lexer.SkipTrivia(c); err != nil {
		return nil, err
	}
	r, ok := c.Peek()
	if !ok || r != '=' {
		return nil, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected '='")
	}
	opTok, err := lexer.Operator(c)
	if err != nil {
		return nil, err
	}
	if opTok.Lexeme != "=" {
		return nil, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected standalone '='")
	}
	tryMarker := parseTryMarker(c)
	right, perr := ParsePrefixExpression(c)
	if perr != nil {
		return nil, perr
	}
	return ast.AssignmentTail{Span: ast.Span{Start: start, End: c.Position()}, Try: tryMarker, Right: right}, nil
}

func parseTypeCastingTail(c *cursor.Cursor) (ast.BinaryTail, *diagnostics.ParseError) {
	start := c.Position()
	var op ast.TypeCastingOp
	if _, e := lexer.Keyword("is")(c); e == nil {
		op = ast.CastIs
	} else if _, e := lexer.Keyword("as")(c); e == nil {
		if _, e2 := lexer.OperatorSymbol("?")(c); e2 == nil {
			op = ast.CastAsOpt
		} else if _, e2 := lexer.OperatorSymbol("!")(c); e2 == nil {
			op = ast.CastAsForced
		} else {
			op = ast.CastAs
		}
	} else {
		return nil, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected 'is' or 'as'")
	}
	typ, err := ParseType(c)
	if err != nil {
		return nil, err
	}
	return ast.TypeCastingTail{Span: ast.Span{Start: start, End: c.Position()}, Op: op, Type: typ}, nil
}

func parseOperatorTail(c *cursor.Cursor) (ast.BinaryTail, *diagnostics.ParseError) {
	start := c.Position()
	opTok, err := lexer.Operator(c)
	if err != nil {
		return nil, err
	}
	right, err := ParsePrefixExpression(c)
	if err != nil {
		return nil, err
	}
	return ast.OperatorTail{Span: ast.Span{Start: start, End: c.Position()}, Operator: opTok.Lexeme, Right: right}, nil
}

// ParsePrefixExpression is either the in-out form `&identifier`, or an
// optional prefix operator applied to a PostfixExpression.
func ParsePrefixExpression(c *cursor.Cursor) (*ast.PrefixExpression, *diagnostics.ParseError) {
	start := c.Position()

	before := c.Save()
	if opTok, e := lexer.OperatorSymbol("&")(c); e == nil {
		if identTok, e2 := lexer.Ident(c); e2 == nil {
			return &ast.PrefixExpression{Span: ast.Span{Start: start, End: c.Position()}, InOutIdentifier: identTok.Lexeme}, nil
		}
		_ = opTok
		c.Restore(before)
	}

	op := ""
	obefore := c.Save()
	if opTok, e := lexer.Operator(c); e == nil {
		op = opTok.Lexeme
	} else {
		c.Restore(obefore)
	}

	postfix, err := ParsePostfixExpression(c)
	if err != nil {
		return nil, err
	}
	return &ast.PrefixExpression{Span: ast.Span{Start: start, End: c.Position()}, Operator: op, Postfix: postfix}, nil
}

// ParsePostfixExpression implements spec.md §9's seed-then-suffixes
// transformation of Swift's left-recursive postfix grammar.
func ParsePostfixExpression(c *cursor.Cursor) (*ast.PostfixExpression, *diagnostics.ParseError) {
	start := c.Position()
	base, err := parsePrimaryExpression(c)
	if err != nil {
		return nil, err
	}
	var suffixes []ast.PostfixSuffix
	for {
		suffix, ok := tryParsePostfixSuffix(c)
		if !ok {
			break
		}
		suffixes = append(suffixes, suffix)
	}
	return &ast.PostfixExpression{Span: ast.Span{Start: start, End: c.Position()}, Base: base, Suffixes: suffixes}, nil
}

// tryParsePostfixSuffix applies the first matching suffix, tried in this
// order: forced-value, optional-chaining, dot-suffix, call, subscript,
// postfix operator. Forced-value, optional-chaining and the postfix operator
// are guarded against being followed by a primary, so the binary-expression
// layer still sees the operator when appropriate; a `!` or `?` directly
// followed by `.` is always taken as a suffix, since the `.` starts a member
// access on it.
func tryParsePostfixSuffix(c *cursor.Cursor) (ast.PostfixSuffix, bool) {
	start := c.Position()

	before := c.Save()
	if _, e := lexer.OperatorSymbol("!")(c); e == nil {
		if r, ok := c.Peek(); (ok && r == '.') || !followedByPrimary(c) {
			return ast.ForcedValueSuffix{Span: ast.Span{Start: start, End: c.Position()}}, true
		}
	}
	c.Restore(before)

	if _, e := lexer.OperatorSymbol("?")(c); e == nil {
		if r, ok := c.Peek(); (ok && r == '.') || !followedByPrimary(c) {
			return ast.OptionalChainingSuffix{Span: ast.Span{Start: start, End: c.Position()}}, true
		}
	}
	c.Restore(before)

	if _, e := lexer.Punct(".")(c); e == nil {
		if suffix, ok := tryParseDotSuffix(c, start); ok {
			return suffix, true
		}
	}
	c.Restore(before)

	if _, e := lexer.Punct("(")(c); e == nil {
		args, err := parseCallArgumentList(c)
		if err == nil {
			if _, e := lexer.Punct(")")(c); e == nil {
				var trailing *ast.Closure
				tbefore := c.Save()
				if cl, e := tryParseTrailingClosure(c); e {
					trailing = cl
				} else {
					c.Restore(tbefore)
				}
				return ast.FunctionCallSuffix{Span: ast.Span{Start: start, End: c.Position()}, Arguments: args, TrailingClosure: trailing}, true
			}
		}
	}
	c.Restore(before)

	if _, e := lexer.Punct("[")(c); e == nil {
		args, err := parseCallArgumentList(c)
		if err == nil {
			if _, e := lexer.Punct("]")(c); e == nil {
				return ast.SubscriptSuffix{Span: ast.Span{Start: start, End: c.Position()}, Arguments: args}, true
			}
		}
	}
	c.Restore(before)

	opBefore := c.Save()
	if opTok, e := lexer.Operator(c); e == nil {
		if !followedByPrimary(c) {
			return ast.PostfixOperatorSuffix{Span: ast.Span{Start: start, End: c.Position()}, Operator: opTok.Lexeme}, true
		}
	}
	c.Restore(opBefore)

	return nil, false
}

func tryParseDotSuffix(c *cursor.Cursor, start cursor.Position) (ast.PostfixSuffix, bool) {
	before := c.Save()
	if _, e := lexer.Keyword("dynamicType")(c); e == nil {
		return ast.DotDynamicTypeSuffix{Span: ast.Span{Start: start, End: c.Position()}}, true
	}
	c.Restore(before)
	if _, e := lexer.Keyword("self")(c); e == nil {
		return ast.DotSelfSuffix{Span: ast.Span{Start: start, End: c.Position()}}, true
	}
	c.Restore(before)
	if _, e := lexer.Keyword("init")(c); e == nil {
		return ast.DotInitSuffix{Span: ast.Span{Start: start, End: c.Position()}}, true
	}
	c.Restore(before)
	if tok, e := lexer.Integer(c); e == nil {
		return ast.ExplicitMemberSuffix{Span: ast.Span{Start: start, End: c.Position()}, Name: tok.Lexeme, IsDigit: true}, true
	}
	c.Restore(before)
	if tok, e := lexer.Ident(c); e == nil {
		args := parseOptionalGenericArgumentClause(c)
		return ast.ExplicitMemberSuffix{Span: ast.Span{Start: start, End: c.Position()}, Name: tok.Lexeme, GenericArgs: args}, true
	}
	c.Restore(before)
	return nil, false
}

// followedByPrimary reports (without consuming) whether a primary
// expression could start at the current position — the guard spec.md §4.4
// uses to stop a postfix/operator suffix from greedily consuming an
// operator lexeme that the surrounding binary-expression layer should see.
func followedByPrimary(c *cursor.Cursor) bool {
	before := c.Save()
	_, err := parsePrimaryExpression(c)
	c.Restore(before)
	return err == nil
}

func parseCallArgumentList(c *cursor.Cursor) ([]ast.CallArgument, *diagnostics.ParseError) {
	return combinator.SepBy(combinator.Parser[ast.CallArgument](parseCallArgument), lexer.Punct(","))(c)
}

func parseCallArgument(c *cursor.Cursor) (ast.CallArgument, *diagnostics.ParseError) {
	before := c.Save()
	if labelTok, e := lexer.Ident(c); e == nil {
		if _, e2 := lexer.Punct(":")(c); e2 == nil {
			val, err := ParseExpression(c)
			if err != nil {
				return ast.CallArgument{}, err
			}
			return ast.CallArgument{Label: labelTok.Lexeme, Value: val}, nil
		}
	}
	c.Restore(before)
	val, err := ParseExpression(c)
	if err != nil {
		return ast.CallArgument{}, err
	}
	return ast.CallArgument{Value: val}, nil
}

func tryParseTrailingClosure(c *cursor.Cursor) (*ast.Closure, bool) {
	before := c.Save()
	if err := skipTriviaQuiet(c); err != nil {
		c.Restore(before)
		return nil, false
	}
	if r, ok := c.Peek(); !ok || r != '{' {
		c.Restore(before)
		return nil, false
	}
	cl, err := ParseClosure(c)
	if err != nil {
		c.Restore(before)
		return nil, false
	}
	return cl, true
}

func skipTriviaQuiet(c *cursor.Cursor) *diagnostics.ParseError {
	return lexer.SkipTrivia(c)
}

// parsePrimaryExpression parses spec.md §3's PrimaryExpression variants:
// identifier with optional generic arguments, literal, self/super family,
// closure, parenthesized element list, implicit member, wildcard.
func parsePrimaryExpression(c *cursor.Cursor) (ast.PrimaryExpression, *diagnostics.ParseError) {
	start := c.Position()

	if before := c.Save(); true {
		if _, e := lexer.Keyword("_")(c); e == nil {
			if !followedByIdentChar(c) {
				return ast.WildcardExpression{Span: ast.Span{Start: start, End: c.Position()}}, nil
			}
		}
		c.Restore(before)
	}

	if before := c.Save(); true {
		if lit, e := combinator.Try(combinator.Parser[ast.Literal](parseLiteral))(c); e == nil {
			return ast.LiteralExpression{Span: ast.Span{Start: start, End: c.Position()}, Literal: lit}, nil
		}
		c.Restore(before)
	}

	if before := c.Save(); true {
		if se, ok := tryParseSelfExpression(c); ok {
			return se, nil
		}
		c.Restore(before)
	}

	if before := c.Save(); true {
		if se, ok := tryParseSuperExpression(c); ok {
			return se, nil
		}
		c.Restore(before)
	}

	if before := c.Save(); true {
		if err := lexer.SkipTrivia(c); err == nil {
			if r, ok := c.Peek(); ok && r == '{' {
				cl, err := ParseClosure(c)
				if err == nil {
					return ast.ClosureExpression{Span: ast.Span{Start: start, End: c.Position()}, Closure: cl}, nil
				}
			}
		}
		c.Restore(before)
	}

	if before := c.Save(); true {
		if _, e := lexer.Punct("(")(c); e == nil {
			elems, err := parseCallArgumentList(c)
			if err == nil {
				if _, e := lexer.Punct(")")(c); e == nil {
					return ast.ParenthesizedExpression{Span: ast.Span{Start: start, End: c.Position()}, Elements: elems}, nil
				}
			}
		}
		c.Restore(before)
	}

	if before := c.Save(); true {
		if _, e := lexer.Punct(".")(c); e == nil {
			if tok, e2 := lexer.Ident(c); e2 == nil {
				return ast.ImplicitMemberExpression{Span: ast.Span{Start: start, End: c.Position()}, Name: tok.Lexeme}, nil
			}
		}
		c.Restore(before)
	}

	nameTok, err := lexer.Ident(c)
	if err != nil {
		return nil, err
	}
	args := parseOptionalGenericArgumentClause(c)
	return ast.IdentifierExpression{Span: ast.Span{Start: start, End: c.Position()}, Name: nameTok.Lexeme, GenericArgs: args}, nil
}

func followedByIdentChar(c *cursor.Cursor) bool {
	r, ok := c.Peek()
	return ok && (r == '_' || r == '?')
}

func tryParseSelfExpression(c *cursor.Cursor) (ast.PrimaryExpression, bool) {
	start := c.Position()
	if _, e := lexer.Keyword("self")(c); e != nil {
		return nil, false
	}
	before := c.Save()
	if _, e := lexer.Punct(".")(c); e == nil {
		if _, e2 := lexer.Keyword("init")(c); e2 == nil {
			return ast.SelfExpression{Span: ast.Span{Start: start, End: c.Position()}, Kind: ast.SelfInit}, true
		}
		c.Restore(before)
		if tok, e2 := lexer.Ident(c); e2 == nil {
			return ast.SelfExpression{Span: ast.Span{Start: start, End: c.Position()}, Kind: ast.SelfMember, Member: tok.Lexeme}, true
		}
		c.Restore(before)
	}
	if _, e := lexer.Punct("[")(c); e == nil {
		args, err := parseCallArgumentList(c)
		if err == nil {
			if _, e := lexer.Punct("]")(c); e == nil {
				return ast.SelfExpression{Span: ast.Span{Start: start, End: c.Position()}, Kind: ast.SelfSubscript, Arguments: args}, true
			}
		}
		c.Restore(before)
	}
	return ast.SelfExpression{Span: ast.Span{Start: start, End: c.Position()}, Kind: ast.SelfBare}, true
}

func tryParseSuperExpression(c *cursor.Cursor) (ast.PrimaryExpression, bool) {
	start := c.Position()
	if _, e := lexer.Keyword("super")(c); e != nil {
		return nil, false
	}
	if _, e := lexer.Punct(".")(c); e == nil {
		before := c.Save()
		if _, e2 := lexer.Keyword("init")(c); e2 == nil {
			return ast.SuperExpression{Span: ast.Span{Start: start, End: c.Position()}, Kind: ast.SuperInit}, true
		}
		c.Restore(before)
		if tok, e2 := lexer.Ident(c); e2 == nil {
			return ast.SuperExpression{Span: ast.Span{Start: start, End: c.Position()}, Kind: ast.SuperMember, Member: tok.Lexeme}, true
		}
		c.Restore(before)
	}
	if _, e := lexer.Punct("[")(c); e == nil {
		args, err := parseCallArgumentList(c)
		if err == nil {
			if _, e := lexer.Punct("]")(c); e == nil {
				return ast.SuperExpression{Span: ast.Span{Start: start, End: c.Position()}, Kind: ast.SuperSubscript, Arguments: args}, true
			}
		}
	}
	return nil, false
}
