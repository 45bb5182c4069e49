package parser

import (
	"strings"

	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/combinator"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/lexer"
)

// ParseConditionClause implements spec.md §4.4: an optional leading boolean
// expression, followed by a comma-separated list of case/availability/
// optional-binding conditions. At least one of the two must be present.
func ParseConditionClause(c *cursor.Cursor) (ast.ConditionClause, *diagnostics.ParseError) {
	start := c.Position()

	var leading *ast.Expression
	before := c.Save()
	if expr, err := combinator.Try(combinator.Parser[*ast.Expression](tryLeadingConditionExpr))(c); err == nil {
		leading = expr
	} else {
		c.Restore(before)
	}

	var conditions []ast.Condition
	if leading == nil {
		cond, err := parseCondition(c)
		if err != nil {
			return ast.ConditionClause{}, err
		}
		conditions = append(conditions, cond)
	}
	for {
		cbefore := c.Save()
		if _, e := lexer.Punct(",")(c); e != nil {
			c.Restore(cbefore)
			break
		}
		cond, err := parseCondition(c)
		if err != nil {
			return ast.ConditionClause{}, err
		}
		conditions = append(conditions, cond)
	}

	return ast.ConditionClause{
		Span:        ast.Span{Start: start, End: c.Position()},
		LeadingExpr: leading,
		Conditions:  conditions,
	}, nil
}

// tryLeadingConditionExpr parses a boolean expression followed by either a
// `,` (more conditions follow) or the construct's terminator (a `{` or
// `else`), so a `let`/`case`/`#available` condition is never misread as an
// expression's leading value.
func tryLeadingConditionExpr(c *cursor.Cursor) (*ast.Expression, *diagnostics.ParseError) {
	expr, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	before := c.Save()
	if _, e := lexer.Punct(",")(c); e == nil {
		c.Restore(before)
		return expr, nil
	}
	c.Restore(before)
	if err := lexer.SkipTrivia(c); err == nil {
		if r, ok := c.Peek(); ok && r == '{' {
			return expr, nil
		}
	}
	before2 := c.Save()
	if _, e := lexer.Keyword("else")(c); e == nil {
		c.Restore(before2)
		return expr, nil
	}
	return nil, diagnostics.NewParseError(diagnostics.KindSyntax, c.Position(), "expected ',' or block after condition expression")
}

func parseCondition(c *cursor.Cursor) (ast.Condition, *diagnostics.ParseError) {
	if cond, e := combinator.Try(combinator.Parser[ast.Condition](parseAvailabilityCondition))(c); e == nil {
		return cond, nil
	}
	if cond, e := combinator.Try(combinator.Parser[ast.Condition](parseCaseCondition))(c); e == nil {
		return cond, nil
	}
	return parseOptionalBindingCondition(c)
}

func parseAvailabilityCondition(c *cursor.Cursor) (ast.Condition, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Pound("#available")(c); e != nil {
		return nil, e
	}
	if _, e := lexer.Punct("(")(c); e != nil {
		return nil, e
	}
	args, err := combinator.SepBy1(combinator.Parser[ast.AvailabilityArgument](parseAvailabilityArgument), lexer.Punct(","))(c)
	if err != nil {
		return nil, err
	}
	if _, e := lexer.Punct(")")(c); e != nil {
		return nil, e
	}
	return ast.AvailabilityCondition{Span: ast.Span{Start: start, End: c.Position()}, Arguments: args}, nil
}

func parseAvailabilityArgument(c *cursor.Cursor) (ast.AvailabilityArgument, *diagnostics.ParseError) {
	before := c.Save()
	if _, e := lexer.OperatorSymbol("*")(c); e == nil {
		return ast.AvailabilityArgument{Wildcard: true}, nil
	}
	c.Restore(before)

	platformTok, err := lexer.Ident(c)
	if err != nil {
		return ast.AvailabilityArgument{}, err
	}
	var version []int
	for {
		vbefore := c.Save()
		intTok, err := lexer.Integer(c)
		if err != nil {
			c.Restore(vbefore)
			break
		}
		// `10.11` scans as one float lexeme; split it into its components.
		for _, part := range strings.Split(intTok.Lexeme, ".") {
			version = append(version, parseDecimalInt(part))
		}
		dbefore := c.Save()
		if _, e := lexer.Punct(".")(c); e != nil {
			c.Restore(dbefore)
			break
		}
	}
	return ast.AvailabilityArgument{Platform: platformTok.Lexeme, Version: version}, nil
}

func parseDecimalInt(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func parseCaseCondition(c *cursor.Cursor) (ast.Condition, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("case")(c); e != nil {
		return nil, e
	}
	pat, err := ParsePattern(c)
	if err != nil {
		return nil, err
	}
	if _, e := lexer.OperatorSymbol("=")(c); e != nil {
		return nil, e
	}
	init, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	where := parseOptionalWhereClause(c)
	return ast.CaseCondition{
		Span:        ast.Span{Start: start, End: c.Position()},
		Pattern:     pat,
		Initializer: init,
		Where:       where,
	}, nil
}

func parseOptionalWhereClause(c *cursor.Cursor) *ast.Expression {
	before := c.Save()
	if _, e := lexer.Keyword("where")(c); e != nil {
		c.Restore(before)
		return nil
	}
	expr, err := ParseExpression(c)
	if err != nil {
		c.Restore(before)
		return nil
	}
	return expr
}

func parseOptionalBindingCondition(c *cursor.Cursor) (ast.Condition, *diagnostics.ParseError) {
	start := c.Position()
	head, err := parseOptionalBindingHead(c)
	if err != nil {
		return nil, err
	}
	var continuations []ast.OptionalBindingHead
	for {
		before := c.Save()
		if _, e := lexer.Punct(",")(c); e != nil {
			c.Restore(before)
			break
		}
		next, err := combinator.Try(combinator.Parser[ast.OptionalBindingHead](parseOptionalBindingContinuation))(c)
		if err != nil {
			c.Restore(before)
			break
		}
		continuations = append(continuations, next)
	}
	where := parseOptionalWhereClause(c)
	return ast.OptionalBindingCondition{
		Span:          ast.Span{Start: start, End: c.Position()},
		Head:          head,
		Continuations: continuations,
		Where:         where,
	}, nil
}

// parseOptionalBindingContinuation is one entry of the comma-separated
// continuation list following an optional-binding condition's head
// (spec.md §4.4): either a further `let`/`var` head, or a bare
// `pattern = initializer` with no keyword of its own, e.g. the `z = w`
// in `if let x = y, z = w where x > 0 { }`.
func parseOptionalBindingContinuation(c *cursor.Cursor) (ast.OptionalBindingHead, *diagnostics.ParseError) {
	if head, e := combinator.Try(combinator.Parser[ast.OptionalBindingHead](parseOptionalBindingHead))(c); e == nil {
		return head, nil
	}
	pat, err := ParsePattern(c)
	if err != nil {
		return ast.OptionalBindingHead{}, err
	}
	if _, e := lexer.OperatorSymbol("=")(c); e != nil {
		return ast.OptionalBindingHead{}, e
	}
	init, err := ParseExpression(c)
	if err != nil {
		return ast.OptionalBindingHead{}, err
	}
	return ast.OptionalBindingHead{Kind: ast.BindingPlain, Pattern: pat, Initializer: init}, nil
}

func parseOptionalBindingHead(c *cursor.Cursor) (ast.OptionalBindingHead, *diagnostics.ParseError) {
	kind := ast.BindingLet
	if _, e := lexer.Keyword("let")(c); e == nil {
		kind = ast.BindingLet
	} else if _, e := lexer.Keyword("var")(c); e == nil {
		kind = ast.BindingVar
	} else {
		return ast.OptionalBindingHead{}, e
	}
	pat, err := ParsePattern(c)
	if err != nil {
		return ast.OptionalBindingHead{}, err
	}
	if _, e := lexer.OperatorSymbol("=")(c); e != nil {
		return ast.OptionalBindingHead{}, e
	}
	init, err := ParseExpression(c)
	if err != nil {
		return ast.OptionalBindingHead{}, err
	}
	return ast.OptionalBindingHead{Kind: kind, Pattern: pat, Initializer: init}, nil
}
