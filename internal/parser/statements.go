package parser

import (
	"strconv"

	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/combinator"
	"github.com/swiftsyntax/swiftparse/internal/config"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/lexer"
)

// ParseStatement dispatches across every statement variant spec.md §3
// names, trying the unambiguous-keyword forms before falling back to the
// declaration/expression ambiguity (a bare identifier could start either).
func ParseStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if label, ok := tryParseStatementLabel(c); ok {
		inner, err := ParseStatement(c)
		if err != nil {
			return nil, err
		}
		return ast.LabeledStatement{Span: ast.Span{Start: start, End: c.Position()}, Label: label, Statement: inner}, nil
	}

	if stmt, ok := tryParse(c, parseForStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseForInStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseWhileStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseRepeatWhileStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseIfStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseGuardStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseSwitchStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseBreakStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseContinueStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseFallthroughStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseReturnStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseThrowStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseDeferStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseDoStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseBuildConfigurationStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseLineControlStatement); ok {
		return stmt, nil
	}
	if stmt, ok := tryParse(c, parseDeclarationStatement); ok {
		return stmt, nil
	}

	expr, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	return ast.ExpressionStatement{Span: ast.Span{Start: start, End: c.Position()}, Expression: expr}, nil
}

func tryParse(c *cursor.Cursor, fn func(*cursor.Cursor) (ast.Statement, *diagnostics.ParseError)) (ast.Statement, bool) {
	stmt, err := combinator.Try(combinator.Parser[ast.Statement](fn))(c)
	return stmt, err == nil
}

func tryParseStatementLabel(c *cursor.Cursor) (string, bool) {
	before := c.Save()
	tok, e := lexer.Ident(c)
	if e != nil {
		c.Restore(before)
		return "", false
	}
	if _, e := lexer.Punct(":")(c); e != nil {
		c.Restore(before)
		return "", false
	}
	return tok.Lexeme, true
}

func parseCodeBlock(c *cursor.Cursor) (*ast.CodeBlock, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Punct("{")(c); e != nil {
		return nil, e
	}
	var stmts []ast.Statement
	for {
		before := c.Save()
		if _, e := lexer.Punct("}")(c); e == nil {
			return &ast.CodeBlock{Span: ast.Span{Start: start, End: c.Position()}, Statements: stmts}, nil
		}
		c.Restore(before)
		stmt, err := ParseStatement(c)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func parseForStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("for")(c); e != nil {
		return nil, e
	}
	parenthesized := false
	if _, e := lexer.Punct("(")(c); e == nil {
		parenthesized = true
	}

	var init ast.Statement
	ibefore := c.Save()
	if _, e := lexer.Punct(";")(c); e != nil {
		c.Restore(ibefore)
		st, err := ParseStatement(c)
		if err != nil {
			return nil, err
		}
		init = st
	} else {
		c.Restore(ibefore)
	}
	if _, e := lexer.Punct(";")(c); e != nil {
		return nil, e
	}

	var cond *ast.Expression
	cbefore := c.Save()
	if _, e := lexer.Punct(";")(c); e != nil {
		c.Restore(cbefore)
		expr, err := ParseExpression(c)
		if err != nil {
			return nil, err
		}
		cond = expr
	} else {
		c.Restore(cbefore)
	}
	if _, e := lexer.Punct(";")(c); e != nil {
		return nil, e
	}

	var incr *ast.Expression
	nbefore := c.Save()
	atTerminator := false
	if parenthesized {
		if _, e := lexer.Punct(")")(c); e == nil {
			atTerminator = true
		}
		c.Restore(nbefore)
	} else if err := lexer.SkipTrivia(c); err == nil {
		if r, ok := c.Peek(); ok && r == '{' {
			atTerminator = true
		}
	}
	if !atTerminator {
		expr, err := ParseExpression(c)
		if err != nil {
			return nil, err
		}
		incr = expr
	}

	if parenthesized {
		if _, e := lexer.Punct(")")(c); e != nil {
			return nil, e
		}
	}

	body, err := parseCodeBlock(c)
	if err != nil {
		return nil, err
	}
	return ast.ForStatement{
		Span:      ast.Span{Start: start, End: c.Position()},
		Init:      init,
		Condition: cond,
		Increment: incr,
		Body:      body,
	}, nil
}

func parseForInStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("for")(c); e != nil {
		return nil, e
	}
	before := c.Save()
	if _, e := lexer.Keyword("case")(c); e != nil {
		c.Restore(before)
	}
	pat, err := ParsePattern(c)
	if err != nil {
		return nil, err
	}
	if _, e := lexer.Keyword("in")(c); e != nil {
		return nil, e
	}
	expr, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	where := parseOptionalWhereClause(c)
	body, err := parseCodeBlock(c)
	if err != nil {
		return nil, err
	}
	return ast.ForInStatement{
		Span:    ast.Span{Start: start, End: c.Position()},
		Pattern: pat,
		Expr:    expr,
		Where:   where,
		Body:    body,
	}, nil
}

func parseWhileStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("while")(c); e != nil {
		return nil, e
	}
	cond, err := ParseConditionClause(c)
	if err != nil {
		return nil, err
	}
	body, err := parseCodeBlock(c)
	if err != nil {
		return nil, err
	}
	return ast.WhileStatement{Span: ast.Span{Start: start, End: c.Position()}, Condition: cond, Body: body}, nil
}

func parseRepeatWhileStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("repeat")(c); e != nil {
		return nil, e
	}
	body, err := parseCodeBlock(c)
	if err != nil {
		return nil, err
	}
	if _, e := lexer.Keyword("while")(c); e != nil {
		return nil, e
	}
	cond, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	return ast.RepeatWhileStatement{Span: ast.Span{Start: start, End: c.Position()}, Body: body, Condition: cond}, nil
}

func parseIfStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("if")(c); e != nil {
		return nil, e
	}
	cond, err := ParseConditionClause(c)
	if err != nil {
		return nil, err
	}
	body, err := parseCodeBlock(c)
	if err != nil {
		return nil, err
	}
	result := ast.IfStatement{Span: ast.Span{Start: start, End: c.Position()}, Condition: cond, Body: body}

	before := c.Save()
	if _, e := lexer.Keyword("else")(c); e != nil {
		c.Restore(before)
		return result, nil
	}
	ebefore := c.Save()
	if elseIf, e := combinator.Try(combinator.Parser[ast.Statement](parseIfStatement))(c); e == nil {
		nested := elseIf.(ast.IfStatement)
		result.ElseIf = &nested
		result.Span.End = c.Position()
		return result, nil
	}
	c.Restore(ebefore)
	elseBody, err := parseCodeBlock(c)
	if err != nil {
		return nil, err
	}
	result.ElseBody = elseBody
	result.Span.End = c.Position()
	return result, nil
}

func parseGuardStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("guard")(c); e != nil {
		return nil, e
	}
	cond, err := ParseConditionClause(c)
	if err != nil {
		return nil, err
	}
	if _, e := lexer.Keyword("else")(c); e != nil {
		return nil, e
	}
	body, err := parseCodeBlock(c)
	if err != nil {
		return nil, err
	}
	return ast.GuardStatement{Span: ast.Span{Start: start, End: c.Position()}, Condition: cond, ElseBody: body}, nil
}

func parseSwitchStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("switch")(c); e != nil {
		return nil, e
	}
	scrutinee, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	if _, e := lexer.Punct("{")(c); e != nil {
		return nil, e
	}
	var cases []ast.SwitchCase
	for {
		before := c.Save()
		if _, e := lexer.Punct("}")(c); e == nil {
			return ast.SwitchStatement{Span: ast.Span{Start: start, End: c.Position()}, Scrutinee: scrutinee, Cases: cases}, nil
		}
		c.Restore(before)
		sc, err := parseSwitchCase(c)
		if err != nil {
			return nil, err
		}
		cases = append(cases, sc)
	}
}

func parseSwitchCase(c *cursor.Cursor) (ast.SwitchCase, *diagnostics.ParseError) {
	start := c.Position()
	isDefault := false
	var items []ast.CaseLabelItem

	before := c.Save()
	if _, e := lexer.Keyword("default")(c); e == nil {
		isDefault = true
	} else {
		c.Restore(before)
		if _, e := lexer.Keyword("case")(c); e != nil {
			return ast.SwitchCase{}, e
		}
		its, err := combinator.SepBy1(combinator.Parser[ast.CaseLabelItem](parseCaseLabelItem), lexer.Punct(","))(c)
		if err != nil {
			return ast.SwitchCase{}, err
		}
		items = its
	}
	if _, e := lexer.Punct(":")(c); e != nil {
		return ast.SwitchCase{}, e
	}

	var stmts []ast.Statement
	for {
		sbefore := c.Save()
		if _, e := lexer.Keyword("case")(c); e == nil {
			c.Restore(sbefore)
			break
		}
		c.Restore(sbefore)
		if _, e := lexer.Keyword("default")(c); e == nil {
			c.Restore(sbefore)
			break
		}
		c.Restore(sbefore)
		if _, e := lexer.Punct("}")(c); e == nil {
			c.Restore(sbefore)
			break
		}
		c.Restore(sbefore)
		stmt, err := ParseStatement(c)
		if err != nil {
			return ast.SwitchCase{}, err
		}
		stmts = append(stmts, stmt)
	}

	return ast.SwitchCase{
		Span:       ast.Span{Start: start, End: c.Position()},
		IsDefault:  isDefault,
		Items:      items,
		Statements: stmts,
	}, nil
}

func parseCaseLabelItem(c *cursor.Cursor) (ast.CaseLabelItem, *diagnostics.ParseError) {
	pat, err := ParsePattern(c)
	if err != nil {
		return ast.CaseLabelItem{}, err
	}
	where := parseOptionalWhereClause(c)
	return ast.CaseLabelItem{Pattern: pat, Where: where}, nil
}

func parseBreakStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("break")(c); e != nil {
		return nil, e
	}
	label := ""
	before := c.Save()
	if tok, e := lexer.Ident(c); e == nil {
		label = tok.Lexeme
	} else {
		c.Restore(before)
	}
	return ast.BreakStatement{Span: ast.Span{Start: start, End: c.Position()}, Label: label}, nil
}

func parseContinueStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("continue")(c); e != nil {
		return nil, e
	}
	label := ""
	before := c.Save()
	if tok, e := lexer.Ident(c); e == nil {
		label = tok.Lexeme
	} else {
		c.Restore(before)
	}
	return ast.ContinueStatement{Span: ast.Span{Start: start, End: c.Position()}, Label: label}, nil
}

func parseFallthroughStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("fallthrough")(c); e != nil {
		return nil, e
	}
	return ast.FallthroughStatement{Span: ast.Span{Start: start, End: c.Position()}}, nil
}

func parseReturnStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("return")(c); e != nil {
		return nil, e
	}
	var expr *ast.Expression
	before := c.Save()
	if e, err := combinator.Try(combinator.Parser[*ast.Expression](ParseExpression))(c); err == nil {
		expr = e
	} else {
		c.Restore(before)
	}
	return ast.ReturnStatement{Span: ast.Span{Start: start, End: c.Position()}, Expr: expr}, nil
}

func parseThrowStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("throw")(c); e != nil {
		return nil, e
	}
	expr, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	return ast.ThrowStatement{Span: ast.Span{Start: start, End: c.Position()}, Expr: expr}, nil
}

func parseDeferStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("defer")(c); e != nil {
		return nil, e
	}
	body, err := parseCodeBlock(c)
	if err != nil {
		return nil, err
	}
	return ast.DeferStatement{Span: ast.Span{Start: start, End: c.Position()}, Body: body}, nil
}

func parseDoStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("do")(c); e != nil {
		return nil, e
	}
	body, err := parseCodeBlock(c)
	if err != nil {
		return nil, err
	}
	var catches []ast.CatchClause
	for {
		cstart := c.Position()
		before := c.Save()
		if _, e := lexer.Keyword("catch")(c); e != nil {
			c.Restore(before)
			break
		}
		var pat ast.Pattern
		if err := lexer.SkipTrivia(c); err != nil {
			return nil, err
		}
		pbefore := c.Save()
		if r, ok := c.Peek(); ok && r == '{' {
			// bare `catch { ... }`: no pattern
		} else if p, e := combinator.Try(combinator.Parser[ast.Pattern](ParsePattern))(c); e == nil {
			pat = p
		} else {
			c.Restore(pbefore)
		}
		where := parseOptionalWhereClause(c)
		cbody, err := parseCodeBlock(c)
		if err != nil {
			return nil, err
		}
		catches = append(catches, ast.CatchClause{
			Span:    ast.Span{Start: cstart, End: c.Position()},
			Pattern: pat,
			Where:   where,
			Body:    cbody,
		})
	}
	return ast.DoStatement{Span: ast.Span{Start: start, End: c.Position()}, Body: body, Catches: catches}, nil
}

func parseDeclarationStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	decl, err := ParseDeclaration(c)
	if err != nil {
		return nil, err
	}
	return ast.DeclarationStatement{Span: ast.Span{Start: start, End: c.Position()}, Declaration: decl}, nil
}

// parseBuildConfigurationStatement parses `#if cond { } #elseif cond { }*
// #else? { } #endif`, spec.md §3's compile-time configuration block.
func parseBuildConfigurationStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Pound("#if")(c); e != nil {
		return nil, e
	}
	cond, err := parseBuildConfigOr(c)
	if err != nil {
		return nil, err
	}
	stmts, err := parseStatementsUntilPound(c)
	if err != nil {
		return nil, err
	}
	branches := []ast.BuildConfigBranch{{Condition: cond, Statements: stmts}}

	for {
		before := c.Save()
		if _, e := lexer.Pound("#elseif")(c); e == nil {
			c2, err := parseBuildConfigOr(c)
			if err != nil {
				return nil, err
			}
			s2, err := parseStatementsUntilPound(c)
			if err != nil {
				return nil, err
			}
			branches = append(branches, ast.BuildConfigBranch{Condition: c2, Statements: s2})
			continue
		}
		c.Restore(before)
		break
	}

	before := c.Save()
	if _, e := lexer.Pound("#else")(c); e == nil {
		s2, err := parseStatementsUntilPound(c)
		if err != nil {
			return nil, err
		}
		branches = append(branches, ast.BuildConfigBranch{Condition: nil, Statements: s2})
	} else {
		c.Restore(before)
	}

	if _, e := lexer.Pound("#endif")(c); e != nil {
		return nil, e
	}
	return ast.BuildConfigurationStatement{Span: ast.Span{Start: start, End: c.Position()}, Branches: branches}, nil
}

func parseStatementsUntilPound(c *cursor.Cursor) ([]ast.Statement, *diagnostics.ParseError) {
	var stmts []ast.Statement
	for {
		before := c.Save()
		if err := lexer.SkipTrivia(c); err == nil {
			if r, ok := c.Peek(); ok && r == '#' {
				c.Restore(before)
				return stmts, nil
			}
		}
		c.Restore(before)
		stmt, err := ParseStatement(c)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func parseBuildConfigOr(c *cursor.Cursor) (ast.BuildConfigExpr, *diagnostics.ParseError) {
	left, err := parseBuildConfigAnd(c)
	if err != nil {
		return nil, err
	}
	for {
		before := c.Save()
		if _, e := lexer.OperatorSymbol("||")(c); e != nil {
			c.Restore(before)
			return left, nil
		}
		right, err := parseBuildConfigAnd(c)
		if err != nil {
			return nil, err
		}
		left = ast.BuildConfigBinary{Op: ast.BuildConfigOr, Left: left, Right: right}
	}
}

func parseBuildConfigAnd(c *cursor.Cursor) (ast.BuildConfigExpr, *diagnostics.ParseError) {
	left, err := parseBuildConfigPrimary(c)
	if err != nil {
		return nil, err
	}
	for {
		before := c.Save()
		if _, e := lexer.OperatorSymbol("&&")(c); e != nil {
			c.Restore(before)
			return left, nil
		}
		right, err := parseBuildConfigPrimary(c)
		if err != nil {
			return nil, err
		}
		left = ast.BuildConfigBinary{Op: ast.BuildConfigAnd, Left: left, Right: right}
	}
}

func parseBuildConfigPrimary(c *cursor.Cursor) (ast.BuildConfigExpr, *diagnostics.ParseError) {
	if _, e := lexer.OperatorSymbol("!")(c); e == nil {
		operand, err := parseBuildConfigPrimary(c)
		if err != nil {
			return nil, err
		}
		return ast.BuildConfigNot{Operand: operand}, nil
	}
	if _, e := lexer.Punct("(")(c); e == nil {
		inner, err := parseBuildConfigOr(c)
		if err != nil {
			return nil, err
		}
		if _, e := lexer.Punct(")")(c); e != nil {
			return nil, e
		}
		return inner, nil
	}
	if _, e := lexer.Keyword("true")(c); e == nil {
		return ast.BuildConfigBool{Value: true}, nil
	}
	if _, e := lexer.Keyword("false")(c); e == nil {
		return ast.BuildConfigBool{Value: false}, nil
	}
	tok, e := lexer.Ident(c)
	if e != nil {
		return nil, diagnostics.NewParseError(diagnostics.KindSyntax, c.Position(), "expected build configuration expression")
	}
	if tok.Lexeme == "os" || tok.Lexeme == "arch" {
		pbefore := c.Save()
		if _, e2 := lexer.Punct("(")(c); e2 == nil {
			argTok, e3 := lexer.Ident(c)
			if e3 != nil {
				return nil, e3
			}
			if _, e4 := lexer.Punct(")")(c); e4 != nil {
				return nil, e4
			}
			if tok.Lexeme == "os" {
				if !config.IsKnownPlatform(argTok.Lexeme) {
					return nil, diagnostics.NewParseError(diagnostics.KindSyntax, c.Position(), "unknown platform '%s' in os(...)", argTok.Lexeme)
				}
				return ast.BuildConfigOS{Platform: argTok.Lexeme}, nil
			}
			if !config.IsKnownArchitecture(argTok.Lexeme) {
				return nil, diagnostics.NewParseError(diagnostics.KindSyntax, c.Position(), "unknown architecture '%s' in arch(...)", argTok.Lexeme)
			}
			return ast.BuildConfigArch{Arch: argTok.Lexeme}, nil
		}
		c.Restore(pbefore)
		return ast.BuildConfigIdent{Name: tok.Lexeme}, nil
	}
	return ast.BuildConfigIdent{Name: tok.Lexeme}, nil
}

// parseLineControlStatement parses `#line` or `#line N "file"`.
func parseLineControlStatement(c *cursor.Cursor) (ast.Statement, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Pound("#line")(c); e != nil {
		return nil, e
	}
	before := c.Save()
	intTok, e := lexer.Integer(c)
	if e != nil {
		c.Restore(before)
		return ast.LineControlStatement{Span: ast.Span{Start: start, End: c.Position()}, Bare: true}, nil
	}
	line, convErr := strconv.Atoi(intTok.Lexeme)
	if convErr != nil {
		return nil, diagnostics.NewParseError(diagnostics.KindSyntax, start, "invalid #line number '%s'", intTok.Lexeme)
	}
	if line <= 0 {
		return nil, diagnostics.NewParseError(diagnostics.KindLexical, start, "#line number must be > 0, got %d", line)
	}
	if err := lexer.SkipTrivia(c); err != nil {
		return nil, err
	}
	strLit, err := lexer.ScanStringLiteral(c, ParseExpression)
	if err != nil {
		return nil, err
	}
	file := ""
	if len(strLit.Chunks) == 1 {
		if tc, ok := strLit.Chunks[0].(ast.TextChunk); ok {
			file = tc.Text
		}
	}
	return ast.LineControlStatement{Span: ast.Span{Start: start, End: c.Position()}, Line: line, File: file}, nil
}
