// Package api exposes the only public surface of the parser core: the five
// entry points spec.md §6 names. Each skips leading and trailing trivia and
// requires the whole input be consumed, reporting a trailing-input error
// otherwise; a caller never constructs a cursor or calls into internal/parser
// directly.
package api

import (
	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/lexer"
	"github.com/swiftsyntax/swiftparse/internal/parser"
)

// entry runs one top-level production to completion, enforcing that no
// non-trivia input remains afterward.
func entry[T any](source, file string, produce func(*cursor.Cursor) (T, *diagnostics.ParseError)) (T, *diagnostics.ParseError) {
	c := cursor.New(source)
	result, err := produce(c)
	if err != nil {
		var zero T
		return zero, err.WithFile(file)
	}
	if skipErr := lexer.SkipTrivia(c); skipErr != nil {
		var zero T
		return zero, skipErr.WithFile(file)
	}
	if _, ok := c.Peek(); ok {
		var zero T
		return zero, diagnostics.NewParseError(diagnostics.KindTrailingInput, c.Position(), "unexpected trailing input").WithFile(file)
	}
	return result, nil
}

// ParseModule parses source as a complete compilation unit: a sequence of
// top-level statements.
func ParseModule(source, file string) (*ast.Module, *diagnostics.ParseError) {
	return entry(source, file, parser.ParseModule)
}

// ParseExpression parses source as a single standalone expression.
func ParseExpression(source, file string) (*ast.Expression, *diagnostics.ParseError) {
	return entry(source, file, parser.ParseExpression)
}

// ParseDeclaration parses source as a single standalone declaration.
func ParseDeclaration(source, file string) (ast.Declaration, *diagnostics.ParseError) {
	return entry(source, file, parser.ParseDeclaration)
}

// ParseFunctionCall parses source as a postfix chain culminating in a call,
// e.g. `foo(1, label: 2) { x in x }`, rejecting a postfix chain whose final
// suffix is not a function call.
func ParseFunctionCall(source, file string) (*ast.PostfixExpression, *diagnostics.ParseError) {
	return entry(source, file, parseFunctionCallExpression)
}

func parseFunctionCallExpression(c *cursor.Cursor) (*ast.PostfixExpression, *diagnostics.ParseError) {
	expr, err := parser.ParsePostfixExpression(c)
	if err != nil {
		return nil, err
	}
	if len(expr.Suffixes) == 0 {
		return nil, diagnostics.NewParseError(diagnostics.KindSyntax, expr.Span.End, "expected a function call")
	}
	if _, ok := expr.Suffixes[len(expr.Suffixes)-1].(ast.FunctionCallSuffix); !ok {
		return nil, diagnostics.NewParseError(diagnostics.KindSyntax, expr.Span.End, "expected a function call")
	}
	return expr, nil
}

// ParseInitializerExpression parses source as a postfix chain followed by
// `.init`, e.g. `Foo(1).init` — the form a superclass delegating
// initializer call takes.
func ParseInitializerExpression(source, file string) (*ast.PostfixExpression, *diagnostics.ParseError) {
	return entry(source, file, parseInitializerExpression)
}

func parseInitializerExpression(c *cursor.Cursor) (*ast.PostfixExpression, *diagnostics.ParseError) {
	expr, err := parser.ParsePostfixExpression(c)
	if err != nil {
		return nil, err
	}
	if len(expr.Suffixes) == 0 {
		return nil, diagnostics.NewParseError(diagnostics.KindSyntax, expr.Span.End, "expected a '.init' postfix chain")
	}
	if _, ok := expr.Suffixes[len(expr.Suffixes)-1].(ast.DotInitSuffix); !ok {
		return nil, diagnostics.NewParseError(diagnostics.KindSyntax, expr.Span.End, "expected a '.init' postfix chain")
	}
	return expr, nil
}
