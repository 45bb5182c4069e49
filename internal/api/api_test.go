package api

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swiftsyntax/swiftparse/internal/ast"
)

func TestParseModuleAcceptsMultipleTopLevelStatements(t *testing.T) {
	mod, err := ParseModule("let x = 1\nlet y = 2\n", "<test>")
	require.Nil(t, err)
	require.Len(t, mod.Statements, 2)
}

func TestParseModuleRejectsTrailingGarbage(t *testing.T) {
	_, err := ParseModule("let x = 1\n)", "<test>")
	require.NotNil(t, err)
}

func TestParseExpressionRejectsDeclaration(t *testing.T) {
	_, err := ParseExpression("let x = 1", "<test>")
	require.NotNil(t, err)
}

func TestParseExpressionAcceptsBinaryExpression(t *testing.T) {
	expr, err := ParseExpression("1 + 2 * 3", "<test>")
	require.Nil(t, err)
	require.NotNil(t, expr)
}

func TestParseDeclarationAcceptsFunction(t *testing.T) {
	decl, err := ParseDeclaration("func add(a: Int, b: Int) -> Int { return a + b }", "<test>")
	require.Nil(t, err)
	fn, ok := decl.(ast.FunctionDeclaration)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name)
}

func TestParseFunctionCallAcceptsCall(t *testing.T) {
	expr, err := ParseFunctionCall("foo(1, label: 2)", "<test>")
	require.Nil(t, err)
	require.NotEmpty(t, expr.Suffixes)
	_, ok := expr.Suffixes[len(expr.Suffixes)-1].(ast.FunctionCallSuffix)
	require.True(t, ok)
}

func TestParseFunctionCallRejectsBareMemberAccess(t *testing.T) {
	_, err := ParseFunctionCall("foo.bar", "<test>")
	require.NotNil(t, err)
}

func TestParseInitializerExpressionAcceptsDotInit(t *testing.T) {
	expr, err := ParseInitializerExpression("Foo(1).init", "<test>")
	require.Nil(t, err)
	_, ok := expr.Suffixes[len(expr.Suffixes)-1].(ast.DotInitSuffix)
	require.True(t, ok)
}

func TestParseInitializerExpressionRejectsPlainCall(t *testing.T) {
	_, err := ParseInitializerExpression("Foo(1)", "<test>")
	require.NotNil(t, err)
}

func TestErrorReportsFileAndPosition(t *testing.T) {
	_, err := ParseModule("let x = 1\nlet y = )", "input.swift")
	require.NotNil(t, err)
	require.Equal(t, "input.swift", err.File)
	require.Equal(t, 2, err.Position.Line)
}
