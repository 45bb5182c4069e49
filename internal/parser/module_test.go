package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
)

func TestParseModuleIsAFlatStatementList(t *testing.T) {
	c := cursor.New(`import Foundation

let greeting = "hello"

func shout() {
	print(greeting)
}

shout()
`)
	mod, err := ParseModule(c)
	require.Nil(t, err)
	require.Len(t, mod.Statements, 4)

	_, ok := mod.Statements[0].(ast.DeclarationStatement)
	require.True(t, ok, "import is a declaration wrapped in a DeclarationStatement")

	_, ok = mod.Statements[3].(ast.ExpressionStatement)
	require.True(t, ok, "a bare call at module scope is an ExpressionStatement")
}

func TestParseModuleOnEmptyInput(t *testing.T) {
	c := cursor.New("")
	mod, err := ParseModule(c)
	require.Nil(t, err)
	require.Empty(t, mod.Statements)
}

func TestParseModuleSkipsLeadingAndTrailingTrivia(t *testing.T) {
	c := cursor.New("  // a leading comment\nlet x = 1\n// trailing\n")
	mod, err := ParseModule(c)
	require.Nil(t, err)
	require.Len(t, mod.Statements, 1)
}
