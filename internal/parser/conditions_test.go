package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swiftsyntax/swiftparse/internal/ast"
)

// TestParseIfLetWithBareContinuationAndWhere covers spec.md §8 scenario 3:
// a continuation written without its own `let`/`var` still binds.
func TestParseIfLetWithBareContinuationAndWhere(t *testing.T) {
	stmt := parseStmt(t, `if let x = y, z = w where x > 0 { } else if true { }`)
	ifStmt, ok := stmt.(ast.IfStatement)
	require.True(t, ok)

	cond, ok := ifStmt.Condition.Conditions[0].(ast.OptionalBindingCondition)
	require.True(t, ok)
	require.Equal(t, ast.BindingLet, cond.Head.Kind)
	require.Len(t, cond.Continuations, 1)
	require.Equal(t, ast.BindingPlain, cond.Continuations[0].Kind)
	require.NotNil(t, cond.Where)

	require.NotNil(t, ifStmt.ElseIf)
	elseIfCond := ifStmt.ElseIf.Condition
	require.NotNil(t, elseIfCond.LeadingExpr, "else if true uses the boolean literal as the clause's leading expression")
	require.Empty(t, elseIfCond.Conditions)
}

func TestParseGuardWithMultipleBindingContinuations(t *testing.T) {
	stmt := parseStmt(t, `guard let a = maybeA, let b = maybeB, c = maybeC else { return }`)
	g, ok := stmt.(ast.GuardStatement)
	require.True(t, ok)

	cond, ok := g.Condition.Conditions[0].(ast.OptionalBindingCondition)
	require.True(t, ok)
	require.Len(t, cond.Continuations, 2)
	require.Equal(t, ast.BindingLet, cond.Continuations[0].Kind)
	require.Equal(t, ast.BindingPlain, cond.Continuations[1].Kind)
}

func TestParseIfLetContinuationCanItselfBeVar(t *testing.T) {
	stmt := parseStmt(t, `if let a = x, var b = y { }`)
	ifStmt, ok := stmt.(ast.IfStatement)
	require.True(t, ok)

	cond, ok := ifStmt.Condition.Conditions[0].(ast.OptionalBindingCondition)
	require.True(t, ok)
	require.Len(t, cond.Continuations, 1)
	require.Equal(t, ast.BindingVar, cond.Continuations[0].Kind)
}
