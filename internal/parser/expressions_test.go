package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
)

func parseExpr(t *testing.T, src string) *ast.Expression {
	t.Helper()
	c := cursor.New(src)
	expr, err := ParseExpression(c)
	require.Nil(t, err, "unexpected parse error for %q: %v", src, err)
	return expr
}

func TestParseExpressionFlatBinaryTail(t *testing.T) {
	expr := parseExpr(t, "1 + 2 * 3")
	require.Len(t, expr.Tails, 2, "precedence is not resolved here; tails preserve surface order")
	first, ok := expr.Tails[0].(ast.OperatorTail)
	require.True(t, ok)
	require.Equal(t, "+", first.Operator)
}

func TestParseExpressionAssignmentDistinctFromEquality(t *testing.T) {
	expr := parseExpr(t, "x = 1")
	require.Len(t, expr.Tails, 1)
	_, ok := expr.Tails[0].(ast.AssignmentTail)
	require.True(t, ok)
}

func TestParseExpressionEqualityIsNotAssignment(t *testing.T) {
	expr := parseExpr(t, "x == 1")
	require.Len(t, expr.Tails, 1)
	tail, ok := expr.Tails[0].(ast.OperatorTail)
	require.True(t, ok)
	require.Equal(t, "==", tail.Operator)
}

func TestParseExpressionConditionalTail(t *testing.T) {
	expr := parseExpr(t, "flag ? 1 : 2")
	require.Len(t, expr.Tails, 1)
	_, ok := expr.Tails[0].(ast.ConditionalTail)
	require.True(t, ok)
}

func TestParseExpressionTypeCastingTail(t *testing.T) {
	expr := parseExpr(t, "value as? String")
	require.Len(t, expr.Tails, 1)
	tail, ok := expr.Tails[0].(ast.TypeCastingTail)
	require.True(t, ok)
	require.Equal(t, ast.CastAsOpt, tail.Op)
}

func TestParseExpressionTryMarker(t *testing.T) {
	expr := parseExpr(t, "try! risky()")
	require.Equal(t, ast.TryForced, expr.Try)
}

func TestParseExpressionInOutPrefix(t *testing.T) {
	expr := parseExpr(t, "&value")
	require.Equal(t, "value", expr.Prefix.InOutIdentifier)
}

func TestParsePostfixChainMemberAndCall(t *testing.T) {
	c := cursor.New("foo.bar(1).baz")
	expr, err := ParsePostfixExpression(c)
	require.Nil(t, err)
	require.Len(t, expr.Suffixes, 3)
	_, ok := expr.Suffixes[0].(ast.ExplicitMemberSuffix)
	require.True(t, ok)
	_, ok = expr.Suffixes[1].(ast.FunctionCallSuffix)
	require.True(t, ok)
	_, ok = expr.Suffixes[2].(ast.ExplicitMemberSuffix)
	require.True(t, ok)
}

func TestParsePostfixChainOptionalAndForcedChaining(t *testing.T) {
	c := cursor.New("value?.child!")
	expr, err := ParsePostfixExpression(c)
	require.Nil(t, err)
	require.Len(t, expr.Suffixes, 3)
	_, ok := expr.Suffixes[0].(ast.OptionalChainingSuffix)
	require.True(t, ok)
	_, ok = expr.Suffixes[2].(ast.ForcedValueSuffix)
	require.True(t, ok)
}

func TestParsePostfixChainDotInit(t *testing.T) {
	c := cursor.New("Base.init")
	expr, err := ParsePostfixExpression(c)
	require.Nil(t, err)
	require.Len(t, expr.Suffixes, 1)
	_, ok := expr.Suffixes[0].(ast.DotInitSuffix)
	require.True(t, ok)
}

func TestParsePostfixChainSubscript(t *testing.T) {
	c := cursor.New("items[0]")
	expr, err := ParsePostfixExpression(c)
	require.Nil(t, err)
	require.Len(t, expr.Suffixes, 1)
	_, ok := expr.Suffixes[0].(ast.SubscriptSuffix)
	require.True(t, ok)
}

func TestParseExpressionLogicalOperatorsStayFlat(t *testing.T) {
	expr := parseExpr(t, "a || b && c")
	require.Len(t, expr.Tails, 2, "precedence among || and && is deferred, not resolved by the parser")
	first, ok := expr.Tails[0].(ast.OperatorTail)
	require.True(t, ok)
	require.Equal(t, "||", first.Operator)
	second, ok := expr.Tails[1].(ast.OperatorTail)
	require.True(t, ok)
	require.Equal(t, "&&", second.Operator)
}

// TestParseClosureWithCaptureListSignatureAndResult covers spec.md §8
// scenario 6.
func TestParseClosureWithCaptureListSignatureAndResult(t *testing.T) {
	expr := parseExpr(t, "{ [weak self] (x: Int) -> Int in x + 1 }")
	require.NotNil(t, expr.Prefix.Postfix)
	wrapped, ok := expr.Prefix.Postfix.Base.(ast.ClosureExpression)
	require.True(t, ok)
	closure := wrapped.Closure
	require.NotNil(t, closure.Signature)

	require.Len(t, closure.Signature.Captures, 1)
	require.Equal(t, ast.CaptureWeak, closure.Signature.Captures[0].Specifier)

	require.Len(t, closure.Signature.Parameters, 1)
	require.Equal(t, "x", closure.Signature.Parameters[0].Name)
	require.Nil(t, closure.Signature.Identifiers)
	require.NotNil(t, closure.Signature.Result)

	require.Len(t, closure.Body, 1)
}

func TestParseExpressionRejectsUnmatchedParen(t *testing.T) {
	c := cursor.New("(1 + 2")
	_, err := ParseExpression(c)
	require.NotNil(t, err)
}
