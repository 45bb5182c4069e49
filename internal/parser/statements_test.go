package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
)

func parseStmt(t *testing.T, src string) ast.Statement {
	t.Helper()
	c := cursor.New(src)
	stmt, err := ParseStatement(c)
	require.Nil(t, err, "unexpected parse error for %q: %v", src, err)
	return stmt
}

func TestParseForInStatement(t *testing.T) {
	stmt := parseStmt(t, "for value in values { print(value) }")
	forIn, ok := stmt.(ast.ForInStatement)
	require.True(t, ok)
	require.NotNil(t, forIn.Expr)
	require.Nil(t, forIn.Where)
}

func TestParseForInStatementWithWhere(t *testing.T) {
	stmt := parseStmt(t, "for value in values where value > 0 { print(value) }")
	forIn, ok := stmt.(ast.ForInStatement)
	require.True(t, ok)
	require.NotNil(t, forIn.Where)
}

func TestParseCStyleForStatement(t *testing.T) {
	stmt := parseStmt(t, "for var i = 0; i < 10; i = i + 1 { print(i) }")
	forStmt, ok := stmt.(ast.ForStatement)
	require.True(t, ok)
	require.NotNil(t, forStmt.Init)
	require.NotNil(t, forStmt.Condition)
	require.NotNil(t, forStmt.Increment)
}

func TestParseWhileStatement(t *testing.T) {
	stmt := parseStmt(t, "while i < 10 { i = i + 1 }")
	_, ok := stmt.(ast.WhileStatement)
	require.True(t, ok)
}

func TestParseRepeatWhileStatement(t *testing.T) {
	stmt := parseStmt(t, "repeat { i = i + 1 } while i < 10")
	_, ok := stmt.(ast.RepeatWhileStatement)
	require.True(t, ok)
}

func TestParseIfElseIfChain(t *testing.T) {
	stmt := parseStmt(t, `if a {
		foo()
	} else if b {
		bar()
	} else {
		baz()
	}`)
	ifStmt, ok := stmt.(ast.IfStatement)
	require.True(t, ok)
	require.NotNil(t, ifStmt.ElseIf)
	require.Nil(t, ifStmt.ElseBody)
	require.NotNil(t, ifStmt.ElseIf.ElseBody)
}

func TestParseGuardStatement(t *testing.T) {
	stmt := parseStmt(t, "guard value > 0 else { return }")
	_, ok := stmt.(ast.GuardStatement)
	require.True(t, ok)
}

func TestParseSwitchStatementWithMultiValueCase(t *testing.T) {
	stmt := parseStmt(t, `switch n {
	case 0:
		zero()
	case 1, 2, 3:
		small()
	default:
		other()
	}`)
	sw, ok := stmt.(ast.SwitchStatement)
	require.True(t, ok)
	require.Len(t, sw.Cases, 3)
	require.Len(t, sw.Cases[1].Items, 3)
	require.True(t, sw.Cases[2].IsDefault)
}

func TestParseSwitchStatementWithEnumCasePattern(t *testing.T) {
	stmt := parseStmt(t, `switch direction {
	case .north:
		goNorth()
	default:
		stay()
	}`)
	sw, ok := stmt.(ast.SwitchStatement)
	require.True(t, ok)
	require.Len(t, sw.Cases, 2)
}

func TestParseDoCatchStatement(t *testing.T) {
	stmt := parseStmt(t, `do {
		try risky()
	} catch ParseFailure.outOfRange {
		recoverFromRange()
	} catch {
		recoverGeneric()
	}`)
	doStmt, ok := stmt.(ast.DoStatement)
	require.True(t, ok)
	require.Len(t, doStmt.Catches, 2)
	require.NotNil(t, doStmt.Catches[0].Pattern)
	require.Nil(t, doStmt.Catches[1].Pattern)
}

func TestParseDeferStatement(t *testing.T) {
	stmt := parseStmt(t, "defer { cleanup() }")
	_, ok := stmt.(ast.DeferStatement)
	require.True(t, ok)
}

func TestParseLabeledStatement(t *testing.T) {
	stmt := parseStmt(t, "outer: while true { break outer }")
	lbl, ok := stmt.(ast.LabeledStatement)
	require.True(t, ok)
	require.Equal(t, "outer", lbl.Label)
}

func TestParseBreakWithLabel(t *testing.T) {
	stmt := parseStmt(t, "break outer")
	b, ok := stmt.(ast.BreakStatement)
	require.True(t, ok)
	require.Equal(t, "outer", b.Label)
}

func TestParseReturnWithoutExpression(t *testing.T) {
	stmt := parseStmt(t, "return")
	ret, ok := stmt.(ast.ReturnStatement)
	require.True(t, ok)
	require.Nil(t, ret.Expr)
}

func TestParseBuildConfigurationStatement(t *testing.T) {
	stmt := parseStmt(t, `#if os(Linux)
	let platform = "linux"
	#else
	let platform = "other"
	#endif`)
	build, ok := stmt.(ast.BuildConfigurationStatement)
	require.True(t, ok)
	require.Len(t, build.Branches, 2)
	_, isOS := build.Branches[0].Condition.(ast.BuildConfigOS)
	require.True(t, isOS)
	require.Nil(t, build.Branches[1].Condition)
}

func TestParseBuildConfigurationRejectsUnknownPlatform(t *testing.T) {
	c := cursor.New(`#if os(Windows)
	let x = 1
	#endif`)
	_, err := ParseStatement(c)
	require.NotNil(t, err)
}

func TestParseSwitchCaseItemWithWhereClause(t *testing.T) {
	stmt := parseStmt(t, `switch p {
	case .a, .b where q:
		break
	default:
		return 0
	}`)
	sw, ok := stmt.(ast.SwitchStatement)
	require.True(t, ok)
	require.Len(t, sw.Cases, 2)
	require.Len(t, sw.Cases[0].Items, 2)
	require.Nil(t, sw.Cases[0].Items[0].Where)
	require.NotNil(t, sw.Cases[0].Items[1].Where)
}

func TestParseBuildConfigurationWithCompoundCondition(t *testing.T) {
	stmt := parseStmt(t, "#if os(OSX) && !DEBUG\n\tlet x = 1\n#else\n\tlet x = 2\n#endif")
	build, ok := stmt.(ast.BuildConfigurationStatement)
	require.True(t, ok)
	require.Len(t, build.Branches, 2)
	require.NotNil(t, build.Branches[0].Condition)
	require.Nil(t, build.Branches[1].Condition)
}

func TestParseLineControlBareForm(t *testing.T) {
	stmt := parseStmt(t, "#line")
	line, ok := stmt.(ast.LineControlStatement)
	require.True(t, ok)
	require.True(t, line.Bare)
}

func TestParseLineControlWithNumberAndFile(t *testing.T) {
	stmt := parseStmt(t, `#line 42 "other.swift"`)
	line, ok := stmt.(ast.LineControlStatement)
	require.True(t, ok)
	require.False(t, line.Bare)
	require.Equal(t, 42, line.Line)
	require.Equal(t, "other.swift", line.File)
}

func TestParseLineControlRejectsZero(t *testing.T) {
	c := cursor.New(`#line 0 "f"`)
	_, err := ParseStatement(c)
	require.NotNil(t, err, "#line N requires N > 0 per spec.md §3/§7")
}

func TestParseStatementRejectsDanglingElse(t *testing.T) {
	c := cursor.New("else { foo() }")
	_, err := ParseStatement(c)
	require.NotNil(t, err)
}
