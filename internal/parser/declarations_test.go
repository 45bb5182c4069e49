package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
)

func parseDecl(t *testing.T, src string) ast.Declaration {
	t.Helper()
	c := cursor.New(src)
	decl, err := ParseDeclaration(c)
	require.Nil(t, err, "unexpected parse error for %q: %v", src, err)
	return decl
}

func TestParseImportDeclaration(t *testing.T) {
	decl := parseDecl(t, "import Foundation")
	imp, ok := decl.(ast.ImportDeclaration)
	require.True(t, ok)
	require.Equal(t, []string{"Foundation"}, imp.Path)
	require.Empty(t, imp.Kind)
}

func TestParseImportDeclarationWithKindAndDottedPath(t *testing.T) {
	decl := parseDecl(t, "import struct Foundation.Date")
	imp, ok := decl.(ast.ImportDeclaration)
	require.True(t, ok)
	require.Equal(t, "struct", imp.Kind)
	require.Equal(t, []string{"Foundation", "Date"}, imp.Path)
}

func TestParseConstantDeclaration(t *testing.T) {
	decl := parseDecl(t, "let x = 1")
	c, ok := decl.(ast.ConstantDeclaration)
	require.True(t, ok)
	require.Len(t, c.Initializers, 1)
}

func TestParseStoredVariableDeclaration(t *testing.T) {
	decl := parseDecl(t, "var width: Double = 1.0")
	v, ok := decl.(ast.VariableDeclaration)
	require.True(t, ok)
	require.Equal(t, ast.VariableStored, v.Kind)
	require.Equal(t, "width", v.Name)
}

func TestParseComputedVariableDeclaration(t *testing.T) {
	decl := parseDecl(t, "var area: Double { return 1.0 }")
	v, ok := decl.(ast.VariableDeclaration)
	require.True(t, ok)
	require.Equal(t, ast.VariableComputed, v.Kind)
	require.NotNil(t, v.Getter)
	require.Nil(t, v.Setter)
}

func TestParseComputedVariableDeclarationWithSetter(t *testing.T) {
	decl := parseDecl(t, `var total: Int {
		get { return 1 }
		set { doNothing() }
	}`)
	v, ok := decl.(ast.VariableDeclaration)
	require.True(t, ok)
	require.Equal(t, ast.VariableComputed, v.Kind)
	require.NotNil(t, v.Getter)
	require.NotNil(t, v.Setter)
}

func TestParseObservedVariableDeclaration(t *testing.T) {
	decl := parseDecl(t, `var score: Int = 0 {
		willSet { prepare() }
		didSet { notify() }
	}`)
	v, ok := decl.(ast.VariableDeclaration)
	require.True(t, ok)
	require.Equal(t, ast.VariableObserved, v.Kind)
	require.NotNil(t, v.WillSet)
	require.NotNil(t, v.DidSet)
}

func TestParseTypeAliasDeclaration(t *testing.T) {
	decl := parseDecl(t, "typealias Identifier = Int")
	ta, ok := decl.(ast.TypeAliasDeclaration)
	require.True(t, ok)
	require.Equal(t, "Identifier", ta.Name)
}

func TestParseFunctionDeclarationWithCurriedParameterClauses(t *testing.T) {
	decl := parseDecl(t, "func adder(a: Int)(b: Int) -> Int { return a + b }")
	fn, ok := decl.(ast.FunctionDeclaration)
	require.True(t, ok)
	require.Equal(t, "adder", fn.Name)
	require.Len(t, fn.ParameterClauses, 2)
}

func TestParseFunctionDeclarationThrows(t *testing.T) {
	decl := parseDecl(t, "func risky() throws -> Int { return 1 }")
	fn, ok := decl.(ast.FunctionDeclaration)
	require.True(t, ok)
	require.NotEqual(t, ast.ThrowsMarker(""), fn.Throws)
}

func TestParseUnionStyleEnumDeclaration(t *testing.T) {
	decl := parseDecl(t, `enum Shape {
		case circle(Double)
		case square(Double)
	}`)
	e, ok := decl.(ast.EnumDeclaration)
	require.True(t, ok)
	require.Equal(t, ast.EnumUnion, e.Style)
	require.Len(t, e.Cases, 2)
	require.NotNil(t, e.Cases[0].Payload)
}

func TestParseRawValueStyleEnumDeclaration(t *testing.T) {
	decl := parseDecl(t, `enum Suit: Int {
		case spades = 1
		case hearts = 2
	}`)
	e, ok := decl.(ast.EnumDeclaration)
	require.True(t, ok)
	require.Equal(t, ast.EnumRaw, e.Style)
	require.NotNil(t, e.Inheritance)
}

func TestParseIndirectEnumDeclaration(t *testing.T) {
	decl := parseDecl(t, `indirect enum Tree {
		case leaf
		case node(Tree, Tree)
	}`)
	e, ok := decl.(ast.EnumDeclaration)
	require.True(t, ok)
	require.True(t, e.Indirect)
}

func TestParseStructDeclarationWithGenericsAndInheritance(t *testing.T) {
	decl := parseDecl(t, `struct Box<Value>: Equatable {
		let contents: Value
	}`)
	s, ok := decl.(ast.StructDeclaration)
	require.True(t, ok)
	require.NotNil(t, s.GenericParams)
	require.Len(t, s.GenericParams.Parameters, 1)
	require.NotNil(t, s.Inheritance)
}

func TestParseClassDeclarationWithInitializer(t *testing.T) {
	decl := parseDecl(t, `class Circle {
		let radius: Double
		init(radius: Double) {
			self.radius = radius
		}
	}`)
	cls, ok := decl.(ast.ClassDeclaration)
	require.True(t, ok)
	require.Len(t, cls.Members, 2)
}

func TestParseProtocolDeclarationWithRequirement(t *testing.T) {
	decl := parseDecl(t, `protocol Shape {
		func area() -> Double
	}`)
	p, ok := decl.(ast.ProtocolDeclaration)
	require.True(t, ok)
	require.Len(t, p.Members, 1)
	fn, ok := p.Members[0].(ast.FunctionDeclaration)
	require.True(t, ok)
	require.Nil(t, fn.Body, "protocol requirement must have no body")
}

func TestParseSubscriptDeclaration(t *testing.T) {
	decl := parseDecl(t, `subscript(index: Int) -> Int {
		get { return index }
	}`)
	_, ok := decl.(ast.SubscriptDeclaration)
	require.True(t, ok)
}

func TestParsePrefixOperatorDeclaration(t *testing.T) {
	decl := parseDecl(t, "prefix operator +++")
	op, ok := decl.(ast.OperatorDeclaration)
	require.True(t, ok)
	require.Equal(t, ast.FixityPrefix, op.Fixity)
	require.Equal(t, "+++", op.Symbol)
	require.Nil(t, op.Precedence)
}

func TestParseInfixOperatorDeclarationWithBody(t *testing.T) {
	decl := parseDecl(t, `infix operator ** {
		precedence 160
		associativity left
	}`)
	op, ok := decl.(ast.OperatorDeclaration)
	require.True(t, ok)
	require.Equal(t, ast.FixityInfix, op.Fixity)
	require.NotNil(t, op.Precedence)
	require.Equal(t, 160, *op.Precedence)
	require.Equal(t, ast.AssocLeft, op.Associativity)
}

func TestParseDeclarationRejectsGarbage(t *testing.T) {
	c := cursor.New(")")
	_, err := ParseDeclaration(c)
	require.NotNil(t, err)
}
