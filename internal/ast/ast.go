// Package ast defines the Swift AST: a closed family of tagged variants, one
// struct per production named in spec.md §3. Every node is immutable after
// construction and carries no behavior — no Accept/Visitor methods, since
// nothing in this module renders or analyzes the tree, only the parser
// builds it and callers read it.
package ast

import "github.com/swiftsyntax/swiftparse/internal/cursor"

// Span records where a node began and ended in the source, for diagnostics
// and for tooling built on top of this package (not consulted by the
// parser itself once a node is built).
type Span struct {
	Start cursor.Position
	End   cursor.Position
}

// Module is the root of every successful parse_module: an ordered sequence
// of top-level statements (Swift has no separate top-level declaration
// list; declarations appear as DeclarationStatement).
type Module struct {
	Span       Span
	Statements []Statement
}

// Node is implemented by every AST type so generic tooling can walk a tree
// without a type switch limited to one category.
type Node interface {
	node()
}

func (Module) node() {}
