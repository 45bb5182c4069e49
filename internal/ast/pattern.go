package ast

// Pattern is implemented by every pattern-syntax variant spec.md §3/§4.4
// names. The full enum-case pattern grammar is incomplete in the source
// (spec.md §9 open question #1); EnumCasePattern below is this
// implementation's explicit resolution of that gap, modeled after Swift's
// reference grammar (an optional type component, a dotted case name, and
// an optional tuple of associated-value sub-patterns).
type Pattern interface {
	Node
	patternNode()
}

// WildcardPattern is `_`, with an optional type annotation.
type WildcardPattern struct {
	Span           Span
	TypeAnnotation Type // nil if absent
}

func (WildcardPattern) node()        {}
func (WildcardPattern) patternNode() {}

// IdentifierPattern binds a name, with an optional type annotation.
type IdentifierPattern struct {
	Span           Span
	Name           string
	TypeAnnotation Type // nil if absent
}

func (IdentifierPattern) node()        {}
func (IdentifierPattern) patternNode() {}

// OptionalPattern is `pattern?`, the speculative optional-pattern form.
type OptionalPattern struct {
	Span    Span
	Wrapped Pattern
}

func (OptionalPattern) node()        {}
func (OptionalPattern) patternNode() {}

// TuplePatternElement is one element of a TuplePattern; Label is empty for
// an unlabeled element.
type TuplePatternElement struct {
	Label   string
	Pattern Pattern
}

// TuplePattern is `(p1, p2, ...)`, with an optional type annotation.
type TuplePattern struct {
	Span           Span
	Elements       []TuplePatternElement
	TypeAnnotation Type // nil if absent
}

func (TuplePattern) node()        {}
func (TuplePattern) patternNode() {}

// ExpressionPattern wraps an expression used in pattern position (e.g. a
// case label matched by `~=` such as a literal or range).
type ExpressionPattern struct {
	Span       Span
	Expression *Expression
}

func (ExpressionPattern) node()        {}
func (ExpressionPattern) patternNode() {}

// BindingKind distinguishes `var` from `let` sub-patterns. BindingPlain
// marks an optional-binding continuation written as a bare
// `pattern = initializer`, with no `let`/`var` keyword of its own
// (spec.md §4.4).
type BindingKind string

const (
	BindingVar   BindingKind = "var"
	BindingLet   BindingKind = "let"
	BindingPlain BindingKind = "plain"
)

// ValueBindingPattern is `var pattern` or `let pattern`.
type ValueBindingPattern struct {
	Span    Span
	Kind    BindingKind
	Wrapped Pattern
}

func (ValueBindingPattern) node()        {}
func (ValueBindingPattern) patternNode() {}

// IsTypePattern is `is T`: matches a value whose dynamic type is T.
type IsTypePattern struct {
	Span Span
	Type Type
}

func (IsTypePattern) node()        {}
func (IsTypePattern) patternNode() {}

// AsTypePattern is `subpattern as T`.
type AsTypePattern struct {
	Span    Span
	Wrapped Pattern
	Type    Type
}

func (AsTypePattern) node()        {}
func (AsTypePattern) patternNode() {}

// EnumCasePattern is `[Type.]caseName[(subpatterns...)]`, resolving spec.md
// §9 open question #1 for the enum-case pattern production.
type EnumCasePattern struct {
	Span         Span
	TypeName     string // qualifying type name, "" if the case is written bare (`.foo`)
	CaseName     string
	Associated   []TuplePatternElement // nil if the case carries no payload
}

func (EnumCasePattern) node()        {}
func (EnumCasePattern) patternNode() {}
