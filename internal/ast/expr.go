package ast

// TryKind distinguishes the three forms of the leading/assignment/
// conditional `try` marker: absent, `try`, `try?`, `try!`.
type TryKind string

const (
	TryNone     TryKind = ""
	TryPlain    TryKind = "try"
	TryOptional TryKind = "try?"
	TryForced   TryKind = "try!"
)

// Expression is spec.md §3's flat-tail form: an optional try marker, a seed
// PrefixExpression, and an ordered list of binary tails. Precedence and
// associativity are intentionally not resolved here (spec.md §1/§9): this
// list preserves surface order only, deferred to a later pass this module
// does not implement.
type Expression struct {
	Span   Span
	Try    TryKind
	Prefix *PrefixExpression
	Tails  []BinaryTail
}

func (Expression) node() {}

// BinaryTail is one element that can follow a PrefixExpression inside an
// Expression's tail list.
type BinaryTail interface {
	Node
	tailNode()
}

// OperatorTail is an ordinary infix-operator application.
type OperatorTail struct {
	Span     Span
	Operator string
	Right    *PrefixExpression
}

func (OperatorTail) node()     {}
func (OperatorTail) tailNode() {}

// AssignmentTail is a standalone `=`, distinguished lexically from `==`,
// `=>`, etc. by requiring the `=` not be followed by another operator
// character.
type AssignmentTail struct {
	Span  Span
	Try   TryKind
	Right *PrefixExpression
}

func (AssignmentTail) node()     {}
func (AssignmentTail) tailNode() {}

// ConditionalTail is the ternary `? try? then :` tail; Right is the else
// branch, continuing the flat-tail chain.
type ConditionalTail struct {
	Span  Span
	Then  *Expression
	Right *PrefixExpression
}

func (ConditionalTail) node()     {}
func (ConditionalTail) tailNode() {}

// TypeCastingOp distinguishes `is`, `as`, `as?`, `as!`.
type TypeCastingOp string

const (
	CastIs       TypeCastingOp = "is"
	CastAs       TypeCastingOp = "as"
	CastAsOpt    TypeCastingOp = "as?"
	CastAsForced TypeCastingOp = "as!"
)

// TypeCastingTail is `is T` / `as T` / `as? T` / `as! T`.
type TypeCastingTail struct {
	Span Span
	Op   TypeCastingOp
	Type Type
}

func (TypeCastingTail) node()     {}
func (TypeCastingTail) tailNode() {}

// PrefixExpression is either the in-out form `&identifier`, or an optional
// prefix operator applied to a PostfixExpression.
type PrefixExpression struct {
	Span Span

	InOutIdentifier string // non-empty for the `&identifier` form; Operator/Postfix unused then

	Operator string // "" if no prefix operator
	Postfix  *PostfixExpression
}

func (PrefixExpression) node() {}

// PostfixExpression is a left-associative spine: a PrimaryExpression base
// followed by zero or more suffixes (spec.md §9's seed-then-suffixes
// transformation of Swift's left-recursive postfix grammar).
type PostfixExpression struct {
	Span     Span
	Base     PrimaryExpression
	Suffixes []PostfixSuffix
}

func (PostfixExpression) node() {}

// PostfixSuffix is implemented by every suffix PostfixExpression can chain.
type PostfixSuffix interface {
	Node
	suffixNode()
}

// PostfixOperatorSuffix applies a postfix operator, guarded by "not
// followed by a primary" so the surrounding binary layer still sees a
// lexically-identical operator as infix when appropriate.
type PostfixOperatorSuffix struct {
	Span     Span
	Operator string
}

func (PostfixOperatorSuffix) node()        {}
func (PostfixOperatorSuffix) suffixNode() {}

// ExplicitMemberSuffix is `.identifier` or `.digits`, with an optional
// generic-argument clause on an identifier member.
type ExplicitMemberSuffix struct {
	Span        Span
	Name        string // identifier, or the digit run's text for tuple-index access
	IsDigit     bool
	GenericArgs []Type
}

func (ExplicitMemberSuffix) node()        {}
func (ExplicitMemberSuffix) suffixNode() {}

// CallArgument is one element of a parenthesized argument list or a
// subscript argument list; Label is "" when unlabeled.
type CallArgument struct {
	Label string
	Value *Expression
}

// FunctionCallSuffix is a parenthesized argument list with an optional
// trailing closure.
type FunctionCallSuffix struct {
	Span            Span
	Arguments       []CallArgument
	TrailingClosure *Closure // nil if absent
}

func (FunctionCallSuffix) node()        {}
func (FunctionCallSuffix) suffixNode() {}

// SubscriptSuffix is `[arg, ...]`.
type SubscriptSuffix struct {
	Span      Span
	Arguments []CallArgument
}

func (SubscriptSuffix) node()        {}
func (SubscriptSuffix) suffixNode() {}

// ForcedValueSuffix is `!`.
type ForcedValueSuffix struct{ Span Span }

func (ForcedValueSuffix) node()        {}
func (ForcedValueSuffix) suffixNode() {}

// OptionalChainingSuffix is `?`.
type OptionalChainingSuffix struct{ Span Span }

func (OptionalChainingSuffix) node()        {}
func (OptionalChainingSuffix) suffixNode() {}

// DotSelfSuffix is `.self`.
type DotSelfSuffix struct{ Span Span }

func (DotSelfSuffix) node()        {}
func (DotSelfSuffix) suffixNode() {}

// DotDynamicTypeSuffix is `.dynamicType`.
type DotDynamicTypeSuffix struct{ Span Span }

func (DotDynamicTypeSuffix) node()        {}
func (DotDynamicTypeSuffix) suffixNode() {}

// DotInitSuffix is `.init`.
type DotInitSuffix struct{ Span Span }

func (DotInitSuffix) node()        {}
func (DotInitSuffix) suffixNode() {}

// PrimaryExpression is implemented by every primary-expression variant.
type PrimaryExpression interface {
	Node
	primaryNode()
}

// IdentifierExpression is a bare name with an optional generic-argument
// clause.
type IdentifierExpression struct {
	Span        Span
	Name        string
	GenericArgs []Type
}

func (IdentifierExpression) node()        {}
func (IdentifierExpression) primaryNode() {}

// LiteralExpression wraps a Literal in primary-expression position.
type LiteralExpression struct {
	Span    Span
	Literal Literal
}

func (LiteralExpression) node()        {}
func (LiteralExpression) primaryNode() {}

// SelfKind distinguishes the four `self` primary-expression forms.
type SelfKind string

const (
	SelfBare      SelfKind = "self"
	SelfMember    SelfKind = "self.member"
	SelfSubscript SelfKind = "self.subscript"
	SelfInit      SelfKind = "self.init"
)

// SelfExpression covers `self`, `self.member`, `self[args]`, `self.init`.
type SelfExpression struct {
	Span      Span
	Kind      SelfKind
	Member    string         // set for SelfMember
	Arguments []CallArgument // set for SelfSubscript
}

func (SelfExpression) node()        {}
func (SelfExpression) primaryNode() {}

// SuperKind distinguishes the three `super` primary-expression forms.
type SuperKind string

const (
	SuperMember    SuperKind = "super.member"
	SuperSubscript SuperKind = "super.subscript"
	SuperInit      SuperKind = "super.init"
)

// SuperExpression covers `super.member`, `super[args]`, `super.init`.
type SuperExpression struct {
	Span      Span
	Kind      SuperKind
	Member    string
	Arguments []CallArgument
}

func (SuperExpression) node()        {}
func (SuperExpression) primaryNode() {}

// ClosureExpression wraps a Closure in primary-expression position.
type ClosureExpression struct {
	Span    Span
	Closure *Closure
}

func (ClosureExpression) node()        {}
func (ClosureExpression) primaryNode() {}

// ParenthesizedExpression is `(e1, label: e2, ...)`; a single unlabeled
// element is a plain parenthesized expression.
type ParenthesizedExpression struct {
	Span     Span
	Elements []CallArgument
}

func (ParenthesizedExpression) node()        {}
func (ParenthesizedExpression) primaryNode() {}

// ImplicitMemberExpression is `.identifier`, resolved against an inferred
// type at a later stage this module does not implement.
type ImplicitMemberExpression struct {
	Span Span
	Name string
}

func (ImplicitMemberExpression) node()        {}
func (ImplicitMemberExpression) primaryNode() {}

// WildcardExpression is `_` in expression position.
type WildcardExpression struct{ Span Span }

func (WildcardExpression) node()        {}
func (WildcardExpression) primaryNode() {}

// Literal is implemented by every literal-expression variant.
type Literal interface {
	Node
	literalNode()
}

// NumericLiteral preserves its source text verbatim, including radix
// prefix, digit separators, and a leading `-` when the numeric-literal
// layer accepted one (spec.md §3 invariant).
type NumericLiteral struct {
	Span Span
	Text string
}

func (NumericLiteral) node()        {}
func (NumericLiteral) literalNode() {}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Span  Span
	Value bool
}

func (BooleanLiteral) node()        {}
func (BooleanLiteral) literalNode() {}

// NilLiteral is `nil`.
type NilLiteral struct{ Span Span }

func (NilLiteral) node()        {}
func (NilLiteral) literalNode() {}

// StringChunk is one element of a StringLiteral's ordered chunk list.
type StringChunk interface {
	chunkNode()
}

// TextChunk is a run of literal text between escapes/interpolations, with
// escapes already resolved.
type TextChunk struct{ Text string }

func (TextChunk) chunkNode() {}

// ExprChunk is an embedded `\(expression)` interpolation splice.
type ExprChunk struct{ Expression *Expression }

func (ExprChunk) chunkNode() {}

// StringLiteral is static when Interpolated is false, in which case Chunks
// holds exactly one TextChunk; otherwise Chunks alternates TextChunk and
// ExprChunk in source order (spec.md §3 invariant).
type StringLiteral struct {
	Span         Span
	Interpolated bool
	Chunks       []StringChunk
}

func (StringLiteral) node()        {}
func (StringLiteral) literalNode() {}
