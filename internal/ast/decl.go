package ast

// Declaration is implemented by every declaration variant spec.md §3 names.
type Declaration interface {
	Node
	declNode()
}

// GenericParameter is one entry of a generic-parameter clause `<T: C, ...>`.
type GenericParameter struct {
	Name       string
	Constraint Type // nil if unconstrained
}

// GenericParameterClause is the optional `<...>` on a type or function
// declaration.
type GenericParameterClause struct {
	Span       Span
	Parameters []GenericParameter
}

// TypeInheritanceClause is the `: T1, T2, ...` list after a nominal type
// name, used by enum raw-value declarations, struct/class/protocol
// conformance lists, and extensions.
type TypeInheritanceClause struct {
	Span  Span
	Types []Type
}

// ImportDeclaration is `import [kind] path.path...`.
type ImportDeclaration struct {
	Span Span
	Kind string // "", "typealias", "struct", "class", "enum", "protocol", "var", "func"
	Path []string
}

func (ImportDeclaration) node()     {}
func (ImportDeclaration) declNode() {}

// PatternInitializer is one `pattern [= initializer]` element of a `let`/
// `var` declaration's pattern-initializer-list form.
type PatternInitializer struct {
	Pattern     Pattern
	Initializer *Expression // nil if absent
}

// ConstantDeclaration is `let pattern-initializer-list`.
type ConstantDeclaration struct {
	Span         Span
	Attributes   []Attribute
	Modifiers    []string
	Initializers []PatternInitializer
}

func (ConstantDeclaration) node()     {}
func (ConstantDeclaration) declNode() {}

// VariableKind distinguishes the four `var` declaration shapes spec.md §3
// names: a plain pattern-initializer list, a stored property with an
// explicit type annotation, a computed property with getter/setter, and an
// observed property with willSet/didSet.
type VariableKind string

const (
	VariablePatternInitializer VariableKind = "pattern_initializer"
	VariableStored             VariableKind = "stored"
	VariableComputed           VariableKind = "computed"
	VariableObserved           VariableKind = "observed"
)

// CodeBlock is a brace-delimited statement list, used for getters,
// function bodies, and other block-bodied constructs.
type CodeBlock struct {
	Span       Span
	Statements []Statement
}

// VariableDeclaration covers all four `var` shapes; which fields are
// populated depends on Kind.
type VariableDeclaration struct {
	Span       Span
	Attributes []Attribute
	Modifiers  []string
	Kind       VariableKind

	// VariablePatternInitializer
	Initializers []PatternInitializer

	// VariableStored / VariableComputed / VariableObserved: single name +
	// type-annotation form.
	Name           string
	TypeAnnotation Type
	Initializer    *Expression // optional initial value of VariableStored or VariableObserved

	// VariableComputed
	Getter     *CodeBlock // nil if absent
	Setter     *CodeBlock // nil if absent
	SetterName string     // explicit `set(name)` parameter name, "" if default

	// VariableObserved
	WillSet       *CodeBlock
	WillSetName   string
	DidSet        *CodeBlock
	DidSetName    string
}

func (VariableDeclaration) node()     {}
func (VariableDeclaration) declNode() {}

// TypeAliasDeclaration is `typealias Name = Type`.
type TypeAliasDeclaration struct {
	Span Span
	Name string
	Type Type
}

func (TypeAliasDeclaration) node()     {}
func (TypeAliasDeclaration) declNode() {}

// FunctionDeclaration is `func name-or-operator<generics>(params)(params)... throws? -> Result? body?`.
// Swift functions curry across multiple parameter clauses; ParameterClauses
// preserves that list in declaration order.
type FunctionDeclaration struct {
	Span             Span
	Attributes       []Attribute
	Modifiers        []string
	Name             string // may be an operator symbol for operator-function definitions
	GenericParams    *GenericParameterClause
	ParameterClauses []ParameterClause
	Throws           ThrowsMarker
	Result           Type       // nil if absent
	Body             *CodeBlock // nil for protocol-requirement signatures
}

func (FunctionDeclaration) node()     {}
func (FunctionDeclaration) declNode() {}

// EnumStyle distinguishes union-style (cases carry optional tuple
// payloads) from raw-value-style (cases optionally assign a literal of the
// inherited raw type) enums.
type EnumStyle string

const (
	EnumUnion EnumStyle = "union"
	EnumRaw   EnumStyle = "raw"
)

// EnumCase is one `case name(...)` or `case name = literal` element.
type EnumCase struct {
	Name    string
	Payload *TupleType      // union-style associated-value tuple, nil if none
	RawValue Literal        // raw-value-style case assignment, nil if none
}

// EnumDeclaration covers both union-style and raw-value-style enums;
// Style selects which of Cases' Payload/RawValue fields are meaningful.
type EnumDeclaration struct {
	Span          Span
	Attributes    []Attribute
	Modifiers     []string
	Indirect      bool
	Name          string
	GenericParams *GenericParameterClause
	Inheritance   *TypeInheritanceClause // the raw type, for EnumRaw
	Style         EnumStyle
	Cases         []EnumCase
	Members       []Declaration // nested methods/properties/etc.
}

func (EnumDeclaration) node()     {}
func (EnumDeclaration) declNode() {}

// StructDeclaration is `struct Name<generics>: Inheritance { members }`.
type StructDeclaration struct {
	Span          Span
	Attributes    []Attribute
	Modifiers     []string
	Name          string
	GenericParams *GenericParameterClause
	Inheritance   *TypeInheritanceClause
	Members       []Declaration
}

func (StructDeclaration) node()     {}
func (StructDeclaration) declNode() {}

// ClassDeclaration is `class Name<generics>: Inheritance { members }`.
type ClassDeclaration struct {
	Span          Span
	Attributes    []Attribute
	Modifiers     []string
	Name          string
	GenericParams *GenericParameterClause
	Inheritance   *TypeInheritanceClause
	Members       []Declaration
}

func (ClassDeclaration) node()     {}
func (ClassDeclaration) declNode() {}

// ProtocolDeclaration's members are property, method, initializer, and
// associated-type requirements.
type ProtocolDeclaration struct {
	Span        Span
	Attributes  []Attribute
	Modifiers   []string
	Name        string
	Inheritance *TypeInheritanceClause
	Members     []Declaration
}

func (ProtocolDeclaration) node()     {}
func (ProtocolDeclaration) declNode() {}

// InitializerKind distinguishes `init`, `init?`, `init!`.
type InitializerKind string

const (
	InitPlain    InitializerKind = "init"
	InitOptional InitializerKind = "init?"
	InitForced   InitializerKind = "init!"
)

// InitializerDeclaration is `init?<generics>(params) throws? body`.
type InitializerDeclaration struct {
	Span          Span
	Attributes    []Attribute
	Modifiers     []string
	Kind          InitializerKind
	GenericParams *GenericParameterClause
	Parameters    ParameterClause
	Throws        ThrowsMarker
	Body          *CodeBlock // nil for protocol-requirement signatures
}

func (InitializerDeclaration) node()     {}
func (InitializerDeclaration) declNode() {}

// DeinitializerDeclaration is `deinit { body }`.
type DeinitializerDeclaration struct {
	Span Span
	Body *CodeBlock
}

func (DeinitializerDeclaration) node()     {}
func (DeinitializerDeclaration) declNode() {}

// ExtensionDeclaration is `extension Name: Inheritance { members }`.
type ExtensionDeclaration struct {
	Span        Span
	Name        string
	Inheritance *TypeInheritanceClause
	Members     []Declaration
}

func (ExtensionDeclaration) node()     {}
func (ExtensionDeclaration) declNode() {}

// SubscriptDeclaration is `subscript(params) -> Result { getter/setter }`.
type SubscriptDeclaration struct {
	Span       Span
	Attributes []Attribute
	Modifiers  []string
	Parameters ParameterClause
	Result     Type
	Getter     *CodeBlock
	Setter     *CodeBlock
	SetterName string
}

func (SubscriptDeclaration) node()     {}
func (SubscriptDeclaration) declNode() {}

// OperatorFixity distinguishes prefix/postfix/infix operator declarations.
type OperatorFixity string

const (
	FixityPrefix  OperatorFixity = "prefix"
	FixityPostfix OperatorFixity = "postfix"
	FixityInfix   OperatorFixity = "infix"
)

// OperatorDeclaration is `prefix|postfix|infix operator <op> { ... }`. The
// precedence/associativity clauses are only meaningful for FixityInfix;
// spec.md §3 invariant requires Precedence in 0..255 when set.
type OperatorDeclaration struct {
	Span          Span
	Fixity        OperatorFixity
	Symbol        string
	Precedence    *int // nil if the infix body omitted a `precedence` clause
	Associativity Associativity
}

func (OperatorDeclaration) node()     {}
func (OperatorDeclaration) declNode() {}

// Associativity mirrors config.Associativity's value set for the AST layer,
// kept distinct so ast has no dependency on the config package.
type Associativity string

const (
	AssocUnset Associativity = ""
	AssocLeft  Associativity = "left"
	AssocRight Associativity = "right"
	AssocNone  Associativity = "none"
)
