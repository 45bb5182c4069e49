package ast

// Type is implemented by every type-syntax variant spec.md §3/§4.4 names:
// identifier paths, tuples, arrays, dictionaries, function types, the
// optional/IUO suffixes, metatypes, and protocol composition.
type Type interface {
	Node
	typeNode()
}

// TypeIdentifierComponent is one dotted segment of a TypeIdentifier, e.g.
// the `Dictionary` in `Swift.Dictionary<String, Int>`.
type TypeIdentifierComponent struct {
	Name         string
	GenericArgs  []Type // nil if this component carries no <...> clause
}

// TypeIdentifier is a dotted path of name+generic-argument components.
type TypeIdentifier struct {
	Span       Span
	Components []TypeIdentifierComponent
}

func (TypeIdentifier) node()     {}
func (TypeIdentifier) typeNode() {}

// TupleTypeElement is one element of a TupleType; Name is empty for an
// anonymous element.
type TupleTypeElement struct {
	Attributes []Attribute
	InOut      bool
	Name       string // empty when anonymous
	Type       Type
}

// TupleType is `(...)`, with an optional trailing `...` variadic marker.
type TupleType struct {
	Span     Span
	Elements []TupleTypeElement
	Variadic bool
}

func (TupleType) node()     {}
func (TupleType) typeNode() {}

// ArrayType is `[T]`.
type ArrayType struct {
	Span    Span
	Element Type
}

func (ArrayType) node()     {}
func (ArrayType) typeNode() {}

// DictionaryType is `[K:V]`.
type DictionaryType struct {
	Span  Span
	Key   Type
	Value Type
}

func (DictionaryType) node()     {}
func (DictionaryType) typeNode() {}

// ThrowsMarker represents spec.md open question #4: a free string today
// ("", "throws", or "rethrows") rather than a three-value enum, matching
// what the source models; kept as a named type so call sites read clearly
// and a future enum conversion only touches this declaration.
type ThrowsMarker string

const (
	ThrowsNone     ThrowsMarker = ""
	ThrowsThrows   ThrowsMarker = "throws"
	ThrowsRethrows ThrowsMarker = "rethrows"
)

// FunctionType is `A throws? -> B`, right-associative.
type FunctionType struct {
	Span       Span
	Parameter  Type
	Throws     ThrowsMarker
	Result     Type
}

func (FunctionType) node()     {}
func (FunctionType) typeNode() {}

// OptionalType is `T?`.
type OptionalType struct {
	Span    Span
	Wrapped Type
}

func (OptionalType) node()     {}
func (OptionalType) typeNode() {}

// ImplicitlyUnwrappedOptionalType is `T!`.
type ImplicitlyUnwrappedOptionalType struct {
	Span    Span
	Wrapped Type
}

func (ImplicitlyUnwrappedOptionalType) node()     {}
func (ImplicitlyUnwrappedOptionalType) typeNode() {}

// MetatypeKind distinguishes `.Type` from `.Protocol`.
type MetatypeKind string

const (
	MetatypeKindType     MetatypeKind = "Type"
	MetatypeKindProtocol MetatypeKind = "Protocol"
)

// MetatypeType is `T.Type` or `T.Protocol`.
type MetatypeType struct {
	Span Span
	Base Type
	Kind MetatypeKind
}

func (MetatypeType) node()     {}
func (MetatypeType) typeNode() {}

// ProtocolCompositionType is `protocol<T1, T2, ...>`.
type ProtocolCompositionType struct {
	Span     Span
	Protocols []Type
}

func (ProtocolCompositionType) node()     {}
func (ProtocolCompositionType) typeNode() {}

// Attribute is `@name` with an optional balanced-token argument string that
// preserves the exact surface text between the parens.
type Attribute struct {
	Span      Span
	Name      string
	Arguments string // raw balanced-token text, "" if no argument list
}

func (Attribute) node() {}
