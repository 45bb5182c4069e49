package ast

// Parameter is one entry of a parameter clause, shared by function
// declarations, initializers, subscripts, and closure signatures.
type Parameter struct {
	Span          Span
	ExternalName  string // "" if same as Name, or if the parameter has no external name (`_`)
	Name          string
	TypeAnnotation Type
	Default       *Expression // nil if absent
	Variadic      bool
	InOut         bool
}

// ParameterClause is one curried `(...)` group of a function/initializer/
// subscript declaration, or a closure signature's parameter-clause form.
type ParameterClause struct {
	Span       Span
	Parameters []Parameter
}

// CaptureSpecifier is the optional storage qualifier on a closure capture.
type CaptureSpecifier string

const (
	CaptureNone           CaptureSpecifier = ""
	CaptureWeak           CaptureSpecifier = "weak"
	CaptureUnowned        CaptureSpecifier = "unowned"
	CaptureUnownedSafe    CaptureSpecifier = "unowned(safe)"
	CaptureUnownedUnsafe  CaptureSpecifier = "unowned(unsafe)"
)

// Capture is one element of a closure's capture list.
type Capture struct {
	Specifier  CaptureSpecifier
	Expression *Expression
}

// ClosureSignature is one of the five shapes spec.md §3/§4.4 names:
// capture list alone; parameter clause (+ optional result); identifier
// list (+ optional result); capture list + parameter clause (+ result);
// capture list + identifier list (+ result). Exactly one of Parameters/
// Identifiers is populated when either is present.
type ClosureSignature struct {
	Span        Span
	Captures    []Capture
	Parameters  []Parameter // nil if using the identifier-list form
	Identifiers []string    // nil if using the parameter-clause form
	Result      Type        // nil if absent
}

// Closure is `{ [signature in] statements }`.
type Closure struct {
	Span      Span
	Signature *ClosureSignature // nil if the closure has no signature
	Body      []Statement
}

func (Closure) node() {}
