package ast

// Condition is implemented by every element of a condition-clause list
// (spec.md §3/§4.4): case-condition, availability-condition, and
// optional-binding-condition.
type Condition interface {
	Node
	conditionNode()
}

// ConditionClause is the full predicate of an `if`/`while`/`guard`: an
// optional leading boolean expression followed by a comma-separated
// condition list (either of which may be empty only if the other is not).
type ConditionClause struct {
	Span          Span
	LeadingExpr   *Expression // nil if absent
	Conditions    []Condition
}

// CaseCondition is `case pattern = initializer where?`.
type CaseCondition struct {
	Span        Span
	Pattern     Pattern
	Initializer *Expression
	Where       *Expression // nil if absent
}

func (CaseCondition) node()          {}
func (CaseCondition) conditionNode() {}

// AvailabilityArgument is one entry of `#available(...)`: either a
// platform name with a dotted version, or the wildcard `*`.
type AvailabilityArgument struct {
	Wildcard bool
	Platform string // unused when Wildcard
	Version  []int  // 1-3 dotted components, unused when Wildcard
}

// AvailabilityCondition is `#available(arg, ...)`.
type AvailabilityCondition struct {
	Span      Span
	Arguments []AvailabilityArgument
}

func (AvailabilityCondition) node()          {}
func (AvailabilityCondition) conditionNode() {}

// OptionalBindingHead is one `let`/`var` binding in an optional-binding
// condition's head or continuation list.
type OptionalBindingHead struct {
	Kind        BindingKind
	Pattern     Pattern
	Initializer *Expression
}

// OptionalBindingCondition is `let pattern = initializer (, continuation)* where?`.
// Continuations may themselves be further bindings or plain
// patterns-with-initializers per spec.md §4.4.
type OptionalBindingCondition struct {
	Span          Span
	Head          OptionalBindingHead
	Continuations []OptionalBindingHead
	Where         *Expression // nil if absent
}

func (OptionalBindingCondition) node()          {}
func (OptionalBindingCondition) conditionNode() {}
