// Package config is the single source of truth for the lexical and grammar
// tables the parser consults: operator character classes, default operator
// precedence/associativity, platform names for #available/#if, and
// CLI-level constants. Pure data, no parsing behavior.
package config

import "golang.org/x/exp/slices"

// Associativity mirrors the {left, right, none} set spec.md §3 names for
// infix operator declarations.
type Associativity string

const (
	AssocLeft  Associativity = "left"
	AssocRight Associativity = "right"
	AssocNone  Associativity = "none"
)

// DefaultPrecedence is Swift's precedence for an infix operator declaration
// that omits an explicit `precedence` clause.
const DefaultPrecedence = 100

// MinPrecedence and MaxPrecedence bound the legal range for an infix
// operator's declared precedence (spec.md §3 invariant).
const (
	MinPrecedence = 0
	MaxPrecedence = 255
)

// runeRange is an inclusive [Lo, Hi] codepoint interval.
type runeRange struct{ Lo, Hi rune }

// operatorHeadRanges and operatorTailRanges implement the Unicode
// operator-character classes of spec.md §4.2. ASCII operator characters are
// checked separately (asciiOperatorChars); these tables hold only the
// non-ASCII blocks, kept sorted by Lo so lookups can binary-search.
var operatorHeadRanges = []runeRange{
	{0x00A1, 0x00A7},
	{0x00A9, 0x00A9},
	{0x00AB, 0x00AB},
	{0x00AC, 0x00AC},
	{0x00AE, 0x00AE},
	{0x00B0, 0x00B1},
	{0x00B6, 0x00B6},
	{0x00BB, 0x00BB},
	{0x00BF, 0x00BF},
	{0x00D7, 0x00D7},
	{0x00F7, 0x00F7},
	{0x2016, 0x2017},
	{0x2020, 0x2027},
	{0x2030, 0x203E},
	{0x2041, 0x2053},
	{0x2055, 0x205E},
	{0x2190, 0x23FF},
	{0x2500, 0x2775},
	{0x2794, 0x2BFF},
	{0x2E00, 0x2E7F},
	{0x3001, 0x3003},
	{0x3008, 0x3030},
}

// operatorTailRanges additionally includes the combining-mark blocks that
// may continue (but not start) an operator.
var operatorTailRanges = append(append([]runeRange{}, operatorHeadRanges...), []runeRange{
	{0x0300, 0x036F},
	{0x1DC0, 0x1DFF},
	{0x20D0, 0x20FF},
	{0xFE00, 0xFE0F},
	{0xFE20, 0xFE2F},
	{0xE0100, 0xE01FF},
}...)

func init() {
	slices.SortFunc(operatorHeadRanges, func(a, b runeRange) int { return int(a.Lo - b.Lo) })
	slices.SortFunc(operatorTailRanges, func(a, b runeRange) int { return int(a.Lo - b.Lo) })
}

// asciiOperatorChars are the ASCII characters spec.md §4.2 admits into both
// the head and tail operator classes.
const asciiOperatorChars = "=/-+!*%<>&|^~?"

// inRanges does a binary search over table, which init() keeps sorted by Lo:
// it finds the last range starting at or before r, then checks containment.
func inRanges(r rune, table []runeRange) bool {
	i, _ := slices.BinarySearchFunc(table, r, func(rr runeRange, target rune) int {
		return int(rr.Lo - target)
	})
	if i < len(table) && table[i].Lo == r {
		return true
	}
	return i > 0 && r <= table[i-1].Hi
}

// IsOperatorHead reports whether r may start an operator lexeme.
func IsOperatorHead(r rune) bool {
	if r < 128 {
		return containsByte(asciiOperatorChars, byte(r))
	}
	return inRanges(r, operatorHeadRanges)
}

// IsOperatorTail reports whether r may continue an operator lexeme already
// underway (the tail class is a superset of the head class).
func IsOperatorTail(r rune) bool {
	if r < 128 {
		return containsByte(asciiOperatorChars, byte(r))
	}
	return inRanges(r, operatorTailRanges)
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

// BuiltinOperator describes one of Swift's standard-library infix/prefix/
// postfix operators: the symbol a user-written `operator` declaration would
// otherwise have to restate, carried here as reference data a caller can
// consult (the parser itself only records what the source text declares).
type BuiltinOperator struct {
	Symbol      string
	Precedence  int
	Associativity
	Fixity string // "prefix", "postfix", "infix"
}

var BuiltinOperators = []BuiltinOperator{
	{Symbol: "=", Precedence: 90, Associativity: AssocRight, Fixity: "infix"},
	{Symbol: "?:", Precedence: 100, Associativity: AssocRight, Fixity: "infix"},
	{Symbol: "||", Precedence: 110, Associativity: AssocLeft, Fixity: "infix"},
	{Symbol: "&&", Precedence: 120, Associativity: AssocLeft, Fixity: "infix"},
	{Symbol: "<", Precedence: 130, Associativity: AssocNone, Fixity: "infix"},
	{Symbol: "<=", Precedence: 130, Associativity: AssocNone, Fixity: "infix"},
	{Symbol: ">", Precedence: 130, Associativity: AssocNone, Fixity: "infix"},
	{Symbol: ">=", Precedence: 130, Associativity: AssocNone, Fixity: "infix"},
	{Symbol: "==", Precedence: 130, Associativity: AssocNone, Fixity: "infix"},
	{Symbol: "!=", Precedence: 130, Associativity: AssocNone, Fixity: "infix"},
	{Symbol: "??", Precedence: 131, Associativity: AssocRight, Fixity: "infix"},
	{Symbol: "...", Precedence: 135, Associativity: AssocNone, Fixity: "infix"},
	{Symbol: "..<", Precedence: 135, Associativity: AssocNone, Fixity: "infix"},
	{Symbol: "+", Precedence: 140, Associativity: AssocLeft, Fixity: "infix"},
	{Symbol: "-", Precedence: 140, Associativity: AssocLeft, Fixity: "infix"},
	{Symbol: "&+", Precedence: 140, Associativity: AssocLeft, Fixity: "infix"},
	{Symbol: "&-", Precedence: 140, Associativity: AssocLeft, Fixity: "infix"},
	{Symbol: "|", Precedence: 140, Associativity: AssocLeft, Fixity: "infix"},
	{Symbol: "^", Precedence: 140, Associativity: AssocLeft, Fixity: "infix"},
	{Symbol: "*", Precedence: 150, Associativity: AssocLeft, Fixity: "infix"},
	{Symbol: "/", Precedence: 150, Associativity: AssocLeft, Fixity: "infix"},
	{Symbol: "%", Precedence: 150, Associativity: AssocLeft, Fixity: "infix"},
	{Symbol: "&", Precedence: 150, Associativity: AssocLeft, Fixity: "infix"},
	{Symbol: "&*", Precedence: 150, Associativity: AssocLeft, Fixity: "infix"},
	{Symbol: "<<", Precedence: 160, Associativity: AssocNone, Fixity: "infix"},
	{Symbol: ">>", Precedence: 160, Associativity: AssocNone, Fixity: "infix"},
	{Symbol: "-", Precedence: 0, Associativity: AssocNone, Fixity: "prefix"},
	{Symbol: "!", Precedence: 0, Associativity: AssocNone, Fixity: "prefix"},
	{Symbol: "~", Precedence: 0, Associativity: AssocNone, Fixity: "prefix"},
	{Symbol: "&", Precedence: 0, Associativity: AssocNone, Fixity: "prefix"},
}

func init() {
	slices.SortFunc(BuiltinOperators, func(a, b BuiltinOperator) int {
		if a.Symbol != b.Symbol {
			if a.Symbol < b.Symbol {
				return -1
			}
			return 1
		}
		return 0
	})
}

// LookupBuiltinOperator returns the reference entry for symbol in the given
// fixity, if Swift predefines one.
func LookupBuiltinOperator(symbol, fixity string) (BuiltinOperator, bool) {
	for _, op := range BuiltinOperators {
		if op.Symbol == symbol && op.Fixity == fixity {
			return op, true
		}
	}
	return BuiltinOperator{}, false
}
