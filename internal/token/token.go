// Package token defines the lexical token vocabulary shared by the cursor,
// lexer, and grammar layer.
package token

import "fmt"

// Kind classifies a token. Unlike a conventional fixed-vocabulary lexer,
// most punctuation and every operator share the Operator/Punct kinds; the
// grammar layer (not the lexer) decides what an operator lexeme means in
// context, per spec.md's operator-precedence deferral.
type Kind string

const (
	ILLEGAL Kind = "ILLEGAL"
	EOF     Kind = "EOF"

	IdentLower Kind = "IDENT" // lowercase-led identifier
	IdentUpper Kind = "TYPE_IDENT" // uppercase-led identifier (types, enum cases by convention)

	IntegerLiteral Kind = "INTEGER_LITERAL"
	FloatLiteral   Kind = "FLOAT_LITERAL"
	StringLiteral  Kind = "STRING_LITERAL"

	Operator Kind = "OPERATOR" // any run of operator-class characters
	Punct    Kind = "PUNCT"    // single-character delimiters: ( ) { } [ ] , : ; .

	Keyword Kind = "KEYWORD"

	PoundDirective Kind = "POUND" // #if #elseif #else #endif #available #line #selector etc.
)

// Token is an immutable lexical unit. Lexeme is the exact recognized source
// text (spec.md invariant: numeric literals keep their textual form verbatim).
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
	Offset int
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s %q", t.Line, t.Column, t.Kind, t.Lexeme)
}

func (t Token) IsKeyword(word string) bool {
	return t.Kind == Keyword && t.Lexeme == word
}

// Reserved word sets, per spec.md §4.2. A word in any of these sets cannot
// be recognized as a plain identifier; the grammar layer accepts a reserved
// word only through keyword(...) at the specific productions that name it.

// DeclarationKeywords introduce declarations.
var DeclarationKeywords = map[string]bool{
	"import": true, "let": true, "var": true, "typealias": true, "func": true,
	"enum": true, "struct": true, "class": true, "protocol": true, "init": true,
	"deinit": true, "extension": true, "subscript": true, "operator": true,
	"case": true, "default": true, "associatedtype": true,
}

// StatementKeywords introduce or belong to statements.
var StatementKeywords = map[string]bool{
	"for": true, "in": true, "while": true, "repeat": true, "if": true,
	"else": true, "guard": true, "switch": true, "break": true, "continue": true,
	"fallthrough": true, "return": true, "throw": true, "defer": true,
	"do": true, "catch": true, "where": true,
}

// ExprTypeKeywords are reserved in expression and type position.
var ExprTypeKeywords = map[string]bool{
	"self": true, "Self": true, "super": true, "true": true, "false": true,
	"nil": true, "try": true, "throws": true, "rethrows": true, "is": true,
	"as": true, "dynamicType": true, "catch": true,
	"__FILE__": true, "__LINE__": true, "__COLUMN__": true, "__FUNCTION__": true,
	"_": true, "Any": true, "Type": true, "Protocol": true, "inout": true,
}

// ContextualKeywords are reserved at the lexical level here (spec.md open
// question #4 in §9: the source treats them uniformly with true keywords
// rather than as context-sensitive identifiers).
var ContextualKeywords = map[string]bool{
	"get": true, "set": true, "willSet": true, "didSet": true,
	"weak": true, "unowned": true, "indirect": true, "lazy": true,
	"left": true, "right": true, "none": true,
	"precedence": true, "associativity": true,
	"prefix": true, "postfix": true, "infix": true,
	"mutating": true, "nonmutating": true, "override": true, "required": true,
	"final": true, "dynamic": true, "convenience": true, "optional": true,
	"static": true,
}

// IsReserved reports whether ident falls in any of the four reserved sets.
func IsReserved(ident string) bool {
	return DeclarationKeywords[ident] || StatementKeywords[ident] ||
		ExprTypeKeywords[ident] || ContextualKeywords[ident]
}
