package parser

import (
	"strings"

	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/lexer"
)

// parseAttributes parses zero or more `@name(...)` attributes.
func parseAttributes(c *cursor.Cursor) ([]ast.Attribute, *diagnostics.ParseError) {
	var attrs []ast.Attribute
	for {
		before := c.Save()
		attr, err := parseAttribute(c)
		if err != nil {
			c.Restore(before)
			return attrs, nil
		}
		attrs = append(attrs, attr)
	}
}

// parseAttribute parses `@name` with an optional parenthesized
// balanced-token argument string, preserving the exact surface text
// between the parens (spec.md §3/§4.4).
func parseAttribute(c *cursor.Cursor) (ast.Attribute, *diagnostics.ParseError) {
	start := c.Position()
	if err := lexer.SkipTrivia(c); err != nil {
		return ast.Attribute{}, err
	}
	r, ok := c.Peek()
	if !ok || r != '@' {
		return ast.Attribute{}, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected '@'")
	}
	c.Advance()
	nameTok, err := lexer.Ident(c)
	if err != nil {
		return ast.Attribute{}, err
	}

	before := c.Save()
	if _, e := lexer.Punct("(")(c); e != nil {
		c.Restore(before)
		return ast.Attribute{Span: ast.Span{Start: start, End: c.Position()}, Name: nameTok.Lexeme}, nil
	}
	text, err := scanBalancedTokens(c)
	if err != nil {
		return ast.Attribute{}, err
	}
	return ast.Attribute{Span: ast.Span{Start: start, End: c.Position()}, Name: nameTok.Lexeme, Arguments: text}, nil
}

// scanBalancedTokens consumes source text up to (and including) the `)`
// that matches the `(` the caller already consumed, honoring nested `()`,
// `[]`, `{}`, and returns the raw text between the outer parens verbatim.
func scanBalancedTokens(c *cursor.Cursor) (string, *diagnostics.ParseError) {
	start := c.Position()
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		r, ok := c.Peek()
		if !ok {
			return "", diagnostics.NewParseError(diagnostics.KindSyntax, start, "unterminated attribute argument list")
		}
		switch r {
		case '(', '[', '{':
			depth++
			sb.WriteRune(r)
			c.Advance()
		case ')', ']', '}':
			depth--
			if depth > 0 {
				sb.WriteRune(r)
			}
			c.Advance()
		default:
			sb.WriteRune(r)
			c.Advance()
		}
	}
	return sb.String(), nil
}

// parseModifiers parses zero or more declaration modifiers from the
// contextual-keyword set (mutating, nonmutating, override, required,
// final, dynamic, convenience, optional, lazy, weak, unowned, indirect,
// static, class, prefix, postfix, infix) or an access-level word (public,
// private, internal), collecting each verbatim for the grammar layer's
// declaration constructors to interpret.
var declarationModifierWords = []string{
	"mutating", "nonmutating", "override", "required", "final", "dynamic",
	"convenience", "optional", "lazy", "weak", "unowned", "indirect",
	"static", "class", "prefix", "postfix", "infix",
	"public", "private", "internal",
}

func parseModifiers(c *cursor.Cursor) []string {
	var mods []string
	for {
		matched := false
		for _, word := range declarationModifierWords {
			before := c.Save()
			if _, e := lexer.Keyword(word)(c); e == nil {
				// `class Name` opens a class declaration and `prefix operator`
				// an operator declaration; the word is not a modifier there.
				if word == "class" || word == "prefix" || word == "postfix" || word == "infix" {
					next := lexer.Keyword("operator")
					if word == "class" {
						next = lexer.Ident
					}
					if _, e := next(c); e == nil {
						c.Restore(before)
						break
					}
				}
				mods = append(mods, word)
				matched = true
				break
			}
			c.Restore(before)
		}
		if !matched {
			return mods
		}
	}
}
