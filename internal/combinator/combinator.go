// Package combinator is the generic parser-combinator kernel spec.md §4.3
// names: a small set of primitives (seq, alt, try, many/some, sepBy,
// chainl1/chainr1, notFollowedBy, lookAhead) that every grammar-layer
// production in internal/parser is built from. Parsers here operate on
// internal/cursor directly so failure can always restore the cursor to
// where the attempt began.
package combinator

import (
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
)

// Parser produces a T from the cursor or a ParseError. A Parser must never
// leave the cursor advanced past a failure it reports: callers that want
// backtracking on failure should wrap with Try, but most leaf parsers here
// already restore on their own failure path.
type Parser[T any] func(c *cursor.Cursor) (T, *diagnostics.ParseError)

// Try runs p, restoring the cursor if it fails. Without Try, Alt only
// backtracks when the failed alternative consumed no input; Try widens that
// to "however much it consumed," at the cost of losing error-location
// precision for the attempt (the caller should still surface the furthest
// error seen across alternatives, not just the last).
func Try[T any](p Parser[T]) Parser[T] {
	return func(c *cursor.Cursor) (T, *diagnostics.ParseError) {
		cp := c.Save()
		v, err := p(c)
		if err != nil {
			c.Restore(cp)
		}
		return v, err
	}
}

// Map transforms a successful result.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c *cursor.Cursor) (U, *diagnostics.ParseError) {
		v, err := p(c)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	}
}

// MapErr transforms a successful result, allowing the transform itself to
// fail (e.g. converting an expression subtree to a pattern).
func MapErr[T, U any](p Parser[T], f func(T) (U, *diagnostics.ParseError)) Parser[U] {
	return func(c *cursor.Cursor) (U, *diagnostics.ParseError) {
		v, err := p(c)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v)
	}
}

// Alt tries each alternative in order, left-biased: the first to succeed
// wins. An alternative that fails after consuming input aborts the whole
// Alt with that error unless it was wrapped in Try; this is the
// Parsec-style "commit after consuming" rule spec.md §4.3 calls for.
// The error returned on total failure is whichever alternative's error
// reached the furthest offset, so diagnostics point at the most plausible
// failed branch rather than always the last one tried.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(c *cursor.Cursor) (T, *diagnostics.ParseError) {
		var zero T
		var furthest *diagnostics.ParseError
		start := c.Save()
		for _, p := range ps {
			v, err := p(c)
			if err == nil {
				return v, nil
			}
			furthest = diagnostics.Furthest(furthest, err)
			if c.Save() != start {
				// consumed input without Try: commit to this failure
				return zero, furthest
			}
		}
		return zero, furthest
	}
}

// Seq2 runs p1 then p2 in sequence, failing fast on the first error.
func Seq2[A, B, R any](p1 Parser[A], p2 Parser[B], combine func(A, B) R) Parser[R] {
	return func(c *cursor.Cursor) (R, *diagnostics.ParseError) {
		var zero R
		a, err := p1(c)
		if err != nil {
			return zero, err
		}
		b, err := p2(c)
		if err != nil {
			return zero, err
		}
		return combine(a, b), nil
	}
}

// Seq3 sequences three parsers.
func Seq3[A, B, C, R any](p1 Parser[A], p2 Parser[B], p3 Parser[C], combine func(A, B, C) R) Parser[R] {
	return func(c *cursor.Cursor) (R, *diagnostics.ParseError) {
		var zero R
		a, err := p1(c)
		if err != nil {
			return zero, err
		}
		b, err := p2(c)
		if err != nil {
			return zero, err
		}
		cc, err := p3(c)
		if err != nil {
			return zero, err
		}
		return combine(a, b, cc), nil
	}
}

// Many applies p zero or more times, stopping (without failing) at the
// first failure that consumed no input. A failure that consumed input
// propagates, matching Alt's commit rule.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(c *cursor.Cursor) ([]T, *diagnostics.ParseError) {
		var out []T
		for {
			before := c.Save()
			v, err := p(c)
			if err != nil {
				if c.Save() != before {
					return nil, err
				}
				c.Restore(before)
				return out, nil
			}
			out = append(out, v)
		}
	}
}

// Some applies p one or more times.
func Some[T any](p Parser[T]) Parser[[]T] {
	return func(c *cursor.Cursor) ([]T, *diagnostics.ParseError) {
		first, err := p(c)
		if err != nil {
			return nil, err
		}
		rest, err := Many(p)(c)
		if err != nil {
			return nil, err
		}
		return append([]T{first}, rest...), nil
	}
}

// SepBy parses zero or more occurrences of item separated by sep, without a
// trailing separator.
func SepBy[T, S any](item Parser[T], sep Parser[S]) Parser[[]T] {
	return func(c *cursor.Cursor) ([]T, *diagnostics.ParseError) {
		before := c.Save()
		first, err := item(c)
		if err != nil {
			c.Restore(before)
			return nil, nil
		}
		out := []T{first}
		for {
			beforeSep := c.Save()
			_, err := sep(c)
			if err != nil {
				c.Restore(beforeSep)
				return out, nil
			}
			v, err := item(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
}

// SepBy1 is SepBy requiring at least one item.
func SepBy1[T, S any](item Parser[T], sep Parser[S]) Parser[[]T] {
	return func(c *cursor.Cursor) ([]T, *diagnostics.ParseError) {
		out, err := SepBy(item, sep)(c)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 {
			pos := c.Position()
			return nil, diagnostics.NewParseError(diagnostics.KindSyntax, pos, "expected at least one element")
		}
		return out, nil
	}
}

// Opt makes p optional, returning the zero value and no error if p fails
// without consuming input.
func Opt[T any](p Parser[T]) Parser[T] {
	return func(c *cursor.Cursor) (T, *diagnostics.ParseError) {
		before := c.Save()
		v, err := p(c)
		if err != nil {
			if c.Save() != before {
				var zero T
				return zero, err
			}
			c.Restore(before)
			var zero T
			return zero, nil
		}
		return v, nil
	}
}

// NotFollowedBy succeeds (consuming nothing) iff p fails at the current
// position; used for negative lookahead such as "identifier not followed by
// a generic-argument clause that turns out to be a comparison".
func NotFollowedBy[T any](p Parser[T]) Parser[struct{}] {
	return func(c *cursor.Cursor) (struct{}, *diagnostics.ParseError) {
		before := c.Save()
		_, err := p(c)
		c.Restore(before)
		if err == nil {
			pos := c.Position()
			return struct{}{}, diagnostics.NewParseError(diagnostics.KindSyntax, pos, "unexpected match in negative lookahead")
		}
		return struct{}{}, nil
	}
}

// LookAhead runs p and restores the cursor regardless of outcome, reporting
// what would have matched.
func LookAhead[T any](p Parser[T]) Parser[T] {
	return func(c *cursor.Cursor) (T, *diagnostics.ParseError) {
		before := c.Save()
		v, err := p(c)
		c.Restore(before)
		return v, err
	}
}

// InfixOp holds the function that combines a left and right operand and the
// operator lexeme between them into a new expression, parameterized so
// chainl1/chainr1 stay expression-type-agnostic.
type InfixOp[T any] struct {
	Combine func(left, right T, opLexeme string) T
}

// Chainl1 parses one T followed by zero or more (opSymbol T) pairs, folding
// left-associatively: ((a op b) op c) op d.
func Chainl1[T any](operand Parser[T], op Parser[string], combine func(left, right T, opLexeme string) T) Parser[T] {
	return func(c *cursor.Cursor) (T, *diagnostics.ParseError) {
		var zero T
		left, err := operand(c)
		if err != nil {
			return zero, err
		}
		for {
			before := c.Save()
			sym, err := op(c)
			if err != nil {
				c.Restore(before)
				return left, nil
			}
			right, err := operand(c)
			if err != nil {
				return zero, err
			}
			left = combine(left, right, sym)
		}
	}
}

// Chainr1 folds right-associatively: a op (b op (c op d)). Implemented by
// collecting the flat sequence then folding from the right, since a
// recursive-descent right fold needs the whole tail before it can combine.
func Chainr1[T any](operand Parser[T], op Parser[string], combine func(left, right T, opLexeme string) T) Parser[T] {
	return func(c *cursor.Cursor) (T, *diagnostics.ParseError) {
		var zero T
		first, err := operand(c)
		if err != nil {
			return zero, err
		}
		operands := []T{first}
		var ops []string
		for {
			before := c.Save()
			sym, err := op(c)
			if err != nil {
				c.Restore(before)
				break
			}
			right, err := operand(c)
			if err != nil {
				return zero, err
			}
			ops = append(ops, sym)
			operands = append(operands, right)
		}
		result := operands[len(operands)-1]
		for i := len(ops) - 1; i >= 0; i-- {
			result = combine(operands[i], result, ops[i])
		}
		return result, nil
	}
}
