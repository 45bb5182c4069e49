// Package diagnostics implements spec.md §7's error model: four error
// kinds (lexical, syntax, end-of-input, trailing-input), position-tagged so
// callers never need a panic/recover to learn a parse failed, plus a
// furthest-position rule for picking which of several failed alternatives
// to report and a uuid-tagged batch type for grouping several errors.
package diagnostics

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
)

// Kind is one of spec.md §7's four error kinds.
type Kind string

const (
	KindLexical       Kind = "lexical"
	KindSyntax        Kind = "syntax"
	KindEndOfInput    Kind = "end_of_input"
	KindTrailingInput Kind = "trailing_input"
)

// ParseError is a position-tagged failure. It implements error so it can
// flow through ordinary Go error-handling, but callers that need the
// structured Kind/Position should type-assert rather than parse the string.
type ParseError struct {
	Kind     Kind
	Position cursor.Position
	Message  string
	// File is filled in by the api layer, which knows the source's name;
	// the combinator/parser layers never see a file name.
	File string
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Position.Line, e.Position.Column, e.Kind, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Position.Line, e.Position.Column, e.Kind, e.Message)
}

// NewParseError constructs a ParseError at pos.
func NewParseError(kind Kind, pos cursor.Position, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Position: pos, Message: fmt.Sprintf(format, args...)}
}

// Furthest returns whichever of a, b reached the larger offset, preferring
// b on a tie (the more recently attempted alternative) and treating a nil
// operand as losing unconditionally. Alt uses this so a failed Alt reports
// the error from the branch that got deepest into the input, which is
// almost always the most useful one to show a user.
func Furthest(a, b *ParseError) *ParseError {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.Position.Offset >= a.Position.Offset {
		return b
	}
	return a
}

// WithFile returns a copy of e with File set, used by the api layer right
// before handing an error back to a caller.
func (e *ParseError) WithFile(file string) *ParseError {
	cp := *e
	cp.File = file
	return &cp
}

// Batch collects every error produced while parsing one request, tagged
// with a correlation id so a caller driving many parses can group log lines
// back to the request that produced them. The CLI, which parses one input
// per run, does not use it.
type Batch struct {
	ID     string
	File   string
	Errors []*ParseError
}

// NewBatch starts an empty, uuid-tagged error batch for file.
func NewBatch(file string) *Batch {
	return &Batch{ID: uuid.NewString(), File: file}
}

// Add appends err to the batch, filling in File if err doesn't have one.
func (b *Batch) Add(err *ParseError) {
	if err == nil {
		return
	}
	if err.File == "" {
		err = err.WithFile(b.File)
	}
	b.Errors = append(b.Errors, err)
}

func (b *Batch) Empty() bool { return len(b.Errors) == 0 }

func (b *Batch) Error() string {
	if len(b.Errors) == 0 {
		return ""
	}
	if len(b.Errors) == 1 {
		return b.Errors[0].Error()
	}
	return fmt.Sprintf("%s (and %d more error(s))", b.Errors[0].Error(), len(b.Errors)-1)
}
