package pipeline

import (
	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
)

// PipelineContext holds the data passed between a CLI run's pipeline
// stages: a cache lookup, the parse itself, and a cache store.
type PipelineContext struct {
	SourceCode string
	FilePath   string // "<stdin>" when reading from standard input

	// ContentHash identifies SourceCode for cache lookups; filled in by the
	// first stage that needs it.
	ContentHash string

	// CacheHit is set by a cache-lookup Processor when a prior run already
	// recorded this content hash's outcome, letting a later Processor skip
	// the parse itself.
	CacheHit bool

	Module *ast.Module
	Err    *diagnostics.ParseError
}

// NewPipelineContext creates an initialized PipelineContext for one file.
func NewPipelineContext(source, filePath string) *PipelineContext {
	return &PipelineContext{SourceCode: source, FilePath: filePath}
}
