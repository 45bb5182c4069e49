package pipeline

// Processor is any component that can process a PipelineContext and return
// a modified context. cmd/swiftparse chains a cache lookup, the parse
// itself, and a cache store into one Pipeline of Processors.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}
