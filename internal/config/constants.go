package config

// SourceFileExtensions are the file extensions of Swift source files. The
// CLI reads one file argument or stdin and does not consult this list.
var SourceFileExtensions = []string{".swift"}

// StdinFileName is substituted for the file-name component of a diagnostic
// when the source was read from standard input (spec.md §6: "fixed
// `<stdin>`").
const StdinFileName = "<stdin>"

// CacheSchemaVersion numbers the on-disk parse-result cache's row shape.
// internal/cache does not read it; cached rows are not invalidated by it.
const CacheSchemaVersion = 1
