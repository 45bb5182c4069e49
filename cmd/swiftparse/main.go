// Command swiftparse reads a Swift 2.1 source file (or stdin) and reports
// whether it parses, printing either a node count or a formatted parse
// error with a non-zero exit code. No evaluation, no pretty-printing: the
// core this binary wraps only validates syntax.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/swiftsyntax/swiftparse/internal/api"
	"github.com/swiftsyntax/swiftparse/internal/cache"
	"github.com/swiftsyntax/swiftparse/internal/pipeline"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "this is a bug, please report it")
			os.Exit(1)
		}
	}()

	verbose := flag.Bool("v", false, "print a banner with the input size before parsing")
	cachePath := flag.String("cache", "", "path to a sqlite file memoizing prior parse outcomes (disabled if empty)")
	flag.Parse()

	args := flag.Args()
	sourceCode, filePath, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
	if filePath == "" {
		filePath = "<stdin>"
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "%s: %s\n", filePath, humanize.Bytes(uint64(len(sourceCode))))
	}

	if *cachePath != "" {
		runCached(sourceCode, filePath, *cachePath)
		return
	}

	mod, parseErr := api.ParseModule(sourceCode, filePath)
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, parseErr.Error())
		os.Exit(1)
	}
	fmt.Printf("ok: %d top-level statement(s)\n", len(mod.Statements))
}

// runCached drives the same parse through a cache-lookup/store pipeline so
// repeat runs over an unchanged file skip the parse entirely.
func runCached(sourceCode, filePath, cachePath string) {
	c, err := cache.Open(cachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
	defer c.Close()

	ctx := pipeline.NewPipelineContext(sourceCode, filePath)
	pl := pipeline.New(
		&cache.LookupProcessor{Cache: c},
		&parseProcessor{},
		&cache.StoreProcessor{Cache: c},
	)
	ctx = pl.Run(ctx)

	if ctx.Err != nil {
		fmt.Fprintln(os.Stderr, ctx.Err.Error())
		os.Exit(1)
	}
	if ctx.CacheHit {
		fmt.Println("ok (cached)")
		return
	}
	fmt.Printf("ok: %d top-level statement(s)\n", len(ctx.Module.Statements))
}

// parseProcessor is the pipeline stage that actually calls api.ParseModule;
// skipped when a preceding cache.LookupProcessor already found this
// content hash's outcome.
type parseProcessor struct{}

func (p *parseProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.CacheHit {
		return ctx
	}
	mod, err := api.ParseModule(ctx.SourceCode, ctx.FilePath)
	ctx.Module = mod
	ctx.Err = err
	return ctx
}

func readInput(args []string) (source, filePath string, err error) {
	if len(args) == 0 {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", "", fmt.Errorf("usage: swiftparse [-v] [-cache path] <file> or pipe from stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}
