// Package cache memoizes parse outcomes across CLI runs in an on-disk
// sqlite database, keyed by a content hash of the source text. This is a
// build-tool concern layered on top of the parser core, not part of it: the
// core (internal/api) has no notion of a cache and stays pure.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/pipeline"
)

// Cache wraps a sqlite-backed table of prior parse outcomes.
type Cache struct {
	db *sql.DB
}

// Outcome is what a prior run found when it parsed a given content hash.
type Outcome struct {
	OK      bool
	Message string // populated when !OK
}

// Open opens (creating if necessary) the sqlite database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS parse_outcomes (
	content_hash TEXT PRIMARY KEY,
	ok           INTEGER NOT NULL,
	message      TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: migrate schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Hash returns the content hash Lookup/Store key on for the given source.
func Hash(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Lookup reports the outcome previously stored for hash, if any.
func (c *Cache) Lookup(hash string) (Outcome, bool, error) {
	row := c.db.QueryRow(`SELECT ok, message FROM parse_outcomes WHERE content_hash = ?`, hash)
	var ok int
	var message string
	switch err := row.Scan(&ok, &message); err {
	case nil:
		return Outcome{OK: ok != 0, Message: message}, true, nil
	case sql.ErrNoRows:
		return Outcome{}, false, nil
	default:
		return Outcome{}, false, err
	}
}

// Store records hash's outcome, overwriting any prior entry.
func (c *Cache) Store(hash string, outcome Outcome) error {
	_, err := c.db.Exec(
		`INSERT INTO parse_outcomes (content_hash, ok, message) VALUES (?, ?, ?)
		 ON CONFLICT(content_hash) DO UPDATE SET ok = excluded.ok, message = excluded.message`,
		hash, boolToInt(outcome.OK), outcome.Message,
	)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// LookupProcessor is a pipeline.Processor that short-circuits the parse
// stage when this content hash was already checked in a prior run.
type LookupProcessor struct {
	Cache *Cache
}

func (p *LookupProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.ContentHash = Hash(ctx.SourceCode)
	outcome, found, err := p.Cache.Lookup(ctx.ContentHash)
	if err != nil || !found {
		return ctx
	}
	ctx.CacheHit = true
	if !outcome.OK {
		ctx.Err = diagnostics.NewParseError(diagnostics.KindSyntax, cursor.Position{}, "%s", outcome.Message)
	}
	return ctx
}

// StoreProcessor is a pipeline.Processor that records this run's outcome
// for future cache hits, unless the outcome was itself served from cache.
type StoreProcessor struct {
	Cache *Cache
}

func (p *StoreProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.CacheHit {
		return ctx
	}
	outcome := Outcome{OK: ctx.Err == nil}
	if ctx.Err != nil {
		outcome.Message = ctx.Err.Error()
	}
	_ = p.Cache.Store(ctx.ContentHash, outcome)
	return ctx
}
