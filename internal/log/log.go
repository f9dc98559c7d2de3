// Package log provides centralised operational logging for juris.
//
// Entries are written through log/slog to stderr (stdout is reserved for
// command output and the MCP protocol). Nothing is persisted: queries are
// logged for diagnostics only and no search history is kept.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("search:find", "search").
//		Detail("query", query).
//		Detail("count", len(results)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands, "mcp:{tool}" for MCP tools and "http:{route}" for the JSON API.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	global *slog.Logger
	level  = new(slog.LevelVar)
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "search:find", "mcp:juris_search"
	Action string // verb: search, read, open, list
	Path   string // index path or ruling file name, when relevant

	Start time.Time // when Event() was called
	End   time.Time // when Write() was called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "search:find")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:juris_search")
//   - HTTP routes: "http:{route}" (e.g., "http:search")
//
// The action describes what operation was performed:
// "search", "read", "list", "open", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now(),
		},
	}
}

// Path sets the index path or ruling file name this operation affects.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// search queries, result counts, filters, etc. Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write emits the entry, deriving success/failure from err.
//
// Successful entries are logged at Info, failures at Warn. This is the
// standard way to complete a log entry after an operation:
//
//	results, err := svc.Search(ctx, req)
//	log.Event("search:find", "search").Detail("query", req.Query).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger writing text records to w at the given
// level. Safe to call multiple times; later calls replace the writer.
func Open(w io.Writer, lvl slog.Level) {
	mu.Lock()
	defer mu.Unlock()

	level.Set(lvl)
	global = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLevel changes the minimum level of the global logger.
func SetLevel(lvl slog.Level) {
	level.Set(lvl)
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// Logger returns the global slog logger, or a logger that discards output
// if Open has not been called.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return global
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}

	attrs := []slog.Attr{
		slog.String("source", e.Source),
		slog.String("action", e.Action),
		slog.Duration("elapsed", e.End.Sub(e.Start)),
	}
	if e.Path != "" {
		attrs = append(attrs, slog.String("path", e.Path))
	}

	// Sorted keys keep records stable for grepping and tests.
	keys := make([]string, 0, len(e.Detail))
	for k := range e.Detail {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, e.Detail[k]))
	}

	lvl, msg := slog.LevelInfo, e.Source
	if !e.Success {
		lvl = slog.LevelWarn
		attrs = append(attrs, slog.String("error", e.Error))
	}
	l.LogAttrs(context.Background(), lvl, msg, attrs...)
}

// Close detaches the global logger. Subsequent entries are dropped.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	global = nil
}
