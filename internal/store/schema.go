// schema.go defines the SQLite FTS5 schema and the error taxonomy of the
// index layer.
//
// The schema file is embedded from the sql/ directory and only executed by
// Create, which builds fixture indexes. Production indexes are produced by
// an external process with the same layout; Open never writes to them.

package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed sql/*.sql
var schemas embed.FS

var (
	// ErrNotFound indicates the requested ruling does not exist.
	ErrNotFound = errors.New("ruling not found")
	// ErrAlreadyExists prevents duplicate file names in fixture indexes.
	ErrAlreadyExists = errors.New("ruling already exists")
	// ErrUnavailable indicates the index file cannot be opened: it is
	// missing, unreadable, or not a SQLite database. Callers surface it as a
	// user-visible message; no partial handle is ever returned with it.
	ErrUnavailable = errors.New("search index unavailable")
	// ErrSearchFailed indicates a well-formed request failed while executing
	// (schema mismatch, malformed expression, engine error). It always
	// accompanies an empty result set.
	ErrSearchFailed = errors.New("search failed")
)

// ExecEmbedded executes all .sql files from an embedded filesystem in alphabetical order.
// The dir parameter specifies the directory within the embed.FS to read from.
// Each .sql file should use IF NOT EXISTS clauses for idempotency.
func ExecEmbedded(db *sql.DB, fsys embed.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read schema directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := dir + "/" + entry.Name()
		data, err := fsys.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if _, err := db.Exec(string(data)); err != nil {
			return fmt.Errorf("exec %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// execSchema executes the embedded index schema.
func execSchema(db *sql.DB) error {
	return ExecEmbedded(db, schemas, "sql")
}
