// sqlite_ops.go provides SQLite connection management and low-level operations.
//
// Separated to isolate SQLite-specific concerns (DSN construction, pragmas,
// driver registration) from query logic. This is the only file that imports
// the SQLite driver.
//
// Design: Searches open the index read-only through a file: URI. SQLite
// serves any number of concurrent readers on one file, so a single *sql.DB
// pool is shared by every session without extra locking. Pragmas are passed
// as _pragma DSN parameters so that every pooled connection receives them,
// not just the first.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	// Register sqlite driver
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store over an FTS5 index file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// Compile-time interface compliance check.
var _ Store = (*SQLiteStore)(nil)

// Open opens an existing index read-only. The file must exist and be a
// SQLite database; otherwise the error wraps ErrUnavailable and the returned
// store is nil.
func Open(path string) (*SQLiteStore, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s: %w", ErrUnavailable, path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnavailable, abs)
	}

	db, err := sql.Open("sqlite", dsn(abs, true))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrUnavailable, abs, err)
	}

	// sql.Open is lazy. Reading the schema forces SQLite to open the file and
	// validate its header, so permission problems and non-database files
	// surface here rather than on the first search.
	var n int
	if err := db.QueryRow(`SELECT count(*) FROM sqlite_master`).Scan(&n); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: read %s: %w", ErrUnavailable, abs, err)
	}

	return &SQLiteStore{db: db, path: abs}, nil
}

// Create creates (or reuses) a writable index at path and applies the
// embedded schema. It is intended for fixtures; production indexes are
// built elsewhere.
func Create(path string) (*SQLiteStore, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(abs, false))
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", abs, err)
	}
	if err := execSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db, path: abs}, nil
}

// dsn builds a file: URI for the driver. Read-only handles also set
// query_only so no statement can modify the index.
func dsn(abs string, readOnly bool) string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	if readOnly {
		q.Set("mode", "ro")
		q.Add("_pragma", "query_only(1)")
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: q.Encode()}
	return u.String()
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Path returns the absolute path of the index file.
func (s *SQLiteStore) Path() string {
	return s.path
}

// scanner abstracts sql.Row and sql.Rows, enabling a single scan function
// to handle both single-row and multi-row queries.
type scanner interface {
	Scan(dest ...any) error
}

// scanRuling extracts a Ruling from a row with columns in schema order.
// Metadata columns may be NULL in older indexes.
func scanRuling(sc scanner) (Ruling, error) {
	var r Ruling
	var year sql.NullInt64
	var chamber, ruling, caseNo, text sql.NullString

	if err := sc.Scan(&r.FileName, &year, &chamber, &ruling, &caseNo, &text); err != nil {
		return r, err
	}
	r.Year = int(year.Int64)
	r.Chamber = chamber.String
	r.RulingNumber = ruling.String
	r.CaseNumber = caseNo.String
	r.FullText = text.String
	return r, nil
}

// scanResult extracts a Result from a search row: the ruling metadata, the
// snippet and the full text.
func scanResult(sc scanner) (Result, error) {
	var r Result
	var year sql.NullInt64
	var chamber, ruling, caseNo, snippet, text sql.NullString

	if err := sc.Scan(&r.FileName, &year, &chamber, &ruling, &caseNo, &snippet, &text); err != nil {
		return r, err
	}
	r.Year = int(year.Int64)
	r.Chamber = chamber.String
	r.RulingNumber = ruling.String
	r.CaseNumber = caseNo.String
	r.Snippet = snippet.String
	r.FullText = text.String
	return r, nil
}

// Tx executes fn within a database transaction, handling Begin/Commit/Rollback
// automatically. If fn returns an error the transaction is rolled back.
func (s *SQLiteStore) Tx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
