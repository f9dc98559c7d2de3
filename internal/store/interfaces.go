// interfaces.go defines the storage abstraction over the rulings index.
//
// Separated from the SQLite implementation so the search service and its
// adapters can be exercised against any backend. The interfaces are granular
// (Reader, Searcher, Writer) so consumers only depend on what they need.
//
// Design: The index is read-only from the application's point of view.
// Writer exists solely to build fixture indexes for tests and local
// development; no command exposes it.

package store

import (
	"context"
	"database/sql"

	"github.com/jpl-au/juris/internal/query"
)

// Reader defines lookups that do not involve full-text matching.
type Reader interface {
	// Ruling returns a single ruling by file name, including its full text.
	// Returns ErrNotFound if no ruling has that name.
	Ruling(ctx context.Context, fileName string) (*Ruling, error)

	// Years returns the distinct ruling years, newest first.
	Years(ctx context.Context) ([]int, error)

	// Chambers returns the distinct chambers in alphabetical order.
	Chambers(ctx context.Context) ([]string, error)

	// Stats returns aggregate index statistics.
	Stats(ctx context.Context) (*Stats, error)
}

// Searcher executes composed full-text statements.
type Searcher interface {
	// Search runs a statement built by query.Compose. On failure it returns
	// an empty slice and an error wrapping ErrSearchFailed.
	Search(ctx context.Context, st query.Statement) ([]Result, error)
}

// Writer populates fixture indexes.
type Writer interface {
	// Insert adds rulings in a single transaction. Returns ErrAlreadyExists
	// if a file name is already present.
	Insert(ctx context.Context, rulings ...Ruling) error
}

// Maintainer defines lifecycle operations.
type Maintainer interface {
	// Close releases the database connection.
	Close() error

	// DB exposes the underlying connection for diagnostics.
	DB() *sql.DB
}

// Store combines every capability of the rulings index.
type Store interface {
	Reader
	Searcher
	Writer
	Maintainer
}
