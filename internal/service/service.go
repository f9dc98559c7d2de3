// Package service defines the shared interface for search operations.
// Commands, the MCP server and the HTTP API depend on this interface rather
// than the concrete search.Service, enabling testing with fakes.
package service

import (
	"context"

	"github.com/jpl-au/juris/internal/search"
	"github.com/jpl-au/juris/internal/store"
)

// Service defines all operations adapters may perform against the index.
//
// Use search.New to obtain an implementation. Always call Close() when done.
//
// Example:
//
//	svc := search.New(index.New(path), cfg)
//	defer svc.Close()
//	resp, err := svc.Search(ctx, search.Request{Query: "cassação"})
type Service interface {
	// Close releases the index handle.
	Close() error

	// IndexPath returns the index file this service reads.
	IndexPath() string

	// Search runs a full-text search. Errors belong to the search taxonomy:
	// search.ErrEmptyQuery (nothing executed), search.ErrStoreUnavailable and
	// search.ErrSearchFailed. Results is never nil.
	Search(ctx context.Context, req search.Request) (search.Response, error)

	// Ruling returns one ruling with its full text.
	// Returns search.ErrNotFound if no ruling has that file name.
	Ruling(ctx context.Context, fileName string) (*store.Ruling, error)

	// FilterOptions returns the distinct years and chambers available for
	// filtering. On failure the options are empty and callers should warn
	// rather than abort.
	FilterOptions(ctx context.Context) (search.Options, error)

	// Stats returns aggregate index statistics.
	Stats(ctx context.Context) (*store.Stats, error)
}

// Compile-time interface compliance check.
var _ Service = (*search.Service)(nil)
