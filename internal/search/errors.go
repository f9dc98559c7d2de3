package search

import (
	"github.com/jpl-au/juris/internal/query"
	"github.com/jpl-au/juris/internal/store"
)

// The search error taxonomy. Adapters check results against these with
// errors.Is and never inspect driver errors directly.
var (
	// ErrStoreUnavailable means the index could not be opened.
	ErrStoreUnavailable = store.ErrUnavailable
	// ErrSearchFailed means a well-formed search failed while executing.
	ErrSearchFailed = store.ErrSearchFailed
	// ErrEmptyQuery means the input had no terms; nothing was executed.
	ErrEmptyQuery = query.ErrEmptyQuery
	// ErrNotFound means no ruling has the requested file name.
	ErrNotFound = store.ErrNotFound
)
