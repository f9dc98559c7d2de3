// Package search runs the query pipeline for every adapter (CLI, MCP, HTTP).
//
// A Service compiles raw input, composes it with filters and executes it
// through the shared index handle. Identical requests are memoised in an
// expiring LRU and concurrent duplicates collapse into one execution; both
// are optimisations only and never change what a search returns.
package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/jpl-au/juris/internal/config"
	"github.com/jpl-au/juris/internal/index"
	"github.com/jpl-au/juris/internal/query"
	"github.com/jpl-au/juris/internal/store"
	"github.com/jpl-au/juris/internal/validate"
)

// Service executes searches and lookups against the rulings index.
type Service struct {
	mgr *index.Manager

	limit   int
	snippet query.Snippet
	timeout time.Duration

	memo  *expirable.LRU[string, Response] // nil when disabled
	group singleflight.Group

	filtersMu sync.Mutex
	filters   *Options
}

// New creates a Service over mgr. A nil cfg uses defaults.
func New(mgr *index.Manager, cfg *config.Config) *Service {
	if cfg == nil {
		cfg = &config.Config{}
	}
	s := &Service{
		mgr:     mgr,
		limit:   cfg.MaxResults(),
		snippet: cfg.Snippet(),
		timeout: cfg.Timeout(),
	}
	if n := cfg.CacheSize(); n > 0 {
		s.memo = expirable.NewLRU[string, Response](n, nil, cfg.CacheTTL())
	}
	return s
}

// IndexPath returns the path of the index this service reads.
func (s *Service) IndexPath() string {
	return s.mgr.Path()
}

// Close releases the index handle.
func (s *Service) Close() error {
	return s.mgr.Close()
}

// Ruling returns a single ruling, including its full text.
// Returns ErrNotFound if no ruling has that file name. A malformed name can
// never match, so it is reported as ErrNotFound without touching the index.
func (s *Service) Ruling(ctx context.Context, fileName string) (*store.Ruling, error) {
	fileName, err := validate.FileName(fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	st, err := s.mgr.Get(ctx)
	if err != nil {
		return nil, err
	}
	return st.Ruling(ctx, fileName)
}

// Stats returns aggregate statistics about the index.
func (s *Service) Stats(ctx context.Context) (*store.Stats, error) {
	st, err := s.mgr.Get(ctx)
	if err != nil {
		return nil, err
	}
	return st.Stats(ctx)
}

// withTimeout bounds ctx by the configured search timeout, if any.
func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
