// search.go implements the compile → compose → execute pipeline.
//
// Separated from service.go because this is the only path that touches the
// memo and the singleflight group. Lookups by file name bypass both.
//
// Design: The memo key is a digest of the compiled expression, the sorted
// distinct filter selections and the effective limit. Two requests that
// differ only in whitespace or selection order produce the same statement
// semantics and share an entry. Failed searches are never stored.

package search

import (
	"context"
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/jpl-au/juris/internal/log"
	"github.com/jpl-au/juris/internal/query"
	"github.com/jpl-au/juris/internal/store"
)

// Request is a single search interaction.
type Request struct {
	Query    string   // raw user input
	Years    []int    // empty means any year
	Chambers []string // empty means any chamber
	Limit    int      // 0 uses the configured maximum; clamped to query.MaxResults
}

// Filters returns the request's selections as query filters.
func (r Request) Filters() query.Filters {
	return query.Filters{Years: r.Years, Chambers: r.Chambers}
}

// Response is the outcome of a search.
type Response struct {
	Query    string         // raw input as submitted
	Compiled query.Compiled // match expression that was executed
	Results  []store.Result // at most Limit rows, never nil
	Limit    int            // effective row limit
	// Truncated reports that the limit was reached, so more rulings may
	// match than are shown.
	Truncated bool
	Cached    bool // served from the memo
}

// Search executes a request.
//
// An input with no terms returns ErrEmptyQuery without touching the index.
// If the index cannot be opened the error wraps ErrStoreUnavailable; if the
// statement fails the error wraps ErrSearchFailed. In every error case
// Results is an empty, non-nil slice.
func (s *Service) Search(ctx context.Context, req Request) (Response, error) {
	resp := Response{Query: req.Query, Results: []store.Result{}}

	c, err := query.Compile(req.Query)
	if err != nil {
		recordSearch(err, false)
		return resp, err
	}
	resp.Compiled = c

	limit := s.limit
	if req.Limit > 0 {
		limit = req.Limit
	}
	limit = query.ClampLimit(limit)
	resp.Limit = limit

	filters := req.Filters().Normalise()
	key := memoKey(c, filters, limit)

	if s.memo != nil {
		if hit, ok := s.memo.Get(key); ok {
			hit.Query = req.Query
			hit.Results = slices.Clone(hit.Results)
			hit.Cached = true
			recordSearch(nil, true)
			return hit, nil
		}
	}

	results, err := s.shared(ctx, key, c, filters, limit)

	log.Event("search", "search").
		Detail("query", req.Query).
		Detail("years", filters.Years).
		Detail("chambers", filters.Chambers).
		Detail("count", len(results)).
		Write(err)

	recordSearch(err, false)
	if err != nil {
		return resp, err
	}

	resp.Results = slices.Clone(results)
	resp.Truncated = len(results) >= limit
	return resp, nil
}

// shared runs the statement for key once for all concurrent callers.
//
// The execution is detached from every caller's cancellation and bounded
// only by the configured timeout, so one caller giving up never fails the
// others. Each caller waits on its own ctx; a caller whose ctx ends first
// gets ErrSearchFailed while the execution carries on for the rest. A
// successful result is memoised by the execution itself, so it is kept even
// if every caller has gone.
func (s *Service) shared(ctx context.Context, key string, c query.Compiled, f query.Filters, limit int) ([]store.Result, error) {
	detached := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		results, err := s.execute(detached, c, f, limit)
		if err == nil && s.memo != nil {
			s.memo.Add(key, Response{
				Compiled:  c,
				Results:   results,
				Limit:     limit,
				Truncated: len(results) >= limit,
			})
		}
		return results, err
	})

	select {
	case res := <-ch:
		return res.Val.([]store.Result), res.Err
	case <-ctx.Done():
		return []store.Result{}, fmt.Errorf("%w: %w", ErrSearchFailed, ctx.Err())
	}
}

// execute runs one composed statement under the configured timeout.
func (s *Service) execute(ctx context.Context, c query.Compiled, f query.Filters, limit int) ([]store.Result, error) {
	st, err := s.mgr.Get(ctx)
	if err != nil {
		return []store.Result{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	stmt := query.Compose(c, f, query.Options{Limit: limit, Snippet: s.snippet})
	results, err := st.Search(ctx, stmt)
	recordExecution(start, len(results))
	if results == nil {
		results = []store.Result{}
	}
	return results, err
}

// memoKey identifies a request by what determines its results.
func memoKey(c query.Compiled, f query.Filters, limit int) string {
	years := slices.Clone(f.Years)
	slices.Sort(years)
	chambers := slices.Clone(f.Chambers)
	slices.Sort(chambers)

	var b strings.Builder
	b.WriteString(c.Expr)
	b.WriteByte(0)
	for _, y := range years {
		b.WriteString(strconv.Itoa(y))
		b.WriteByte(',')
	}
	b.WriteByte(0)
	for _, ch := range chambers {
		// Length prefix keeps chamber names containing the separator distinct.
		fmt.Fprintf(&b, "%d:%s,", len(ch), ch)
	}
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(limit))

	sum := blake2b.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
