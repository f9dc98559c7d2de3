// search.go executes full-text statements against the FTS5 index.
//
// Separated from read.go because FTS5 matching has different semantics from
// the plain lookups there: statements come pre-composed from the query
// package, carry a MATCH expression, and return snippet-annotated rows.
//
// Design: Execution failures never leak as raw driver errors. Any failure
// (malformed expression, missing table, scan error) yields an empty, non-nil
// slice plus an error wrapping ErrSearchFailed, so renderers always receive a
// usable result set.

package store

import (
	"context"
	"fmt"

	"github.com/jpl-au/juris/internal/query"
)

// Search executes a composed statement and returns the hits in statement
// order. The statement already carries the sort order and row cap.
func (s *SQLiteStore) Search(ctx context.Context, st query.Statement) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, st.SQL, st.Args...)
	if err != nil {
		return []Result{}, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}
	defer rows.Close()

	results := []Result{}
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return []Result{}, fmt.Errorf("%w: scan result: %w", ErrSearchFailed, err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return []Result{}, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}
	return results, nil
}
