// stats.go implements aggregate queries for operational visibility.
//
// Design: Aggregates avoid loading document text. They use COUNT, MIN/MAX
// and DISTINCT directly in SQLite.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jpl-au/juris/internal/query"
)

// Stats returns aggregate index statistics.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	var oldest, newest sql.NullInt64

	err := s.db.QueryRowContext(ctx, `SELECT
		COUNT(*),
		COUNT(DISTINCT `+query.ColChamber+`),
		MIN(`+query.ColYear+`),
		MAX(`+query.ColYear+`)
		FROM `+query.Table).Scan(&st.Rulings, &st.Chambers, &oldest, &newest)
	if err != nil {
		return nil, fmt.Errorf("index stats: %w", err)
	}

	st.OldestYear = int(oldest.Int64)
	st.NewestYear = int(newest.Int64)
	return &st, nil
}
