// read.go implements lookups that do not involve full-text matching.
//
// Separated from search.go to isolate the plain SELECTs: fetching a single
// ruling for on-demand full-text display and listing the distinct filter
// values. UNINDEXED FTS5 columns can be read and compared like ordinary
// columns, so these queries run against the same denormalised table.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jpl-au/juris/internal/query"
)

// Ruling returns the ruling with the given file name.
func (s *SQLiteStore) Ruling(ctx context.Context, fileName string) (*Ruling, error) {
	q := `SELECT ` + query.ColFileName + `, ` + query.ColYear + `, ` + query.ColChamber + `, ` +
		query.ColRulingNumber + `, ` + query.ColCaseNumber + `, ` + query.ColFullText + `
		FROM ` + query.Table + ` WHERE ` + query.ColFileName + ` = ? LIMIT 1`

	r, err := scanRuling(s.db.QueryRowContext(ctx, q, fileName))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get ruling %s: %w", fileName, err)
	}
	return &r, nil
}

// Years returns the distinct, non-null ruling years, newest first.
func (s *SQLiteStore) Years(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT `+query.ColYear+` FROM `+query.Table+`
		WHERE `+query.ColYear+` IS NOT NULL ORDER BY `+query.ColYear+` DESC`)
	if err != nil {
		return nil, fmt.Errorf("list years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

// Chambers returns the distinct, non-empty chambers in alphabetical order.
func (s *SQLiteStore) Chambers(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT `+query.ColChamber+` FROM `+query.Table+`
		WHERE `+query.ColChamber+` IS NOT NULL AND `+query.ColChamber+` != '' ORDER BY `+query.ColChamber)
	if err != nil {
		return nil, fmt.Errorf("list chambers: %w", err)
	}
	defer rows.Close()

	var chambers []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan chamber: %w", err)
		}
		chambers = append(chambers, c)
	}
	return chambers, rows.Err()
}
