// write.go populates fixture indexes.
//
// The application never writes to a production index; Open returns a
// query_only handle. Insert exists for tests and local development, where a
// small index must be built from known rulings.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jpl-au/juris/internal/query"
)

// Insert adds rulings in a single transaction, preserving file name
// uniqueness.
func (s *SQLiteStore) Insert(ctx context.Context, rulings ...Ruling) error {
	return s.Tx(ctx, func(tx *sql.Tx) error {
		seen, err := fileNames(ctx, tx)
		if err != nil {
			return err
		}

		for _, r := range rulings {
			if r.FileName == "" {
				return errors.New("insert ruling: file name is required")
			}
			if _, ok := seen[r.FileName]; ok {
				return fmt.Errorf("%w: %s", ErrAlreadyExists, r.FileName)
			}

			_, err = tx.ExecContext(ctx, `INSERT INTO `+query.Table+` (`+
				query.ColFileName+`, `+query.ColYear+`, `+query.ColChamber+`, `+
				query.ColRulingNumber+`, `+query.ColCaseNumber+`, `+query.ColFullText+`)
				VALUES (?, ?, ?, ?, ?, ?)`,
				r.FileName, r.Year, r.Chamber, r.RulingNumber, r.CaseNumber, r.FullText)
			if err != nil {
				return fmt.Errorf("insert %s: %w", r.FileName, err)
			}
			seen[r.FileName] = struct{}{}
		}
		return nil
	})
}

// fileNames loads every file name already in the index. The FTS5 table has
// no index on nome_arquivo, so one scan up front replaces a scan per row.
func fileNames(ctx context.Context, tx *sql.Tx) (map[string]struct{}, error) {
	rows, err := tx.QueryContext(ctx, `SELECT `+query.ColFileName+` FROM `+query.Table)
	if err != nil {
		return nil, fmt.Errorf("list file names: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list file names: %w", err)
		}
		if name.Valid {
			seen[name.String] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list file names: %w", err)
	}
	return seen, nil
}
