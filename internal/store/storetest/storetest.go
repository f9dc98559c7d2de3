// Package storetest builds fixture indexes for tests.
package storetest

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jpl-au/juris/internal/store"
	"github.com/stretchr/testify/require"
)

// FileName is the index file name used by Build.
const FileName = "jurisprudencia_fts.db"

// Build writes rulings to a fresh index in a temporary directory and returns
// its path. The writable handle is closed before returning, so callers open
// the file the same way production code does.
func Build(t *testing.T, rulings ...store.Ruling) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), FileName)
	s, err := store.Create(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Insert(context.Background(), rulings...))
	return path
}

// Open builds a fixture index and opens it read-only.
func Open(t *testing.T, rulings ...store.Ruling) *store.SQLiteStore {
	t.Helper()

	s, err := store.Open(Build(t, rulings...))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// Ruling returns a ruling with predictable metadata. Ruling numbers are
// zero-padded so lexical and numeric order agree.
func Ruling(n, year int, chamber, text string) store.Ruling {
	return store.Ruling{
		FileName:     fmt.Sprintf("acordao-%05d.pdf", n),
		Year:         year,
		Chamber:      chamber,
		RulingNumber: fmt.Sprintf("%05d", n),
		CaseNumber:   fmt.Sprintf("E-04/%06d/%d", n, year),
		FullText:     text,
	}
}

// Many returns count rulings from the given year that all contain text.
func Many(count, year int, chamber, text string) []store.Ruling {
	rs := make([]store.Ruling, count)
	for i := range rs {
		rs[i] = Ruling(i+1, year, chamber, text)
	}
	return rs
}
