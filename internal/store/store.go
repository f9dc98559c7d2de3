// Package store defines the ruling types and the Store interface over the
// pre-built SQLite FTS5 index. Consumers depend on the interfaces so the
// search pipeline can be tested against fixture indexes.
package store

import (
	"encoding/json"
)

// Ruling is a single decision of the tax-appeal council as stored in the
// index. Records are created by an external indexing process and are
// read-only here.
type Ruling struct {
	FileName     string // Unique human-readable identifier (nome_arquivo)
	Year         int    // Year of the ruling (ano)
	Chamber      string // Deciding panel (camara)
	RulingNumber string // Decision number (acordao)
	CaseNumber   string // Underlying case number (processo)
	FullText     string // Complete document body (texto_completo)
}

// Result is a search hit: the ruling plus a highlighted excerpt of the text
// around the matched terms. The snippet is derived per query and never stored.
type Result struct {
	Ruling
	Snippet string
}

// RulingJSON is the API-friendly representation of a Ruling or Result.
type RulingJSON struct {
	FileName     string `json:"file_name"`
	Year         int    `json:"year"`
	Chamber      string `json:"chamber,omitempty"`
	RulingNumber string `json:"ruling_number"`
	CaseNumber   string `json:"case_number"`
	Snippet      string `json:"snippet,omitempty"`
	FullText     string `json:"full_text,omitempty"`
}

// ToJSON converts a Ruling to its API representation. The full parameter
// controls whether the (large) document body is included.
func (r *Ruling) ToJSON(full bool) RulingJSON {
	j := RulingJSON{
		FileName:     r.FileName,
		Year:         r.Year,
		Chamber:      r.Chamber,
		RulingNumber: r.RulingNumber,
		CaseNumber:   r.CaseNumber,
	}
	if full {
		j.FullText = r.FullText
	}
	return j
}

// ToJSON converts a Result to its API representation, snippet included.
func (r *Result) ToJSON(full bool) RulingJSON {
	j := r.Ruling.ToJSON(full)
	j.Snippet = r.Snippet
	return j
}

// MarshalJSON encodes a value with indentation for human-readable CLI output.
// Use this instead of json.Marshal when the output will be displayed to users.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Stats summarises the index contents.
type Stats struct {
	Rulings    int64 `json:"rulings"`     // Indexed rulings
	Chambers   int64 `json:"chambers"`    // Distinct chambers
	OldestYear int   `json:"oldest_year"` // Earliest ruling year (0 if empty)
	NewestYear int   `json:"newest_year"` // Latest ruling year (0 if empty)
}
