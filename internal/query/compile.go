// Package query turns raw user input into SQLite FTS5 statements for the
// rulings index.
//
// The package owns two steps of the search pipeline. Compile converts free
// text into a match expression where every whitespace-separated term is a
// quoted prefix token. Compose wraps that expression in the SELECT that
// applies the year/chamber filters, the fixed sort order and the result cap.
//
// Neither step touches the database; the store package executes the
// resulting Statement.
package query

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyQuery is returned when the input contains no terms. It is a
// short-circuit signal rather than a failure: callers show an idle prompt
// and never reach the index.
var ErrEmptyQuery = errors.New("empty query")

// Compiled is the FTS5 form of a user query.
type Compiled struct {
	Terms  []string // normalised terms in input order
	Tokens []string // one quoted prefix token per term
	Expr   string   // column-scoped match expression bound to MATCH ?
}

// Terms splits raw input into search terms. Input is normalised to NFC so
// that decomposed accents ("c" + U+0327) match the composed forms stored in
// the index.
func Terms(raw string) []string {
	return strings.Fields(norm.NFC.String(raw))
}

// Compile converts raw input into a match expression.
//
// Every term is wrapped in double quotes (embedded quotes doubled) and marked
// with the prefix operator, so `cassa` matches cassação, cassado and so on.
// Quoting means FTS5 keywords and punctuation (AND, OR, NOT, NEAR, ':', '^',
// '-', '(', '*') are always literal text. Tokens are separated by spaces,
// which FTS5 treats as implicit AND.
//
// The expression is scoped to the full-text column so file names and
// metadata never produce matches.
func Compile(raw string) (Compiled, error) {
	terms := Terms(raw)
	if len(terms) == 0 {
		return Compiled{}, ErrEmptyQuery
	}

	tokens := make([]string, len(terms))
	for i, t := range terms {
		tokens[i] = Token(t)
	}

	return Compiled{
		Terms:  terms,
		Tokens: tokens,
		Expr:   ColFullText + " : (" + strings.Join(tokens, " ") + ")",
	}, nil
}

// Token returns the quoted prefix token for a single term.
func Token(term string) string {
	return `"` + strings.ReplaceAll(term, `"`, `""`) + `"*`
}
