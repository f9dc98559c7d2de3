// filter.go composes the final SELECT for a compiled query.
//
// Separated from compile.go because filters are a SQL concern while
// compilation is an FTS5 expression concern. Filter values are always bound
// as parameters, never interpolated, so chamber names with quotes or
// punctuation are handled by the driver.
//
// Design: Argument order follows placeholder order - the MATCH expression
// first, then years, then chambers, then the row limit. Snippet markers are
// configuration rather than user input and are rendered as escaped SQL
// string literals so they do not disturb that order.

package query

import (
	"slices"
	"strconv"
	"strings"
)

// MaxResults is the hard cap on rows returned by a single search. Excess
// matches are dropped silently; this bounds rendering latency and is not a
// pagination mechanism.
const MaxResults = 200

// Snippet defaults, matching the FTS5 snippet() call the index was built for.
const (
	DefaultSnippetOpen     = "<b>"
	DefaultSnippetClose    = "</b>"
	DefaultSnippetEllipsis = "..."
	DefaultSnippetTokens   = 25

	// MaxSnippetTokens is the largest token window FTS5 accepts.
	MaxSnippetTokens = 64
)

// Filters holds the optional categorical selections. An empty slice means
// "no filter on that dimension", never "match nothing".
type Filters struct {
	Years    []int
	Chambers []string
}

// Empty reports whether no dimension is filtered.
func (f Filters) Empty() bool {
	return len(f.Years) == 0 && len(f.Chambers) == 0
}

// Normalise removes duplicate selections, preserving first-seen order.
// Empty chamber strings are dropped.
func (f Filters) Normalise() Filters {
	var out Filters
	for _, y := range f.Years {
		if !slices.Contains(out.Years, y) {
			out.Years = append(out.Years, y)
		}
	}
	for _, c := range f.Chambers {
		if c == "" || slices.Contains(out.Chambers, c) {
			continue
		}
		out.Chambers = append(out.Chambers, c)
	}
	return out
}

// Snippet configures the generated excerpt for each hit.
type Snippet struct {
	Open     string // inserted before each matched token
	Close    string // inserted after each matched token
	Ellipsis string // marks truncated text
	Tokens   int    // approximate excerpt length in tokens
}

// DefaultSnippet returns the snippet settings used when none are configured.
func DefaultSnippet() Snippet {
	return Snippet{
		Open:     DefaultSnippetOpen,
		Close:    DefaultSnippetClose,
		Ellipsis: DefaultSnippetEllipsis,
		Tokens:   DefaultSnippetTokens,
	}
}

// Options controls result shaping.
type Options struct {
	Limit   int // clamped to [1, MaxResults]; 0 means MaxResults
	Snippet Snippet
}

// Statement is a parameterised SQL query ready for execution.
type Statement struct {
	SQL  string
	Args []any
}

// ClampLimit bounds a requested row count to the result cap.
func ClampLimit(n int) int {
	if n <= 0 || n > MaxResults {
		return MaxResults
	}
	return n
}

// Compose builds the search statement for a compiled query and filters.
//
// Rows are ordered by year descending, then ruling number descending. The
// file name (unique per ruling) breaks any remaining ties so repeated runs
// against an unchanged index return identical sequences.
func Compose(c Compiled, f Filters, opts Options) Statement {
	f = f.Normalise()
	sn := opts.Snippet
	if sn.Tokens <= 0 {
		sn.Tokens = DefaultSnippetTokens
	}
	sn.Tokens = min(sn.Tokens, MaxSnippetTokens)

	var b strings.Builder
	b.WriteString(`SELECT ` + ColFileName + `, ` + ColYear + `, ` + ColChamber + `, ` +
		ColRulingNumber + `, ` + ColCaseNumber + `, snippet(` + Table + `, ` +
		strconv.Itoa(FullTextColumn) + `, ` + literal(sn.Open) + `, ` + literal(sn.Close) + `, ` +
		literal(sn.Ellipsis) + `, ` + strconv.Itoa(sn.Tokens) + `), ` + ColFullText + `
		FROM ` + Table + `
		WHERE ` + Table + ` MATCH ?`)

	args := make([]any, 0, 2+len(f.Years)+len(f.Chambers))
	args = append(args, c.Expr)

	if len(f.Years) > 0 {
		b.WriteString(` AND ` + ColYear + ` IN (` + placeholders(len(f.Years)) + `)`)
		for _, y := range f.Years {
			args = append(args, y)
		}
	}

	if len(f.Chambers) > 0 {
		b.WriteString(` AND ` + ColChamber + ` IN (` + placeholders(len(f.Chambers)) + `)`)
		for _, ch := range f.Chambers {
			args = append(args, ch)
		}
	}

	b.WriteString(` ORDER BY ` + ColYear + ` DESC, ` + ColRulingNumber + ` DESC, ` + ColFileName + ` ASC LIMIT ?`)
	args = append(args, ClampLimit(opts.Limit))

	return Statement{SQL: b.String(), Args: args}
}

// placeholders returns n comma-separated '?' markers.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// literal quotes s as a SQL string literal.
func literal(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
