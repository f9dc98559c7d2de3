// Package format provides output formatting for CLI display.
//
// Centralises presentation so that commands focus on calling the search
// service while this package handles the result layout, snippet markers,
// full-text wrapping and terminal markdown rendering.
//
// Two layouts exist for each view: plain text for pipes and redirects, and
// markdown that Render turns into styled terminal output with glamour.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/jpl-au/juris/internal/query"
	"github.com/jpl-au/juris/internal/search"
	"github.com/jpl-au/juris/internal/store"
)

// Width is the column at which full ruling text is wrapped.
const Width = 120

// User-facing messages.
const (
	MsgIdle      = "Digite um termo de busca e pressione Enter para ver os resultados."
	MsgNoResults = "Nenhum resultado encontrado com os filtros e termos de busca selecionados."
	MsgFilters   = "Não foi possível carregar os filtros."
	MsgTruncated = "Exibindo os primeiros %d resultados; refine a busca para ver outros."
)

// Header returns the results heading for n hits.
func Header(n int) string {
	return fmt.Sprintf("Resultados da busca: %d acórdãos encontrados", n)
}

// Markers identifies the snippet highlight markers the service was
// configured with, so renderers can restyle them.
type Markers struct {
	Open  string
	Close string
}

// MarkersFrom returns the markers of a snippet configuration.
func MarkersFrom(sn query.Snippet) Markers {
	return Markers{Open: sn.Open, Close: sn.Close}
}

// restyle replaces the highlight markers in s with open/close.
func (m Markers) restyle(s, open, close string) string {
	if m.Open == "" || m.Close == "" {
		return s
	}
	return strings.NewReplacer(m.Open, open, m.Close, close).Replace(s)
}

// Wrap wraps text at Width columns, breaking words longer than a line.
func Wrap(text string) string {
	return wrap.String(wordwrap.String(text, Width), Width)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func yearOrNA(y int) string {
	if y == 0 {
		return "N/A"
	}
	return strconv.Itoa(y)
}

// Results prints a search response as plain text.
//
// Each hit shows its file name, the year / ruling / case line, the chamber
// and the snippet in a "Contexto" line. With full, the wrapped full text
// follows each hit.
func Results(w io.Writer, resp search.Response, full bool) error {
	if len(resp.Results) == 0 {
		_, err := fmt.Fprintln(w, MsgNoResults)
		return err
	}

	fmt.Fprintln(w, Header(len(resp.Results)))
	if resp.Truncated {
		fmt.Fprintf(w, MsgTruncated+"\n", resp.Limit)
	}
	for _, r := range resp.Results {
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.FileName)
		fmt.Fprintf(w, "  Ano: %s  Acórdão: %s  Processo: %s\n",
			yearOrNA(r.Year), orNA(r.RulingNumber), orNA(r.CaseNumber))
		if r.Chamber != "" {
			fmt.Fprintf(w, "  Câmara: %s\n", r.Chamber)
		}
		fmt.Fprintf(w, "  Contexto: ...%s...\n", r.Snippet)
		if full {
			fmt.Fprintln(w)
			fmt.Fprintln(w, Wrap(r.FullText))
		}
	}
	return nil
}

// Paths prints just the file names of a search response, one per line.
func Paths(w io.Writer, resp search.Response) error {
	for _, r := range resp.Results {
		if _, err := fmt.Fprintln(w, r.FileName); err != nil {
			return err
		}
	}
	return nil
}

// ResultsMarkdown returns a search response as markdown. Highlight markers
// become bold text.
func ResultsMarkdown(resp search.Response, m Markers, full bool) string {
	var b strings.Builder
	if len(resp.Results) == 0 {
		b.WriteString("> " + MsgNoResults + "\n")
		return b.String()
	}

	b.WriteString("## " + Header(len(resp.Results)) + "\n\n")
	if resp.Truncated {
		fmt.Fprintf(&b, "_"+MsgTruncated+"_\n\n", resp.Limit)
	}
	for _, r := range resp.Results {
		b.WriteString("---\n\n")
		fmt.Fprintf(&b, "##### 📄 **%s**\n\n", r.FileName)
		fmt.Fprintf(&b, "**Ano:** %s | **Acórdão:** %s | **Processo:** %s\n\n",
			yearOrNA(r.Year), orNA(r.RulingNumber), orNA(r.CaseNumber))
		if r.Chamber != "" {
			fmt.Fprintf(&b, "**Câmara:** %s\n\n", r.Chamber)
		}
		fmt.Fprintf(&b, "**Contexto:** ...%s...\n\n", m.restyle(r.Snippet, "**", "**"))
		if full {
			b.WriteString("```\n" + Wrap(r.FullText) + "\n```\n\n")
		}
	}
	return b.String()
}

// Ruling prints one ruling's metadata and wrapped full text.
func Ruling(w io.Writer, r *store.Ruling) error {
	fmt.Fprintln(w, r.FileName)
	fmt.Fprintf(w, "Ano: %s  Acórdão: %s  Processo: %s\n",
		yearOrNA(r.Year), orNA(r.RulingNumber), orNA(r.CaseNumber))
	if r.Chamber != "" {
		fmt.Fprintf(w, "Câmara: %s\n", r.Chamber)
	}
	fmt.Fprintln(w)
	_, err := fmt.Fprintln(w, Wrap(r.FullText))
	return err
}

// FilterOptions prints the available years and chambers.
func FilterOptions(w io.Writer, opts search.Options) error {
	years := make([]string, len(opts.Years))
	for i, y := range opts.Years {
		years[i] = strconv.Itoa(y)
	}
	fmt.Fprintf(w, "Anos: %s\n", strings.Join(years, ", "))
	fmt.Fprintln(w, "Câmaras:")
	for _, c := range opts.Chambers {
		fmt.Fprintf(w, "  %s\n", c)
	}
	return nil
}

// Stats prints index statistics.
func Stats(w io.Writer, path string, st *store.Stats) error {
	fmt.Fprintf(w, "Índice:    %s\n", path)
	fmt.Fprintf(w, "Acórdãos:  %d\n", st.Rulings)
	fmt.Fprintf(w, "Câmaras:   %d\n", st.Chambers)
	if st.Rulings > 0 {
		fmt.Fprintf(w, "Anos:      %d–%d\n", st.OldestYear, st.NewestYear)
	}
	return nil
}

// Render writes markdown to w, styled for a terminal. If styling fails the
// raw markdown is written instead.
func Render(w io.Writer, md string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(Width),
	)
	if err == nil {
		if out, err := r.Render(md); err == nil {
			_, err = io.WriteString(w, out)
			return err
		}
	}
	_, err = io.WriteString(w, md)
	return err
}
