// find.go implements the "juris find" command.
//
// Every term is matched as a prefix and all terms must appear in the ruling
// text. Year and chamber flags narrow the results; leaving a flag out never
// narrows.

package search

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jpl-au/juris/cmd"
	"github.com/jpl-au/juris/extension"
	"github.com/jpl-au/juris/internal/format"
	"github.com/jpl-au/juris/internal/log"
	"github.com/jpl-au/juris/internal/search"
	"github.com/jpl-au/juris/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// findJSON is the -o json shape of a search.
type findJSON struct {
	Query     string             `json:"query"`
	Count     int                `json:"count"`
	Truncated bool               `json:"truncated"`
	Results   []store.RulingJSON `json:"results"`
}

func (e *Extension) newFindCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "find <terms...>",
		Short: "Full-text search across rulings",
		Long: `Full-text search across rulings.

Each term matches as a prefix ("cassa" finds "cassação") and every term must
appear. Accents are ignored. Quotes, operators and other punctuation are
searched literally.

  juris find cassação inscrição
  juris find icms --year 2020 --year 2021
  juris find multa --chamber "1ª Câmara" --limit 20
  juris find substituição tributária -o json`,
		Args: cobra.ArbitraryArgs,
		RunE: e.runFind,
	}
	c.Flags().IntSlice(extension.FlagYear, nil, "Only rulings from these years (repeatable)")
	c.Flags().StringArray(extension.FlagChamber, nil, "Only rulings from these chambers (repeatable)")
	c.Flags().IntP(extension.FlagLimit, "n", 0, "Maximum results (default from config, at most 200)")
	c.Flags().BoolP(extension.FlagPathsOnly, "l", false, "Only output file names")
	c.Flags().Bool(extension.FlagFull, false, "Include the full text of each ruling")
	c.Flags().Bool(extension.FlagRaw, false, "Plain text output even on a terminal")
	return c
}

func (e *Extension) runFind(c *cobra.Command, args []string) error {
	ctx := c.Context()
	years, _ := c.Flags().GetIntSlice(extension.FlagYear)
	chambers, _ := c.Flags().GetStringArray(extension.FlagChamber)
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	pathsOnly, _ := c.Flags().GetBool(extension.FlagPathsOnly)
	full, _ := c.Flags().GetBool(extension.FlagFull)
	raw, _ := c.Flags().GetBool(extension.FlagRaw)

	if len(years) > 0 || len(chambers) > 0 {
		e.checkFilters(c, years, chambers)
	}

	req := search.Request{
		Query:    strings.Join(args, " "),
		Years:    years,
		Chambers: chambers,
		Limit:    limit,
	}
	resp, err := e.svc.Search(ctx, req)

	log.Event("search:find", "search").
		Path(e.svc.IndexPath()).
		Detail("query", req.Query).
		Detail("count", len(resp.Results)).
		Detail("cached", resp.Cached).
		Write(err)

	if errors.Is(err, search.ErrEmptyQuery) {
		if cmd.JSON() {
			return cmd.PrintJSON(findJSON{Query: req.Query, Results: []store.RulingJSON{}})
		}
		fmt.Fprintln(cmd.Out(), format.MsgIdle)
		return nil
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("find %q: %w", req.Query, err))
	}

	if cmd.JSON() {
		items := make([]store.RulingJSON, len(resp.Results))
		for i := range resp.Results {
			items[i] = resp.Results[i].ToJSON(full)
		}
		return cmd.PrintJSON(findJSON{
			Query:     resp.Query,
			Count:     len(items),
			Truncated: resp.Truncated,
			Results:   items,
		})
	}

	if pathsOnly {
		return format.Paths(cmd.Out(), resp)
	}
	if !raw && term.IsTerminal(int(os.Stdout.Fd())) {
		return format.Render(cmd.Out(), format.ResultsMarkdown(resp, format.MarkersFrom(e.cfg.Snippet()), full))
	}
	return format.Results(cmd.Out(), resp, full)
}

// checkFilters warns on stderr when the filter options cannot be loaded or
// a selection is not present in the index. Neither stops the search.
func (e *Extension) checkFilters(c *cobra.Command, years []int, chambers []string) {
	opts, err := e.svc.FilterOptions(c.Context())
	if err != nil {
		fmt.Fprintf(c.ErrOrStderr(), "warning: %s (%v)\n", format.MsgFilters, err)
		return
	}
	for _, y := range years {
		if !slices.Contains(opts.Years, y) {
			fmt.Fprintf(c.ErrOrStderr(), "warning: no rulings from %d in the index\n", y)
		}
	}
	for _, ch := range chambers {
		if !slices.Contains(opts.Chambers, ch) {
			fmt.Fprintf(c.ErrOrStderr(), "warning: chamber %q not in the index (see juris filters)\n", ch)
		}
	}
}
