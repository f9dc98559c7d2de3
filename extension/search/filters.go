// filters.go implements the "juris filters" command.

package search

import (
	"fmt"

	"github.com/jpl-au/juris/cmd"
	"github.com/jpl-au/juris/internal/format"
	"github.com/jpl-au/juris/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the years and chambers available for filtering",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			opts, err := e.svc.FilterOptions(c.Context())
			log.Event("search:filters", "list").
				Detail("years", len(opts.Years)).
				Detail("chambers", len(opts.Chambers)).
				Write(err)
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("%s: %w", format.MsgFilters, err))
			}
			if cmd.JSON() {
				return cmd.PrintJSON(opts)
			}
			return format.FilterOptions(cmd.Out(), opts)
		},
	}
}
