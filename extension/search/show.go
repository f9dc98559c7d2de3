// show.go implements the "juris show" command.

package search

import (
	"fmt"

	"github.com/jpl-au/juris/cmd"
	"github.com/jpl-au/juris/internal/format"
	"github.com/jpl-au/juris/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Show the full text of a ruling",
		Long: `Show one ruling's metadata and full text, wrapped at 120 columns.

The file name is the one printed by find:
  juris show acordao-12345.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			r, err := e.svc.Ruling(c.Context(), args[0])
			log.Event("search:show", "read").Path(args[0]).Write(err)
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("show %s: %w", args[0], err))
			}
			if cmd.JSON() {
				return cmd.PrintJSON(r.ToJSON(true))
			}
			return format.Ruling(cmd.Out(), r)
		},
	}
}
