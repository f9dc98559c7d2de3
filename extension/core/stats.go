// stats.go implements the "juris stats" command.

package core

import (
	"fmt"

	"github.com/jpl-au/juris/cmd"
	"github.com/jpl-au/juris/internal/format"
	"github.com/jpl-au/juris/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show index statistics",
		Long:  `Show the index location, the number of rulings and chambers, and the range of years covered.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			st, err := e.svc().Stats(c.Context())
			log.Event("core:stats", "read").Path(e.svc().IndexPath()).Write(err)
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("stats: %w", err))
			}
			if cmd.JSON() {
				return cmd.PrintJSON(map[string]any{"index": e.svc().IndexPath(), "stats": st})
			}
			return format.Stats(cmd.Out(), e.svc().IndexPath(), st)
		},
	}
}
