// http.go implements the "juris http" command, a read-only JSON API.

package core

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/jpl-au/juris/cmd"
	"github.com/jpl-au/juris/extension"
	"github.com/jpl-au/juris/internal/httpapi"
	"github.com/jpl-au/juris/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newHTTPCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "http",
		Short: "Serve the search API over HTTP",
		Long: `Serve a read-only JSON API until interrupted.

  GET /api/search?q=cassação&year=2021&chamber=1ª Câmara&limit=20
  GET /api/rulings/{file}
  GET /api/filters
  GET /api/stats
  GET /healthz
  GET /metrics`,
		Args: cobra.NoArgs,
		RunE: e.runHTTP,
	}
	c.Flags().String(extension.FlagAddr, httpapi.DefaultAddr, "Listen address")
	return c
}

func (e *Extension) runHTTP(c *cobra.Command, _ []string) error {
	addr, _ := c.Flags().GetString(extension.FlagAddr)

	parent := c.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := httpapi.New(e.svc()).ListenAndServe(ctx, addr, func(a net.Addr) {
		fmt.Fprintf(cmd.Out(), "Listening on http://%s (index %s)\n", a, e.svc().IndexPath())
	})
	log.Event("core:http", "serve").Detail("addr", addr).Write(err)
	if err != nil {
		return fmt.Errorf("http %s: %w", addr, err)
	}
	return nil
}
