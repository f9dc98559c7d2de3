// serve.go implements the "juris serve" command for MCP server operation.
//
// Separated from extension.go because serve has unique lifecycle requirements.
// Unlike other commands that run and exit, serve blocks handling MCP requests
// over stdio until the client disconnects.
//
// Design: serve uses the shared search service like every other command, so
// the index is opened on the first tool call and a missing index is reported
// per call rather than refusing to start.

package core

import (
	"github.com/jpl-au/juris/extension"
	"github.com/jpl-au/juris/internal/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Use --index to serve a specific index:
  juris serve --index /data/jurisprudencia_fts.db`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(e.svc(), extension.ServerTools(e.ctx)...)
		},
	}
}
