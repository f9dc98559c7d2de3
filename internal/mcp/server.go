// Package mcp implements the Model Context Protocol server, exposing juris
// searches to LLMs. This lets AI assistants search the rulings index, read
// full decisions and discover the available filters through a standardised
// protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jpl-au/juris/internal/log"
	"github.com/jpl-au/juris/internal/service"
	"github.com/jpl-au/juris/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP server over stdio.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
//
// Design: The server starts even if the index cannot be opened. The index is
// opened lazily on the first tool call, and tools report the failure as a
// tool error the client can show, rather than the server exiting before the
// client connects.
//
// extra carries tools contributed by extensions; they are registered after
// the built-in tools.
func Serve(svc service.Service, extra ...server.ServerTool) error {
	// stdout is reserved for MCP JSON-RPC messages; the log package writes
	// to stderr.
	logger := log.Logger()

	s := NewServer(svc, extra...)

	logger.Info("juris MCP server ready", slog.String("version", version.Short()), slog.String("transport", "stdio"), slog.String("index", svc.IndexPath()))

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		logger.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with every juris tool and resource
// registered, plus any extra tools.
func NewServer(svc service.Service, extra ...server.ServerTool) *server.MCPServer {
	h := &handlers{svc: svc}

	s := server.NewMCPServer(
		"juris",
		version.Short(),
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)
	if len(extra) > 0 {
		s.AddTools(extra...)
	}
	return s
}

// handlers provides MCP request handlers with access to the search service.
type handlers struct {
	svc service.Service
}

// registerResources adds URI-based access to full ruling text.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"juris://rulings/{file}",
			"Ruling",
			mcp.WithTemplateDescription("Full text of a ruling by file name"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		h.readRuling,
	)
}

// registerTools exposes juris operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("juris_search",
			mcp.WithDescription("Full-text search over tax-appeal rulings. Every word is a prefix match and all words must appear. Results are sorted by year then ruling number, newest first, at most 200."),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search terms, e.g. 'cassação inscrição estadual'")),
			mcp.WithArray("years", mcp.Description("Only rulings from these years"), mcp.WithNumberItems()),
			mcp.WithArray("chambers", mcp.Description("Only rulings from these chambers (see juris_filters)"), mcp.WithStringItems()),
			mcp.WithNumber("limit", mcp.Description("Maximum results (1-200, default 200)")),
			mcp.WithBoolean("full", mcp.Description("Include the full text of each ruling")),
		),
		h.search,
	)

	s.AddTool(
		mcp.NewTool("juris_show",
			mcp.WithDescription("Read the full text of one ruling"),
			mcp.WithString("file", mcp.Required(), mcp.Description("Ruling file name as returned by juris_search")),
		),
		h.show,
	)

	s.AddTool(
		mcp.NewTool("juris_filters",
			mcp.WithDescription("List the years and chambers available for filtering"),
		),
		h.filters,
	)

	s.AddTool(
		mcp.NewTool("juris_stats",
			mcp.WithDescription("Show index statistics: number of rulings and chambers, year range"),
		),
		h.stats,
	)

	s.AddTool(
		mcp.NewTool("juris_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (index.path, search.max_results, search.timeout, ...) or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("juris_guide",
			mcp.WithDescription("Get help/guide content for juris commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'find') or empty for the main guide")),
		),
		h.getGuide,
	)
}
