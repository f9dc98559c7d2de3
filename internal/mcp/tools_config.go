// tools_config.go implements the MCP tool for reading configuration.
//
// Design: The server is read-only. Configuration is loaded when the server
// starts and snapshotted by the search service, so a set tool would report
// success without affecting the running server; changes go through
// "juris config" and a restart.

package mcp

import (
	"context"

	"github.com/jpl-au/juris/internal/config"
	"github.com/jpl-au/juris/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// configGet handles juris_config_get tool calls.
func (h *handlers) configGet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Event("mcp:config_get", "get").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	key := getString(req, "key", "")
	if key == "" {
		log.Event("mcp:config_get", "list").Write(nil)
		return jsonResult(cfg.All())
	}

	v, err := cfg.Get(key)

	log.Event("mcp:config_get", "get").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]string{key: v})
}
