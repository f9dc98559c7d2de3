// tools_guide.go implements the MCP tool for accessing help content.
//
// The guide tool gives LLMs the same documentation as "juris guide",
// including how search terms are matched.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/juris/guide"
	"github.com/jpl-au/juris/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getGuide handles juris_guide tool calls.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:guide", "read").Detail("topic", topic).Write(err)

	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
