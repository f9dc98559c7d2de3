// tools_search.go implements MCP tools for searching the rulings index.
//
// Design: Results are returned as JSON for easy LLM parsing. Full text is
// omitted from search results unless requested because rulings are long;
// juris_show fetches one on demand. Errors from the search taxonomy become
// tool errors with a readable message, never protocol errors.

package mcp

import (
	"context"
	"errors"

	"github.com/jpl-au/juris/internal/log"
	"github.com/jpl-au/juris/internal/search"
	"github.com/jpl-au/juris/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// searchResult is the JSON shape of a juris_search response.
type searchResult struct {
	Query     string             `json:"query"`
	Count     int                `json:"count"`
	Truncated bool               `json:"truncated"`
	Results   []store.RulingJSON `json:"results"`
}

// search handles juris_search tool calls.
func (h *handlers) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}

	sreq := search.Request{
		Query:    q,
		Years:    getInts(req, "years"),
		Chambers: getStrings(req, "chambers"),
		Limit:    getInt(req, "limit", 0),
	}
	full := getBool(req, "full", false)

	resp, err := h.svc.Search(ctx, sreq)

	log.Event("mcp:search", "search").Detail("query", q).Detail("count", len(resp.Results)).Write(err)

	if err != nil {
		return toolError(err), nil
	}

	out := searchResult{
		Query:     resp.Query,
		Count:     len(resp.Results),
		Truncated: resp.Truncated,
		Results:   make([]store.RulingJSON, len(resp.Results)),
	}
	for i := range resp.Results {
		out.Results[i] = resp.Results[i].ToJSON(full)
	}
	return jsonResult(out)
}

// show handles juris_show tool calls.
func (h *handlers) show(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file, err := req.RequireString("file")
	if err != nil {
		return mcp.NewToolResultError("file is required"), nil //nolint:nilerr
	}

	r, err := h.svc.Ruling(ctx, file)

	log.Event("mcp:show", "read").Path(file).Write(err)

	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(r.ToJSON(true))
}

// filters handles juris_filters tool calls.
func (h *handlers) filters(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts, err := h.svc.FilterOptions(ctx)

	log.Event("mcp:filters", "list").Detail("years", len(opts.Years)).Detail("chambers", len(opts.Chambers)).Write(err)

	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(opts)
}

// stats handles juris_stats tool calls.
func (h *handlers) stats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := h.svc.Stats(ctx)

	log.Event("mcp:stats", "read").Write(err)

	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(st)
}

// toolError turns a service error into a tool error result with guidance
// the LLM can act on.
func toolError(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		return mcp.NewToolResultError("query has no search terms")
	case errors.Is(err, search.ErrNotFound):
		return mcp.NewToolResultError(err.Error() + " (use a file name returned by juris_search)")
	case errors.Is(err, search.ErrStoreUnavailable):
		return mcp.NewToolResultError("search index unavailable: " + err.Error())
	default:
		return mcp.NewToolResultError(err.Error())
	}
}
