// tools_util.go provides helpers for reading MCP tool arguments.
//
// Tool arguments arrive as a generic map decoded from JSON. These helpers
// pull typed values out of it and fall back to a default when a parameter is
// absent or has the wrong type, so an optional argument an LLM got slightly
// wrong degrades to the default instead of failing the call.

package mcp

import (
	"strconv"

	"github.com/jpl-au/juris/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// arguments returns the request's argument map, or nil.
func arguments(req mcp.CallToolRequest) map[string]any {
	args, _ := req.Params.Arguments.(map[string]any)
	return args
}

// getString returns a string argument or def.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool returns a boolean argument or def. A string "true" is not a
// boolean and yields def.
func getBool(req mcp.CallToolRequest, name string, def bool) bool { //nolint:unparam
	if v, ok := arguments(req)[name].(bool); ok {
		return v
	}
	return def
}

// getInt returns a numeric argument truncated to int, or def. JSON has a
// single number type, which decodes as float64.
func getInt(req mcp.CallToolRequest, name string, def int) int { //nolint:unparam
	if v, ok := arguments(req)[name].(float64); ok {
		return int(v)
	}
	return def
}

// getStrings returns the string elements of an array argument. Non-string
// elements are skipped. Returns nil when the argument is absent.
func getStrings(req mcp.CallToolRequest, name string) []string {
	arr, ok := arguments(req)[name].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// getInts returns the integer elements of an array argument, such as the
// year filter. Numeric strings are accepted; anything else is skipped.
func getInts(req mcp.CallToolRequest, name string) []int {
	arr, ok := arguments(req)[name].([]any)
	if !ok {
		return nil
	}
	result := make([]int, 0, len(arr))
	for _, v := range arr {
		switch n := v.(type) {
		case float64:
			result = append(result, int(n))
		case string:
			if i, err := strconv.Atoi(n); err == nil {
				result = append(result, i)
			}
		}
	}
	return result
}

// jsonResult serialises v as indented JSON in a text result. Marshalling
// failures become tool errors so every failure reaches the client the same
// way.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := store.MarshalJSON(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
