package core

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/juris/extension"
	"github.com/jpl-au/juris/internal/config"
	"github.com/jpl-au/juris/internal/index"
	"github.com/jpl-au/juris/internal/search"
	"github.com/jpl-au/juris/internal/store/storetest"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	e := &Extension{}
	var names []string
	for _, c := range e.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"config", "guide", "llm", "version", "stats", "serve", "http"}, names)

	// Every storeless command is one of ours.
	for _, n := range e.NoStoreCommands() {
		assert.Contains(t, names, n)
	}
	assert.NotContains(t, e.NoStoreCommands(), "serve")
	assert.NotContains(t, e.NoStoreCommands(), "http")
}

func TestVersionTool(t *testing.T) {
	path := storetest.Build(t, storetest.Ruling(1, 2020, "A", "icms"))
	svc := search.New(index.New(path), nil)
	t.Cleanup(func() { svc.Close() })

	e := &Extension{}
	require.NoError(t, e.Init(extension.NewContext(svc, &config.Config{})))

	tools := e.MCPTools()
	require.Len(t, tools, 1)
	assert.Equal(t, "juris_version", tools[0].Tool.Name)

	res, err := tools[0].Handler(context.Background(), e.ctx, mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(text.Text), &got))
	assert.Equal(t, path, got["index"])
	assert.Equal(t, "dev", got["version"])
}
