// version.go implements the version command and its MCP tool.

package core

import (
	"context"
	"fmt"

	"github.com/jpl-au/juris/cmd"
	"github.com/jpl-au/juris/extension"
	"github.com/jpl-au/juris/internal/store"
	"github.com/jpl-au/juris/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, git commit, Go version, and platform.`,
		Run: func(_ *cobra.Command, _ []string) {
			info := version.Get()
			if cmd.JSON() {
				_ = cmd.PrintJSON(info)
				return
			}
			fmt.Fprint(cmd.Out(), info.String())
		},
	}
}

func versionTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("juris_version",
			mcp.WithDescription("Report the juris build version and the index being served."),
		),
		Handler: func(_ context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			info := version.Get()
			data, err := store.MarshalJSON(map[string]string{
				"version":    info.BuildTag,
				"git_commit": info.GitCommit,
				"build_time": info.BuildTime,
				"index":      extCtx.Service().IndexPath(),
			})
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(string(data)), nil
		},
	}
}
