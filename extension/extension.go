// Package extension provides the plugin architecture for juris. Extensions
// bundle related CLI commands and MCP tools and register themselves at init
// time, so features are added without touching the command root.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for juris extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns additional tools for the MCP server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context before any of their
// commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Storeless is an optional interface for extensions with commands that
// never touch the index. Commands returned by NoStoreCommands() run without
// resolving an index path, so they work on a machine with no index at all
// (config, guide, version).
type Storeless interface {
	NoStoreCommands() []string
}
