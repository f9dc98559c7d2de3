// Package core provides the core extension for juris.
// It registers commands: config, guide, llm, version, stats, serve, http.
package core

import (
	"github.com/jpl-au/juris/extension"
	"github.com/jpl-au/juris/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Storeless     = (*Extension)(nil)
)

// Name returns "core" - this extension provides the fundamental commands.
func (e *Extension) Name() string { return "core" }

// Init keeps the shared context for the serve, http and stats commands.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

func (e *Extension) svc() service.Service { return e.ctx.Service() }

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		newLlmCmd(),
		newVersionCmd(),
		e.newStatsCmd(),
		e.newServeCmd(),
		e.newHTTPCmd(),
	}
}

// MCPTools returns the version tool.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{versionTool()}
}

// NoStoreCommands returns commands that never touch the index.
func (e *Extension) NoStoreCommands() []string {
	return []string{"config", "guide", "llm", "version"}
}
