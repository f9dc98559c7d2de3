/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that resolves
// the index, loads config, and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before the index path is known. The service is created
// once and shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/juris/extension"
	"github.com/jpl-au/juris/internal/config"
	"github.com/jpl-au/juris/internal/index"
	"github.com/jpl-au/juris/internal/log"
	"github.com/jpl-au/juris/internal/repo"
	"github.com/jpl-au/juris/internal/search"
)

// noStoreCommands lists commands that bypass index resolution.
// Built dynamically from bootstrap commands plus extension-declared storeless commands.
var noStoreCommands map[string]bool

// buildNoStoreCommands creates the set of commands that skip index resolution.
//
// help and completion are cobra built-ins; everything else is declared by
// extensions through extension.Storeless.
func buildNoStoreCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Storeless); ok {
			for _, name := range s.NoStoreCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	extService *search.Service
	initOnce   sync.Once
	initErr    error
)

// initExtensions builds the search service and injects it into extensions.
//
// The index path is resolved here but the file is not opened: index.Manager
// opens it on first search, and an unavailable index surfaces as
// search.ErrStoreUnavailable from that search. Only failures to load config
// or to locate any index path at all stop the command early.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		loc, err := repo.Resolve(Index(), cfg)
		log.Event("cmd:init", "resolve").
			Path(loc.Path).
			Detail("source", string(loc.Source)).
			Write(err)
		if err != nil {
			initErr = err
			return
		}

		extService = search.New(index.New(loc.Path), cfg)
		extContext = extension.NewContext(extService, cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		noStoreCommands = buildNoStoreCommands()
	})
}
