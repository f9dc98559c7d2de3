/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE resolves the index path and builds the search
// service before any command that needs it. The index file itself is opened
// lazily on first search, so a missing index is reported by the command that
// touches it. Storeless commands (config, guide, version) skip resolution
// entirely and work on a machine with no index at all.

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/jpl-au/juris/internal/config"
	"github.com/jpl-au/juris/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "juris",
	Short: "Full-text search over tax-appeal rulings",
	Long: `Search the rulings of the Rio de Janeiro tax appeals council from a
pre-built SQLite FTS5 index. Every search term matches as a prefix and all
terms must appear; results can be narrowed by year and chamber.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		applyLogLevel()

		if cmd.HasParent() && !noStoreCommands[topLevelCmdName(cmd)] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("initialise extensions: %w", err)
			}
		}

		return nil
	},
}

// applyLogLevel sets the log level: --verbose wins, then log.level from
// config. A config that fails to load leaves the default in place; commands
// that need config report the error themselves.
func applyLogLevel() {
	if verbose {
		log.SetLevel(slog.LevelDebug)
		return
	}
	if cfg, err := config.Load(); err == nil {
		log.SetLevel(cfg.LogLevel())
	}
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "juris find icms", returns "find".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens the stderr logger, registers extensions, executes the command, and
// closes the search service before exit. Exit code 1 indicates error.
func Execute() {
	log.Open(os.Stderr, slog.LevelWarn)
	defer log.Close()

	registerExtensions()
	err := rootCmd.Execute()

	if extService != nil {
		if closeErr := extService.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing index: %v\n", closeErr)
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
