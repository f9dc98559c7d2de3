// Package repo locates the full-text index for juris.
//
// The index is a single pre-built SQLite file, jurisprudencia_fts.db. Its
// location is resolved in this order:
//   - an explicit path (the --index flag)
//   - the JURIS_INDEX environment variable
//   - index.path from configuration
//   - discovery, walking up from the working directory
//
// The discovery algorithm mirrors git's approach: starting from the current
// directory, walk up until the index file is found either directly in a
// directory or inside its .juris directory, or the filesystem root is reached.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jpl-au/juris/internal/config"
)

const (
	// DBFile is the index filename.
	DBFile = "jurisprudencia_fts.db"
	// EnvIndex names the environment variable overriding the index path.
	EnvIndex = "JURIS_INDEX"
)

// ErrNotFound is returned when no index can be located.
var ErrNotFound = errors.New("index not found (use --index, set " + EnvIndex + " or run from a directory containing " + DBFile + ")")

// Source records where a resolved index path came from.
type Source string

const (
	SourceFlag      Source = "flag"
	SourceEnv       Source = "env"
	SourceConfig    Source = "config"
	SourceDiscovery Source = "discovery"
)

// Location is a resolved index path.
type Location struct {
	Path   string
	Source Source
}

// Resolve returns the index location. Explicit paths (flag, environment,
// config) are returned as absolute paths without checking that they exist;
// opening the index reports that. cfg may be nil.
func Resolve(flag string, cfg *config.Config) (Location, error) {
	if flag != "" {
		return explicit(flag, SourceFlag)
	}
	if env := os.Getenv(EnvIndex); env != "" {
		return explicit(env, SourceEnv)
	}
	if cfg != nil && cfg.IndexPath() != "" {
		return explicit(cfg.IndexPath(), SourceConfig)
	}
	path, err := Discover()
	if err != nil {
		return Location{}, err
	}
	return Location{Path: path, Source: SourceDiscovery}, nil
}

func explicit(path string, src Source) (Location, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Location{}, fmt.Errorf("resolve %s index path %q: %w", src, path, err)
	}
	return Location{Path: abs, Source: src}, nil
}

// Discover walks up the directory tree looking for the index file.
// Returns the full path to the index if found.
func Discover() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return DiscoverFrom(dir)
}

// DiscoverFrom walks up from dir looking for the index file.
func DiscoverFrom(dir string) (string, error) {
	for {
		for _, p := range []string{
			filepath.Join(dir, DBFile),
			filepath.Join(dir, config.Dir, DBFile),
		} {
			if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
				return p, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}
