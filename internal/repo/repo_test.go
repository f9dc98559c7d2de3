package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/juris/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestDiscoverFrom(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0755))

	t.Run("not found", func(t *testing.T) {
		_, err := DiscoverFrom(deep)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("in .juris of ancestor", func(t *testing.T) {
		want := filepath.Join(root, config.Dir, DBFile)
		touch(t, want)
		got, err := DiscoverFrom(deep)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("nearest wins", func(t *testing.T) {
		want := filepath.Join(root, "a", DBFile)
		touch(t, want)
		got, err := DiscoverFrom(deep)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("directory named like the index is skipped", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(deep, DBFile), 0755))
		got, err := DiscoverFrom(deep)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "a", DBFile), got)
	})
}

func TestResolve_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	touch(t, filepath.Join(dir, DBFile))

	cfg := &config.Config{}
	require.NoError(t, cfg.Set("index.path", "/from/config.db"))

	t.Setenv(EnvIndex, "/from/env.db")
	loc, err := Resolve("/from/flag.db", cfg)
	require.NoError(t, err)
	assert.Equal(t, Location{Path: "/from/flag.db", Source: SourceFlag}, loc)

	loc, err = Resolve("", cfg)
	require.NoError(t, err)
	assert.Equal(t, Location{Path: "/from/env.db", Source: SourceEnv}, loc)

	t.Setenv(EnvIndex, "")
	loc, err = Resolve("", cfg)
	require.NoError(t, err)
	assert.Equal(t, Location{Path: "/from/config.db", Source: SourceConfig}, loc)

	loc, err = Resolve("", nil)
	require.NoError(t, err)
	assert.Equal(t, SourceDiscovery, loc.Source)
	assert.Equal(t, DBFile, filepath.Base(loc.Path))
}

func TestResolve_RelativeMadeAbsolute(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvIndex, "")

	loc, err := Resolve("data/idx.db", nil)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(loc.Path))
	assert.Equal(t, filepath.Join("data", "idx.db"), filepath.Join(filepath.Base(filepath.Dir(loc.Path)), filepath.Base(loc.Path)))
}
