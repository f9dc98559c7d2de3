// Package config provides reading and writing of juris configuration.
// Supports both global (~/.juris/config.yaml) and local (.juris/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jpl-au/juris/internal/query"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Dir is the directory holding juris configuration, both in the user's home
// directory and in a project directory.
const Dir = ".juris"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.juris/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .juris/config.yaml
	ScopeLocal
)

// Index locates the full-text index file.
type Index struct {
	Path string `yaml:"path,omitempty"`
}

// Search holds search shaping options.
type Search struct {
	MaxResults      *int    `yaml:"max_results,omitempty"`
	SnippetTokens   *int    `yaml:"snippet_tokens,omitempty"`
	SnippetOpen     *string `yaml:"snippet_open,omitempty"`
	SnippetClose    *string `yaml:"snippet_close,omitempty"`
	SnippetEllipsis *string `yaml:"snippet_ellipsis,omitempty"`
	Timeout         *string `yaml:"timeout,omitempty"`
}

// Cache holds options for the in-memory search memo.
type Cache struct {
	Size *int    `yaml:"size,omitempty"`
	TTL  *string `yaml:"ttl,omitempty"`
}

// Log holds logging options.
type Log struct {
	Level string `yaml:"level,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultTimeout   = 10 * time.Second
	DefaultCacheSize = 128
	DefaultCacheTTL  = 10 * time.Minute
	DefaultLogLevel  = "warn"
)

// Validation bounds for configuration values.
const (
	MaxCacheSize = 100000
	MaxTimeout   = 10 * time.Minute
	MaxCacheTTL  = 24 * time.Hour
)

// Config contains configuration for juris.
type Config struct {
	Index  Index  `yaml:"index,omitempty"`
	Search Search `yaml:"search,omitempty"`
	Cache  Cache  `yaml:"cache,omitempty"`
	Log    Log    `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Search.MaxResults != nil {
		if v := *c.Search.MaxResults; v < 1 || v > query.MaxResults {
			return fmt.Errorf("%w: search.max_results must be between 1 and %d, got %d",
				ErrInvalidValue, query.MaxResults, v)
		}
	}
	if c.Search.SnippetTokens != nil {
		if v := *c.Search.SnippetTokens; v < 1 || v > query.MaxSnippetTokens {
			return fmt.Errorf("%w: search.snippet_tokens must be between 1 and %d, got %d",
				ErrInvalidValue, query.MaxSnippetTokens, v)
		}
	}
	if c.Search.Timeout != nil {
		if _, err := parseDuration("search.timeout", *c.Search.Timeout, MaxTimeout); err != nil {
			return err
		}
	}
	if c.Cache.Size != nil {
		if v := *c.Cache.Size; v < 0 || v > MaxCacheSize {
			return fmt.Errorf("%w: cache.size must be between 0 and %d, got %d",
				ErrInvalidValue, MaxCacheSize, v)
		}
	}
	if c.Cache.TTL != nil {
		if _, err := parseDuration("cache.ttl", *c.Cache.TTL, MaxCacheTTL); err != nil {
			return err
		}
	}
	if c.Log.Level != "" {
		if _, err := parseLevel(c.Log.Level); err != nil {
			return err
		}
	}
	return nil
}

// IndexPath returns the configured index path, or "" to fall back to discovery.
func (c *Config) IndexPath() string {
	return c.Index.Path
}

// MaxResults returns the default row limit for a search (defaults to 200).
func (c *Config) MaxResults() int {
	if c.Search.MaxResults == nil {
		return query.MaxResults
	}
	return *c.Search.MaxResults
}

// Snippet returns the snippet markers and token window, falling back to the
// index defaults for anything not set.
func (c *Config) Snippet() query.Snippet {
	sn := query.DefaultSnippet()
	if c.Search.SnippetTokens != nil {
		sn.Tokens = *c.Search.SnippetTokens
	}
	if c.Search.SnippetOpen != nil {
		sn.Open = *c.Search.SnippetOpen
	}
	if c.Search.SnippetClose != nil {
		sn.Close = *c.Search.SnippetClose
	}
	if c.Search.SnippetEllipsis != nil {
		sn.Ellipsis = *c.Search.SnippetEllipsis
	}
	return sn
}

// Timeout returns the per-search timeout (defaults to 10s). Zero disables it.
func (c *Config) Timeout() time.Duration {
	if c.Search.Timeout == nil {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(*c.Search.Timeout)
	if err != nil {
		return DefaultTimeout
	}
	return d
}

// CacheSize returns the number of memoised searches (defaults to 128).
// Zero disables the memo.
func (c *Config) CacheSize() int {
	if c.Cache.Size == nil {
		return DefaultCacheSize
	}
	return *c.Cache.Size
}

// CacheTTL returns how long a memoised search stays valid (defaults to 10m).
func (c *Config) CacheTTL() time.Duration {
	if c.Cache.TTL == nil {
		return DefaultCacheTTL
	}
	d, err := time.ParseDuration(*c.Cache.TTL)
	if err != nil {
		return DefaultCacheTTL
	}
	return d
}

// LogLevel returns the minimum log level (defaults to warn).
func (c *Config) LogLevel() slog.Level {
	lvl, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.juris/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return loadPath(path, scope)
}

func loadPath(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}

func parseDuration(key, s string, limit time.Duration) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 || d > limit {
		return 0, fmt.Errorf("%w: %s must be a duration between 0s and %s, got %q",
			ErrInvalidValue, key, limit, s)
	}
	return d, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, fmt.Errorf("%w: log.level must be one of debug, info, warn, error, got %q",
			ErrInvalidValue, s)
	}
	return lvl, nil
}
