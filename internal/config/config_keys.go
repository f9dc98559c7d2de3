// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. config.go focuses on YAML structure and loading, while this
// file handles the CLI and MCP interface where config is accessed by string
// keys (e.g., "search.snippet_tokens").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero". Defaults are only applied
// when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"index.path",
		"search.max_results", "search.snippet_tokens",
		"search.snippet_open", "search.snippet_close", "search.snippet_ellipsis",
		"search.timeout",
		"cache.size", "cache.ttl",
		"log.level",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the effective value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	sn := c.Snippet()
	switch key {
	case "index.path":
		return c.IndexPath(), nil
	case "search.max_results":
		return strconv.Itoa(c.MaxResults()), nil
	case "search.snippet_tokens":
		return strconv.Itoa(sn.Tokens), nil
	case "search.snippet_open":
		return sn.Open, nil
	case "search.snippet_close":
		return sn.Close, nil
	case "search.snippet_ellipsis":
		return sn.Ellipsis, nil
	case "search.timeout":
		return c.Timeout().String(), nil
	case "cache.size":
		return strconv.Itoa(c.CacheSize()), nil
	case "cache.ttl":
		return c.CacheTTL().String(), nil
	case "log.level":
		return strings.ToLower(c.LogLevel().String()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key. The result is validated as a
// whole so bounds are enforced the same way as when loading from disk.
func (c *Config) Set(key, value string) error {
	prev := *c
	if err := c.set(key, value); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		*c = prev
		return err
	}
	return nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case "index.path":
		c.Index.Path = value
	case "search.max_results":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: search.max_results must be an integer", ErrInvalidValue)
		}
		c.Search.MaxResults = &n
	case "search.snippet_tokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: search.snippet_tokens must be an integer", ErrInvalidValue)
		}
		c.Search.SnippetTokens = &n
	case "search.snippet_open":
		c.Search.SnippetOpen = &value
	case "search.snippet_close":
		c.Search.SnippetClose = &value
	case "search.snippet_ellipsis":
		c.Search.SnippetEllipsis = &value
	case "search.timeout":
		c.Search.Timeout = &value
	case "cache.size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: cache.size must be an integer", ErrInvalidValue)
		}
		c.Cache.Size = &n
	case "cache.ttl":
		c.Cache.TTL = &value
	case "log.level":
		c.Log.Level = strings.ToLower(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all effective configuration values as a map.
func (c *Config) All() map[string]string {
	out := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		v, _ := c.Get(k)
		out[k] = v
	}
	return out
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "index.path":
		return c.Index.Path != ""
	case "search.max_results":
		return c.Search.MaxResults != nil
	case "search.snippet_tokens":
		return c.Search.SnippetTokens != nil
	case "search.snippet_open":
		return c.Search.SnippetOpen != nil
	case "search.snippet_close":
		return c.Search.SnippetClose != nil
	case "search.snippet_ellipsis":
		return c.Search.SnippetEllipsis != nil
	case "search.timeout":
		return c.Search.Timeout != nil
	case "cache.size":
		return c.Cache.Size != nil
	case "cache.ttl":
		return c.Cache.TTL != nil
	case "log.level":
		return c.Log.Level != ""
	default:
		return false
	}
}
