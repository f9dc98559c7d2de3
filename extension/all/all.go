// Package all imports all built-in juris extensions.
// Import this package to register all built-in commands.
package all

import (
	// Built-in extensions - each registers itself via init()
	_ "github.com/jpl-au/juris/extension/core"
	_ "github.com/jpl-au/juris/extension/search"
)
