// flags.go defines constants for all CLI flag names.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "paths-only" -> FlagPathsOnly).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagFull      = "full"       // Include the full ruling text
	FlagLocal     = "local"      // Use local config scope
	FlagPathsOnly = "paths-only" // Output file names only
	FlagRaw       = "raw"        // Plain output even on a terminal

	// String flags

	FlagAddr    = "addr"    // Listen address
	FlagChamber = "chamber" // Chamber filter (repeatable)

	// Integer flags

	FlagLimit = "limit" // Limit number of results
	FlagYear  = "year"  // Year filter (repeatable)
)
