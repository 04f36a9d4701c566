// Package version exposes build metadata for the insights binary.
package version

import "fmt"

// Set at build time via -ldflags.
var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// Commit is the Git hash the binary was built from.
	Commit = "none"
)

// String renders the full version line.
func String() string {
	return fmt.Sprintf("insights %s (%s)", Version, Commit)
}
