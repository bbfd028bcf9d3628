package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/graftree/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/graftree/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/graftree/internal/version.Date={{.Date}}
)

// String formats the build information for the version command
func String() string {
	return fmt.Sprintf("graftree %s (commit %s, built %s)", Version, Commit, Date)
}
