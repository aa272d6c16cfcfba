// Package version provides build-time version information.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/cwbudde/algo-deriv/internal/version.Version=1.0.0 \
//	                   -X github.com/cwbudde/algo-deriv/internal/version.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/deriv
package version

var (
	// Version is the semantic version (e.g., "1.0.0").
	Version = "dev"

	// Commit is the short git commit hash.
	Commit = "unknown"
)

// String returns a formatted version string.
func String() string {
	return Version + " (" + Commit + ")"
}
