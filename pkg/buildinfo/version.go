// Package buildinfo holds version information set at build time:
//
//	go build -ldflags "-X github.com/matzehuels/connections/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/connections/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/connections/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"     // semantic version, e.g. "v1.2.3"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp
)

// Template returns the version template for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// Fields returns the build information as logger key/value pairs.
func Fields() []any {
	return []any{"version", Version, "commit", Commit}
}
