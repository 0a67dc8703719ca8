// Package version carries build metadata stamped in via -ldflags.
package version

import "fmt"

// Set at build time:
//
//	go build -ldflags "-X .../pkg/version.Version=v1.2.3 \
//	  -X .../pkg/version.Commit=abc1234 -X .../pkg/version.Date=2026-08-29"
var (
	// Version is the semantic release version.
	Version = "dev"
	// Commit is the short git hash of the build.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// String renders the full build identity on one line.
func String() string {
	return fmt.Sprintf("gardener %s (commit %s, built %s)", Version, Commit, Date)
}
