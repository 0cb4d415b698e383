// Package version exposes the build metadata stamped into the binary.
//
// Release builds override the variables below with
//
//	-ldflags "-X github.com/lattice-viz/lattice/version.Version=v1.2.3 \
//	          -X github.com/lattice-viz/lattice/version.CommitHash=$(git rev-parse HEAD) \
//	          -X github.com/lattice-viz/lattice/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Untagged builds report "dev".
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version when the build was tagged
	Version = "dev"

	// CommitHash is the git commit the binary was built from
	CommitHash = "dev"

	// BuildTime is the UTC timestamp of the build
	BuildTime = "unknown"
)

// Info is one resolved snapshot of the build metadata plus the runtime
// toolchain details.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get resolves the stamped variables into an Info.
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the full human-readable version line.
func (i Info) String() string {
	return fmt.Sprintf("lattice %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
}

// Short returns the abbreviated commit hash used in log fields and the
// health endpoint.
func (i Info) Short() string {
	const abbrev = 7
	if len(i.CommitHash) > abbrev {
		return i.CommitHash[:abbrev]
	}
	return i.CommitHash
}
