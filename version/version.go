// Package version reports build information for the schemagen binary.
package version

import (
	"fmt"
	"runtime"

	"github.com/teranos/schemagen/token"
)

// Set at build time via -ldflags "-X github.com/teranos/schemagen/version.Version=...".
var (
	Version    = "dev"
	CommitHash = "dev"
	BuildTime  = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
	// TokenStreams is the accepted token stream version range.
	TokenStreams string `json:"token_streams"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Version:      Version,
		CommitHash:   CommitHash,
		BuildTime:    BuildTime,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
		TokenStreams: token.SupportedVersions,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("schemagen %s (commit %s, built %s)", i.Version, i.short(), i.BuildTime)
}

func (i Info) short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
