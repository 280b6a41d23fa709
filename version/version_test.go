package version

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teranos/schemagen/token"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, token.SupportedVersions, info.TokenStreams)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestString(t *testing.T) {
	info := Info{Version: "1.2.0", CommitHash: "0123456789abcdef", BuildTime: "2026-01-02"}
	assert.Equal(t, "schemagen 1.2.0 (commit 0123456, built 2026-01-02)", info.String())

	info.CommitHash = "dev"
	assert.Equal(t, "schemagen 1.2.0 (commit dev, built 2026-01-02)", info.String())
}
