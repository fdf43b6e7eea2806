package build

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillFrom(t *testing.T) {
	restore := func(v, c, d string) func() {
		return func() { Version, Commit, Date = v, c, d }
	}(Version, Commit, Date)
	t.Cleanup(restore)

	Version, Commit, Date = "dev", "none", "unknown"
	fillFrom(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-10-01T00:00:00Z"},
		},
	})
	assert.Equal(t, "v0.4.0", Version)
	assert.Equal(t, "abc123", Commit)
	assert.Equal(t, "2026-10-01T00:00:00Z", Date)
	assert.Contains(t, String(), "osw v0.4.0 (commit abc123")

	Version, Commit = "v1.0.0", "linked"
	fillFrom(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "other"}},
	})
	assert.Equal(t, "v1.0.0", Version, "linker flags win")
	assert.Equal(t, "linked", Commit)
}
