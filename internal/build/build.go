// Package build reports which osw binary is running.
package build

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X go.trai.ch/osw/internal/build.Version=v0.4.0" by the
// release pipeline. Binaries from go install fall back to the module version
// and VCS stamp embedded by the toolchain.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	fillFrom(info)
}

func fillFrom(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && Commit == "none":
			Commit = s.Value
		case s.Key == "vcs.time" && Date == "unknown":
			Date = s.Value
		}
	}
}

// String is the one-line version banner shared by `osw version` and --version.
func String() string {
	return fmt.Sprintf("osw %s (commit %s, built %s, %s)", Version, Commit, Date, runtime.Version())
}
