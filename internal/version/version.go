// Package version reports which build of paddyterm is running.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Release builds stamp these with
//
//	-ldflags "-X github.com/muurk/paddyterm/internal/version.Version=v0.3.0
//	          -X github.com/muurk/paddyterm/internal/version.Commit=1a2b3c4"
//
// Local builds fill them from the VCS stamp the go tool embeds.
var (
	Version = ""
	Commit  = ""
)

const shortHashLen = 7

func init() {
	if Version != "" && Commit != "" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		fromSettings(info.Settings)
	}
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromSettings fills the unset fields from vcs.* build settings. A local
// build has no tag, so Version becomes dev-<commit date>.
func fromSettings(settings []debug.BuildSetting) {
	vcs := make(map[string]string, 3)
	for _, s := range settings {
		vcs[s.Key] = s.Value
	}

	if rev := vcs["vcs.revision"]; Commit == "" && rev != "" {
		if len(rev) > shortHashLen {
			rev = rev[:shortHashLen]
		}
		if vcs["vcs.modified"] == "true" {
			rev += "-dirty"
		}
		Commit = rev
	}
	if Version == "" {
		if t, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

// Full returns the version with its commit, as printed by `paddyterm version`.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
