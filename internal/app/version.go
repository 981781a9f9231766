package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are stamped with -ldflags "-X". When Commit
// is not stamped it is taken from the VCS info the toolchain embeds.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = "unknown"
)

// BuildVersion formats the build identity for the startup log line.
func BuildVersion() string {
	return formatVersion(Version, resolveCommit(Commit, debug.ReadBuildInfo), BuildTime)
}

func formatVersion(version, commit, built string) string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func resolveCommit(stamped string, read func() (*debug.BuildInfo, bool)) string {
	if stamped != "" {
		return stamped
	}
	info, ok := read()
	if !ok {
		return "unknown"
	}
	var rev string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return "unknown"
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}
