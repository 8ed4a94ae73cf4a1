// internal/buildinfo/buildinfo.go

// Package buildinfo resolves build metadata for the running binary,
// used by the version builtins when the application declares no
// version of its own.
package buildinfo

import (
	"runtime/debug"
)

// Info describes the build of the running binary.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// Resolve reads the metadata the Go toolchain embedded into the
// binary. Version falls back to "(devel)" when no module version is
// stamped, which is the case for a plain `go build` of a work tree.
func Resolve() Info {
	info := Info{Version: "(devel)"}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.GoVersion = bi.GoVersion
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Commit = shortRevision(setting.Value)
		case "vcs.time":
			info.Date = setting.Value
		}
	}
	return info
}

// shortRevision trims a VCS hash down to the familiar short form.
func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
