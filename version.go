package cliutil

import (
	"fmt"

	"github.com/jacobrgreen/cliutil/internal/buildinfo"
)

// VersionString is the line the version builtins print. When the
// application declared no version, the binary's build metadata is
// consulted instead.
func (a *App) VersionString() string {
	if a.version != "" {
		return fmt.Sprintf("%s version %s", a.root.Name, a.version)
	}

	info := buildinfo.Resolve()
	line := fmt.Sprintf("%s version %s", a.root.Name, info.Version)
	if info.Commit != "" {
		line += fmt.Sprintf(" (commit %s)", info.Commit)
	}
	return line
}

func (s *parseState) printVersion() {
	fmt.Fprintln(s.app.output, s.app.VersionString())
}
