// internal/cmdpath/names.go
package cmdpath

import (
	"fmt"
	"regexp"
	"strings"
)

// nameRegex matches a single command, flag, parameter or argument name.
// Names start with an alphanumeric and may continue with alphanumerics,
// underscores and hyphens, so `dry-run` and `log_level` are valid while
// `-x` and `.hidden` are not.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// ValidName reports whether name conforms to the shared identifier
// schema.
func ValidName(name string) bool {
	return nameRegex.MatchString(name)
}

// Parse creates a Path by parsing its canonical string representation.
func Parse(raw string) (*Path, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("command path cannot be empty")
	}

	path := &Path{}
	for _, segment := range strings.Fields(raw) {
		if !ValidName(segment) {
			return nil, fmt.Errorf("invalid command name: %q", segment)
		}
		path.Segments = append(path.Segments, segment)
	}

	return path, nil
}
