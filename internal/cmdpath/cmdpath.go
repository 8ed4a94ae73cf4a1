// internal/cmdpath/cmdpath.go
package cmdpath

import (
	"slices"
	"strings"
)

// Path is the structured identity of a command within an application
// tree. The zero value addresses the application root.
type Path struct {
	Segments []string
}

// New creates a Path from the given name segments.
func New(segments ...string) *Path {
	return &Path{Segments: segments}
}

// Child returns a new Path extended by one name. The receiver is not
// modified.
func (p *Path) Child(name string) *Path {
	child := &Path{Segments: make([]string, 0, len(p.Segments)+1)}
	child.Segments = append(child.Segments, p.Segments...)
	child.Segments = append(child.Segments, name)
	return child
}

// String serializes the Path into its canonical space-joined form.
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	return strings.Join(p.Segments, " ")
}

// Equal checks for equality between two Path pointers.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	return slices.Equal(p.Segments, other.Segments)
}
