package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// Handler is the compiled Go function a definition's run name resolves
// to. The Invocation carries the parsed values of the command it
// serves.
type Handler func(ctx context.Context, inv *Invocation) error

// Registry holds the mapping between the handler names used in
// definitions and the Go functions that implement them.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register stores handler under name. Registering a name twice is a
// programmer error and panics.
func (r *Registry) Register(name string, handler Handler) {
	if _, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("handler with name '%s' already registered", name))
	}
	slog.Debug("Registering command handler.", "name", name)
	r.handlers[name] = handler
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	handler, ok := r.handlers[name]
	return handler, ok
}

// Names lists the registered handler names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
