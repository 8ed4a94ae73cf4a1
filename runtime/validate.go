package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/jacobrgreen/cliutil/internal/ctxlog"
)

// ValidateHandlers performs a strict parity check between a definition
// and the registered Go handlers. Every run name the definition uses
// must resolve in the registry; handlers nothing references are
// reported through the logger so drift stays visible.
func ValidateHandlers(ctx context.Context, def *Definition, reg *Registry) error {
	logger := ctxlog.FromContext(ctx)

	var errs []string
	used := make(map[string]bool)

	check := func(scope, name string) {
		if name == "" {
			return
		}
		used[name] = true
		if _, ok := reg.Lookup(name); !ok {
			errs = append(errs, fmt.Sprintf("%s: no handler named '%s' registered", scope, name))
		}
	}

	check(fmt.Sprintf("application '%s'", def.Name), def.Run)

	var walk func(prefix string, commands []*CommandDefinition)
	walk = func(prefix string, commands []*CommandDefinition) {
		for _, cmd := range commands {
			path := cmd.Name
			if prefix != "" {
				path = prefix + " " + cmd.Name
			}
			check(fmt.Sprintf("command '%s'", path), cmd.Run)
			walk(path, cmd.Commands)
		}
	}
	walk("", def.Commands)

	for _, name := range reg.Names() {
		if !used[name] {
			logger.Warn("Handler is registered but referenced by no command.", "name", name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("handler validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
