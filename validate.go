package cliutil

import (
	"fmt"
	"strings"

	"github.com/jacobrgreen/cliutil/internal/cmdpath"
)

// validator walks a frozen command tree and collects every definition
// problem instead of stopping at the first one.
type validator struct {
	app    *App
	issues []string
	cells  map[any]string
}

func validate(app *App) error {
	v := &validator{app: app, cells: make(map[any]string)}

	if app.root.Name == "" {
		v.addf("application must have a name")
	} else if !cmdpath.ValidName(app.root.Name) {
		v.addf("invalid application name %q", app.root.Name)
	}

	v.checkCommand(cmdpath.New(app.root.Name), app.root, true)

	if len(v.issues) > 0 {
		return &ValidationError{Issues: v.issues}
	}
	return nil
}

func (v *validator) addf(format string, args ...any) {
	v.issues = append(v.issues, fmt.Sprintf(format, args...))
}

// scopeLabel names the command being checked: the application itself
// or a command path relative to it.
func (v *validator) scopeLabel(path *cmdpath.Path) string {
	if len(path.Segments) <= 1 {
		return fmt.Sprintf("application %q", path.String())
	}
	return fmt.Sprintf("command %q", strings.Join(path.Segments[1:], " "))
}

func (v *validator) checkCommand(path *cmdpath.Path, cmd *Command, isRoot bool) {
	scope := v.scopeLabel(path)
	helpEnabled := !v.app.disableHelp
	versionEnabled := isRoot && !v.app.disableVersion

	if cmd.Run == nil && len(cmd.Commands) == 0 {
		v.addf("%s: must have a run function or at least one subcommand", scope)
	}

	longSeen := make(map[string]string)
	shortSeen := make(map[string]string)

	for i, flag := range cmd.Flags {
		label := fmt.Sprintf("flag #%d", i+1)
		if flag.Short == "" && flag.Long == "" {
			v.addf("%s: %s must have a short or long name", scope, label)
		} else {
			label = "flag " + flag.displayName()
		}
		v.checkNames(scope, label, "flag", flag.Short, flag.Long, longSeen, shortSeen, helpEnabled, versionEnabled)
		if flag.Value == nil {
			v.addf("%s: %s must have a value destination", scope, label)
		} else {
			v.claimCell(scope, label, flag.Value)
		}
	}

	for i, param := range cmd.Parameters {
		label := fmt.Sprintf("parameter #%d", i+1)
		if param.Short == "" && param.Long == "" {
			v.addf("%s: %s must have a short or long name", scope, label)
		} else {
			label = "parameter " + param.displayName()
		}
		v.checkNames(scope, label, "parameter", param.Short, param.Long, longSeen, shortSeen, helpEnabled, versionEnabled)
		if param.Value == nil {
			v.addf("%s: %s must have a value destination", scope, label)
		} else {
			v.claimCell(scope, label, param.Value)
		}
		if param.Required && param.Default != "" {
			v.addf("%s: %s cannot be required and have a default", scope, label)
		}
		if param.Default != "" {
			if err := param.Type.check(param.Default); err != nil {
				v.addf("%s: %s default: %s", scope, label, err)
			}
		}
	}

	v.checkArguments(scope, cmd)
	v.checkSubcommands(scope, path, cmd, helpEnabled, versionEnabled)
}

// checkNames enforces the shared name schema, the builtin reservations
// and the single name space that flags and parameters occupy together.
func (v *validator) checkNames(scope, label, kind, short, long string, longSeen, shortSeen map[string]string, helpEnabled, versionEnabled bool) {
	if long != "" {
		switch {
		case !cmdpath.ValidName(long):
			v.addf("%s: %s has invalid long name %q", scope, label, long)
		case helpEnabled && long == "help":
			v.addf("%s: %s: name \"help\" is reserved for the help builtin", scope, label)
		case versionEnabled && long == "version":
			v.addf("%s: %s: name \"version\" is reserved for the version builtin", scope, label)
		default:
			if prev, ok := longSeen[long]; ok {
				v.addf("%s: duplicate long name %q (%s and %s)", scope, long, prev, kind)
			} else {
				longSeen[long] = kind
			}
		}
	}

	if short != "" {
		switch {
		case !cmdpath.ValidName(short):
			v.addf("%s: %s has invalid short name %q", scope, label, short)
		case helpEnabled && short == "h":
			v.addf("%s: %s: name \"h\" is reserved for the help builtin", scope, label)
		default:
			if prev, ok := shortSeen[short]; ok {
				v.addf("%s: duplicate short name %q (%s and %s)", scope, short, prev, kind)
			} else {
				shortSeen[short] = kind
			}
		}
	}
}

func (v *validator) checkArguments(scope string, cmd *Command) {
	argSeen := make(map[string]bool)
	optionalSeen := false

	for i, arg := range cmd.Arguments {
		label := fmt.Sprintf("argument #%d", i+1)
		if arg.Name == "" {
			v.addf("%s: %s must have a name", scope, label)
		} else {
			label = fmt.Sprintf("argument %q", arg.Name)
			if !cmdpath.ValidName(arg.Name) {
				v.addf("%s: %s has an invalid name", scope, label)
			} else if argSeen[arg.Name] {
				v.addf("%s: duplicate argument name %q", scope, arg.Name)
			}
			argSeen[arg.Name] = true
		}

		if arg.Required && optionalSeen {
			v.addf("%s: required %s cannot follow an optional argument", scope, label)
		}
		if !arg.Required {
			optionalSeen = true
		}

		if arg.Variadic {
			if i != len(cmd.Arguments)-1 {
				v.addf("%s: %s must be last because it is variadic", scope, label)
			}
			if arg.Value != nil {
				v.addf("%s: %s is variadic and must bind Values, not Value", scope, label)
			}
			if arg.Values == nil {
				v.addf("%s: %s must have a Values destination", scope, label)
			} else {
				v.claimCell(scope, label, arg.Values)
			}
		} else {
			if arg.Values != nil {
				v.addf("%s: %s is not variadic and must bind Value, not Values", scope, label)
			}
			if arg.Value == nil {
				v.addf("%s: %s must have a Value destination", scope, label)
			} else {
				v.claimCell(scope, label, arg.Value)
			}
		}
	}
}

func (v *validator) checkSubcommands(scope string, path *cmdpath.Path, cmd *Command, helpEnabled, versionEnabled bool) {
	cmdSeen := make(map[string]string)
	if helpEnabled {
		cmdSeen["help"] = "the help builtin"
	}
	if versionEnabled {
		cmdSeen["version"] = "the version builtin"
	}

	for i, sub := range cmd.Commands {
		label := fmt.Sprintf("subcommand #%d", i+1)
		if sub.Name == "" {
			v.addf("%s: %s must have a name", scope, label)
		} else {
			label = fmt.Sprintf("subcommand %q", sub.Name)
			if !cmdpath.ValidName(sub.Name) {
				v.addf("%s: %s has an invalid name", scope, label)
			} else if prev, ok := cmdSeen[sub.Name]; ok {
				v.addf("%s: %s collides with %s", scope, label, prev)
			} else {
				cmdSeen[sub.Name] = label
			}
		}

		for _, alias := range sub.Aliases {
			switch {
			case !cmdpath.ValidName(alias):
				v.addf("%s: %s has an invalid alias %q", scope, label, alias)
			default:
				if prev, ok := cmdSeen[alias]; ok {
					v.addf("%s: alias %q of %s collides with %s", scope, alias, label, prev)
				} else {
					cmdSeen[alias] = fmt.Sprintf("alias %q of %s", alias, label)
				}
			}
		}

		v.checkCommand(path.Child(sub.Name), sub, false)
	}
}

// claimCell guards against one destination being bound to two
// definitions, which would silently cross their values.
func (v *validator) claimCell(scope, label string, cell any) {
	owner := fmt.Sprintf("%s: %s", scope, label)
	if prev, ok := v.cells[cell]; ok {
		v.addf("%s shares a value destination with %s", owner, prev)
		return
	}
	v.cells[cell] = owner
}
