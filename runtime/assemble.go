package runtime

import (
	"context"
	"fmt"

	"github.com/jacobrgreen/cliutil"
	"github.com/jacobrgreen/cliutil/internal/ctxlog"
)

// Assemble lowers a definition onto the static API without freezing
// it, so callers can adjust presentation concerns such as Output
// before Build.
//
// With a non-nil registry the definition's run names are checked
// against it first. A nil registry skips the check and lowers every
// run name to a stub that fails at execution time, which keeps
// inspection tooling working without the Go handlers present.
func Assemble(ctx context.Context, def *Definition, reg *Registry) (*cliutil.Application, error) {
	if reg != nil {
		if err := ValidateHandlers(ctx, def, reg); err != nil {
			return nil, err
		}
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Assembling application from definition.", "app", def.Name)

	a := &assembler{reg: reg}
	inv := newInvocation(def.Name)

	app := &cliutil.Application{
		Name:           def.Name,
		Description:    def.Description,
		Version:        def.Version,
		Flags:          a.flags(def.Flags, inv),
		Arguments:      a.arguments(def.Arguments, inv),
		Run:            a.run(def.Run, inv),
		DisableHelp:    def.DisableHelp,
		DisableVersion: def.DisableVersion,
	}

	scope := fmt.Sprintf("application '%s'", def.Name)
	params, err := a.parameters(scope, def.Parameters, inv)
	if err != nil {
		return nil, err
	}
	app.Parameters = params

	commands, err := a.commands("", def.Commands, inv)
	if err != nil {
		return nil, err
	}
	app.Commands = commands

	return app, nil
}

// FromDefinition assembles def and freezes it into a runnable App.
func FromDefinition(ctx context.Context, def *Definition, reg *Registry) (*cliutil.App, error) {
	app, err := Assemble(ctx, def, reg)
	if err != nil {
		return nil, err
	}
	return cliutil.Build(app)
}

// assembler allocates value destinations while lowering a definition,
// wiring each one into the invocations the handlers will receive.
type assembler struct {
	reg *Registry
}

func (a *assembler) flags(defs []*FlagDefinition, inv *Invocation) []*cliutil.Flag {
	if len(defs) == 0 {
		return nil
	}
	out := make([]*cliutil.Flag, len(defs))
	for i, d := range defs {
		value := new(cliutil.FlagValue)
		if d.Long != "" {
			inv.flags[d.Long] = value
		}
		if d.Short != "" {
			inv.flags[d.Short] = value
		}
		out[i] = &cliutil.Flag{
			Short:       d.Short,
			Long:        d.Long,
			Description: d.Description,
			EnvVar:      d.EnvVar,
			Value:       value,
		}
	}
	return out
}

func (a *assembler) parameters(scope string, defs []*ParameterDefinition, inv *Invocation) ([]*cliutil.Parameter, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	out := make([]*cliutil.Parameter, len(defs))
	for i, d := range defs {
		typ, err := paramType(d.Type)
		if err != nil {
			name := d.Long
			if name == "" {
				name = d.Short
			}
			return nil, fmt.Errorf("%s: parameter '%s': %w", scope, name, err)
		}
		value := new(cliutil.ParameterValue)
		if d.Long != "" {
			inv.params[d.Long] = value
		}
		if d.Short != "" {
			inv.params[d.Short] = value
		}
		out[i] = &cliutil.Parameter{
			Short:       d.Short,
			Long:        d.Long,
			Description: d.Description,
			Placeholder: d.Placeholder,
			Default:     d.Default,
			Required:    d.Required,
			Type:        typ,
			EnvVar:      d.EnvVar,
			Value:       value,
		}
	}
	return out, nil
}

func (a *assembler) arguments(defs []*ArgumentDefinition, inv *Invocation) []*cliutil.Arg {
	if len(defs) == 0 {
		return nil
	}
	out := make([]*cliutil.Arg, len(defs))
	for i, d := range defs {
		arg := &cliutil.Arg{
			Name:        d.Name,
			Description: d.Description,
			Required:    d.Required,
			Variadic:    d.Variadic,
		}
		if d.Variadic {
			arg.Values = new(cliutil.ArgsValue)
			inv.variadic[d.Name] = arg.Values
		} else {
			arg.Value = new(cliutil.ArgValue)
			inv.args[d.Name] = arg.Value
		}
		out[i] = arg
	}
	return out
}

func (a *assembler) commands(prefix string, defs []*CommandDefinition, parent *Invocation) ([]*cliutil.Command, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	out := make([]*cliutil.Command, len(defs))
	for i, d := range defs {
		path := d.Name
		if prefix != "" {
			path = prefix + " " + d.Name
		}
		inv := parent.child(d.Name)

		cmd := &cliutil.Command{
			Name:        d.Name,
			Aliases:     append([]string(nil), d.Aliases...),
			Description: d.Description,
			Flags:       a.flags(d.Flags, inv),
			Arguments:   a.arguments(d.Arguments, inv),
			Run:         a.run(d.Run, inv),
		}

		params, err := a.parameters(fmt.Sprintf("command '%s'", path), d.Parameters, inv)
		if err != nil {
			return nil, err
		}
		cmd.Parameters = params

		subs, err := a.commands(path, d.Commands, inv)
		if err != nil {
			return nil, err
		}
		cmd.Commands = subs

		out[i] = cmd
	}
	return out, nil
}

// run closes the named handler over the invocation. Missing names are
// only possible with a nil registry; the stub keeps the definition
// runnable for inspection and fails if a command is actually executed.
func (a *assembler) run(name string, inv *Invocation) cliutil.RunFunc {
	if name == "" {
		return nil
	}
	if a.reg == nil {
		return func(ctx context.Context) error {
			return fmt.Errorf("no handler registered for '%s'", name)
		}
	}
	handler, _ := a.reg.Lookup(name)
	return func(ctx context.Context) error {
		return handler(ctx, inv)
	}
}

// paramType maps a definition's type name onto the static API.
func paramType(name string) (cliutil.ParamType, error) {
	switch name {
	case "", "string":
		return cliutil.ParamString, nil
	case "int":
		return cliutil.ParamInt, nil
	case "bool":
		return cliutil.ParamBool, nil
	case "duration":
		return cliutil.ParamDuration, nil
	}
	return cliutil.ParamString, fmt.Errorf("unknown parameter type %q", name)
}
