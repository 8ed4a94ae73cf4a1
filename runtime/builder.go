package runtime

import (
	"context"
	"io"

	"github.com/jacobrgreen/cliutil"
)

// App assembles an application imperatively: declare pieces one call at
// a time, then Build. It produces the same definition a manifest would
// and lowers through the same pipeline, with handlers attached inline
// instead of resolved by name.
//
// Mutators return the receiver so declarations can chain. Nothing is
// validated until Build, which reports every problem at once.
type App struct {
	def      *Definition
	handlers map[string]Handler
	output   io.Writer
}

// New starts an application definition.
func New(name, description string) *App {
	return &App{
		def:      &Definition{Name: name, Description: description},
		handlers: make(map[string]Handler),
	}
}

// Version sets the version string reported by the version builtin.
func (a *App) Version(v string) *App {
	a.def.Version = v
	return a
}

// Output sets the writer help and version output go to. Defaults to
// stdout.
func (a *App) Output(w io.Writer) *App {
	a.output = w
	return a
}

// DisableHelp drops the help builtins and frees their names.
func (a *App) DisableHelp() *App {
	a.def.DisableHelp = true
	return a
}

// DisableVersion drops the version builtins and frees their names.
func (a *App) DisableVersion() *App {
	a.def.DisableVersion = true
	return a
}

// Flag declares an application-level flag.
func (a *App) Flag(def FlagDefinition) *App {
	a.def.Flags = append(a.def.Flags, &def)
	return a
}

// Parameter declares an application-level parameter.
func (a *App) Parameter(def ParameterDefinition) *App {
	a.def.Parameters = append(a.def.Parameters, &def)
	return a
}

// Argument declares a positional argument on the application itself.
func (a *App) Argument(def ArgumentDefinition) *App {
	a.def.Arguments = append(a.def.Arguments, &def)
	return a
}

// OnRun attaches the handler invoked when the application is run with
// no subcommand. A nil handler clears it.
func (a *App) OnRun(h Handler) *App {
	setHandler(a, a.def.Name, h, &a.def.Run)
	return a
}

// Command declares a subcommand and returns a handle for filling it in.
func (a *App) Command(name, description string) *Command {
	def := &CommandDefinition{Name: name, Description: description}
	a.def.Commands = append(a.def.Commands, def)
	return &Command{app: a, def: def, path: a.def.Name + " " + name}
}

// Definition returns the accumulated definition. Handlers attached
// with OnRun are referenced by synthesized run names private to this
// builder.
func (a *App) Definition() *Definition {
	return a.def
}

// Build lowers the accumulated definition into a frozen application.
func (a *App) Build(ctx context.Context) (*cliutil.App, error) {
	var reg *Registry
	if len(a.handlers) > 0 {
		reg = NewRegistry()
		for name, h := range a.handlers {
			reg.Register(name, h)
		}
	}

	appDef, err := Assemble(ctx, a.def, reg)
	if err != nil {
		return nil, err
	}
	appDef.Output = a.output
	return cliutil.Build(appDef)
}

// Run builds the application and runs it against args.
func (a *App) Run(ctx context.Context, args []string) error {
	app, err := a.Build(ctx)
	if err != nil {
		return err
	}
	return app.Run(ctx, args)
}

// Execute builds the application and runs it against os.Args[1:].
func (a *App) Execute(ctx context.Context) error {
	app, err := a.Build(ctx)
	if err != nil {
		return err
	}
	return app.Execute(ctx)
}

// Command fills in one subcommand of an App under construction.
type Command struct {
	app  *App
	def  *CommandDefinition
	path string
}

// Alias adds alternative names for the command.
func (c *Command) Alias(names ...string) *Command {
	c.def.Aliases = append(c.def.Aliases, names...)
	return c
}

// Flag declares a flag on the command.
func (c *Command) Flag(def FlagDefinition) *Command {
	c.def.Flags = append(c.def.Flags, &def)
	return c
}

// Parameter declares a parameter on the command.
func (c *Command) Parameter(def ParameterDefinition) *Command {
	c.def.Parameters = append(c.def.Parameters, &def)
	return c
}

// Argument declares a positional argument on the command.
func (c *Command) Argument(def ArgumentDefinition) *Command {
	c.def.Arguments = append(c.def.Arguments, &def)
	return c
}

// OnRun attaches the handler invoked when this command is run. A nil
// handler clears it.
func (c *Command) OnRun(h Handler) *Command {
	setHandler(c.app, c.path, h, &c.def.Run)
	return c
}

// Command declares a nested subcommand.
func (c *Command) Command(name, description string) *Command {
	def := &CommandDefinition{Name: name, Description: description}
	c.def.Commands = append(c.def.Commands, def)
	return &Command{app: c.app, def: def, path: c.path + " " + name}
}

// setHandler stores h under a run name synthesized from the command
// path. Paths start with the application name, so they stay unique even
// when a command shares the application's name.
func setHandler(a *App, path string, h Handler, run *string) {
	if h == nil {
		delete(a.handlers, path)
		*run = ""
		return
	}
	a.handlers[path] = h
	*run = path
}
