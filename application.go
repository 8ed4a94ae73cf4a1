package cliutil

import (
	"context"
	"io"
	"os"
)

// Application is the declarative root of a console application. Declare
// it wholesale, typically as a package variable, and freeze it with
// Build or MustBuild.
type Application struct {
	// Name is the application name shown in help output and used as
	// the first segment of command paths. Required.
	Name string
	// Description is shown in help output.
	Description string
	// Version is reported by the version builtins. When empty it is
	// resolved from the binary's build metadata.
	Version string

	Flags      []*Flag
	Parameters []*Parameter
	Arguments  []*Arg
	Commands   []*Command

	// Run handles an invocation that selects no subcommand. An
	// application without Run must declare at least one subcommand.
	Run RunFunc

	// Output receives help and version text. Defaults to os.Stdout.
	Output io.Writer
	// DisableHelp removes the help builtins: the `help` word, the help
	// subcommand listing, and the -h/--help flags.
	DisableHelp bool
	// DisableVersion removes the version builtins.
	DisableVersion bool
}

// App is a validated, immutable application ready to run. The
// definition is copied during Build, so later mutation of the
// Application struct has no effect; only the bound value destinations
// are shared with the caller.
type App struct {
	root           *Command
	version        string
	output         io.Writer
	disableHelp    bool
	disableVersion bool
}

// Build validates the definition and freezes it into a runnable App.
// All problems are reported at once through a *ValidationError.
func Build(def *Application) (*App, error) {
	app := &App{
		root: &Command{
			Name:        def.Name,
			Description: def.Description,
			Flags:       copyFlags(def.Flags),
			Parameters:  copyParameters(def.Parameters),
			Arguments:   copyArguments(def.Arguments),
			Commands:    copyCommands(def.Commands),
			Run:         def.Run,
		},
		version:        def.Version,
		output:         def.Output,
		disableHelp:    def.DisableHelp,
		disableVersion: def.DisableVersion,
	}
	if app.output == nil {
		app.output = os.Stdout
	}

	if err := validate(app); err != nil {
		return nil, err
	}
	return app, nil
}

// MustBuild is Build for package-variable declarations: definition
// mistakes are programmer errors, so it panics instead of returning
// them.
func MustBuild(def *Application) *App {
	app, err := Build(def)
	if err != nil {
		panic(err)
	}
	return app
}

// Run parses args and dispatches to the selected command. Args must
// not include the binary name. Usage problems come back as
// *UsageError; anything else is the handler's own error.
func (a *App) Run(ctx context.Context, args []string) error {
	s := &parseState{app: a}
	return s.run(ctx, args)
}

// Execute runs with the process arguments.
func (a *App) Execute(ctx context.Context) error {
	return a.Run(ctx, os.Args[1:])
}

// Main is the convenience entry point for binaries: it executes with
// the process arguments, reports any error to stderr, and returns the
// process exit code.
//
//	func main() {
//		os.Exit(app.Main(context.Background()))
//	}
func (a *App) Main(ctx context.Context) int {
	err := a.Execute(ctx)
	if err != nil {
		FprintError(os.Stderr, err)
	}
	return ExitCode(err)
}

// Name returns the application name.
func (a *App) Name() string {
	return a.root.Name
}

// copyCommands and friends detach the frozen tree from the caller's
// definition structs. Value destinations are deliberately shared.
func copyCommands(commands []*Command) []*Command {
	if len(commands) == 0 {
		return nil
	}
	out := make([]*Command, len(commands))
	for i, cmd := range commands {
		c := *cmd
		c.Aliases = append([]string(nil), cmd.Aliases...)
		c.Flags = copyFlags(cmd.Flags)
		c.Parameters = copyParameters(cmd.Parameters)
		c.Arguments = copyArguments(cmd.Arguments)
		c.Commands = copyCommands(cmd.Commands)
		out[i] = &c
	}
	return out
}

func copyFlags(flags []*Flag) []*Flag {
	if len(flags) == 0 {
		return nil
	}
	out := make([]*Flag, len(flags))
	for i, f := range flags {
		c := *f
		out[i] = &c
	}
	return out
}

func copyParameters(params []*Parameter) []*Parameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]*Parameter, len(params))
	for i, p := range params {
		c := *p
		out[i] = &c
	}
	return out
}

func copyArguments(args []*Arg) []*Arg {
	if len(args) == 0 {
		return nil
	}
	out := make([]*Arg, len(args))
	for i, a := range args {
		c := *a
		out[i] = &c
	}
	return out
}
