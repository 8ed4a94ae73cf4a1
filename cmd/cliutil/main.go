package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hashicorp/hcl/v2"

	"github.com/jacobrgreen/cliutil"
	"github.com/jacobrgreen/cliutil/internal/cmdpath"
	"github.com/jacobrgreen/cliutil/internal/ctxlog"
	"github.com/jacobrgreen/cliutil/internal/textutil"
	"github.com/jacobrgreen/cliutil/manifest"
	"github.com/jacobrgreen/cliutil/runtime"
)

// main is the entrypoint for the cliutil manifest inspection tool.
func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run encapsulates the whole tool for easier testing: it builds the
// application against the given streams, executes it once and maps the
// outcome to a process exit code.
func run(stdout, stderr io.Writer, args []string) int {
	app := newApp(stdout, stderr)
	err := app.Run(context.Background(), args)
	if err != nil {
		cliutil.FprintError(stderr, err)
	}
	return cliutil.ExitCode(err)
}

// newApp wires the inspection tool. The tool is itself declared with
// the static API it inspects manifests for.
func newApp(stdout, stderr io.Writer) *cliutil.App {
	var (
		logLevel       cliutil.ParameterValue
		logFormat      cliutil.ParameterValue
		checkPaths     cliutil.ArgsValue
		describePaths  cliutil.ArgsValue
		describeTarget cliutil.ParameterValue
	)

	setup := func(ctx context.Context) context.Context {
		logger := newLogger(logLevel.String(), logFormat.String(), stderr)
		return ctxlog.WithLogger(ctx, logger)
	}

	return cliutil.MustBuild(&cliutil.Application{
		Name:        "cliutil",
		Description: "Inspects and validates application manifests.",
		Parameters: []*cliutil.Parameter{
			{Long: "log-level", Description: "Log level: debug, info, warn or error", Default: "info", Value: &logLevel},
			{Long: "log-format", Description: "Log format: text or json", Default: "text", Value: &logFormat},
		},
		Commands: []*cliutil.Command{
			{
				Name:        "check",
				Description: "Validate manifests and report every problem",
				Arguments: []*cliutil.Arg{
					{Name: "path", Description: "Manifest files or directories", Required: true, Variadic: true, Values: &checkPaths},
				},
				Run: func(ctx context.Context) error {
					return runCheck(setup(ctx), stdout, stderr, checkPaths.Strings())
				},
			},
			{
				Name:        "describe",
				Description: "Print the help of every command a manifest defines",
				Parameters: []*cliutil.Parameter{
					{Long: "command", Placeholder: "path", Description: "Describe only the named command, e.g. 'remote add'", Value: &describeTarget},
				},
				Arguments: []*cliutil.Arg{
					{Name: "path", Description: "Manifest files or directories", Required: true, Variadic: true, Values: &describePaths},
				},
				Run: func(ctx context.Context) error {
					return runDescribe(setup(ctx), stdout, stderr, &describeTarget, describePaths.Strings())
				},
			},
		},
		Output: stdout,
	})
}

func runCheck(ctx context.Context, stdout, stderr io.Writer, paths []string) error {
	app, err := loadApplication(ctx, stderr, paths)
	if err != nil {
		return err
	}

	commands := len(app.CommandPaths()) - 1
	fmt.Fprintf(stdout, "OK: application '%s' defines %d commands\n", app.Name(), commands)
	return nil
}

func runDescribe(ctx context.Context, stdout, stderr io.Writer, target *cliutil.ParameterValue, paths []string) error {
	app, err := loadApplication(ctx, stderr, paths)
	if err != nil {
		return err
	}

	if target.IsSet() {
		sel, err := cmdpath.Parse(target.String())
		if err != nil {
			return fmt.Errorf("invalid --command value: %w", err)
		}
		return app.Help(stdout, sel.Segments...)
	}

	for i, path := range app.CommandPaths() {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		if err := app.Help(stdout, path...); err != nil {
			return err
		}
	}
	return nil
}

// loadApplication runs the manifest pipeline without any handlers:
// load, assemble against no registry, freeze. Definition problems come
// back exactly as an application embedding the manifest would see
// them.
func loadApplication(ctx context.Context, stderr io.Writer, paths []string) (*cliutil.App, error) {
	loader := manifest.NewLoader()
	def, err := loader.Load(ctx, paths...)
	if err != nil {
		return nil, renderDiagnostics(loader, stderr, err)
	}

	appDef, err := runtime.Assemble(ctx, def, nil)
	if err != nil {
		return nil, err
	}
	return cliutil.Build(appDef)
}

// renderDiagnostics writes HCL diagnostics with source context when
// err carries them; other errors pass through unchanged.
func renderDiagnostics(loader *manifest.Loader, stderr io.Writer, err error) error {
	var diags hcl.Diagnostics
	if !errors.As(err, &diags) {
		return err
	}

	width := uint(textutil.TerminalWidth(stderr))
	writer := hcl.NewDiagnosticTextWriter(stderr, loader.Files(), width, textutil.IsTerminal(stderr))
	if writeErr := writer.WriteDiagnostics(diags); writeErr != nil {
		return err
	}
	return &cliutil.ExitError{Code: 1, Message: "manifest check failed"}
}

// newLogger creates and configures a new slog.Logger instance. It does
// not set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
