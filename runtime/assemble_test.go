package runtime_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacobrgreen/cliutil"
	"github.com/jacobrgreen/cliutil/runtime"
)

// definitionFixture is the application the lowering tests run against.
func definitionFixture() *runtime.Definition {
	return &runtime.Definition{
		Name:        "tool",
		Description: "A test application.",
		Version:     "0.1.0",
		Flags: []*runtime.FlagDefinition{
			{Short: "v", Long: "verbose", Description: "Chatty output"},
		},
		Parameters: []*runtime.ParameterDefinition{
			{Short: "c", Long: "config", Description: "Config file", Default: "tool.hcl"},
		},
		Commands: []*runtime.CommandDefinition{
			{
				Name:        "serve",
				Description: "Start the server",
				Flags: []*runtime.FlagDefinition{
					{Short: "d", Long: "detach", Description: "Run in the background"},
				},
				Parameters: []*runtime.ParameterDefinition{
					{Short: "p", Long: "port", Description: "Listen port", Type: "int", Default: "8080"},
				},
				Run: "Serve",
			},
			{
				Name:        "copy",
				Description: "Copy files",
				Arguments: []*runtime.ArgumentDefinition{
					{Name: "dest", Description: "Destination", Required: true},
					{Name: "files", Description: "Files to copy", Variadic: true},
				},
				Run: "Copy",
			},
		},
		Run: "Root",
	}
}

func buildFixture(t *testing.T, reg *runtime.Registry) *cliutil.App {
	t.Helper()

	def, err := runtime.Assemble(context.Background(), definitionFixture(), reg)
	require.NoError(t, err)
	def.Output = io.Discard

	app, err := cliutil.Build(def)
	require.NoError(t, err)
	return app
}

func TestFromDefinitionDispatch(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var captured *runtime.Invocation
	reg := runtime.NewRegistry()
	reg.Register("Root", noopHandler)
	reg.Register("Copy", noopHandler)
	reg.Register("Serve", func(ctx context.Context, inv *runtime.Invocation) error {
		captured = inv
		return nil
	})
	app := buildFixture(t, reg)

	// --- Act ---
	err := app.Run(context.Background(), []string{"serve", "--detach", "--port=9090"})

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, []string{"tool", "serve"}, captured.Path())
	assert.True(t, captured.Flag("detach"))
	assert.True(t, captured.Flag("d"), "short and long names resolve the same value")

	port, err := captured.Int("port")
	require.NoError(t, err)
	assert.Equal(t, 9090, port)

	// Parent definitions are visible from the subcommand.
	assert.False(t, captured.Flag("verbose"))
	assert.True(t, captured.IsSet("config"), "default applies when the command line is silent")
	assert.Equal(t, "tool.hcl", captured.String("config"))
}

func TestFromDefinitionPositionals(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var (
		dest  string
		files []string
	)
	reg := runtime.NewRegistry()
	reg.Register("Root", noopHandler)
	reg.Register("Serve", noopHandler)
	reg.Register("Copy", func(ctx context.Context, inv *runtime.Invocation) error {
		dest = inv.Arg("dest")
		files = inv.Args("files")
		return nil
	})
	app := buildFixture(t, reg)

	// --- Act ---
	err := app.Run(context.Background(), []string{"copy", "backup", "a.txt", "b.txt"})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "backup", dest)
	assert.Equal(t, []string{"a.txt", "b.txt"}, files)
}

func TestFromDefinitionMissingHandler(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := runtime.NewRegistry()
	reg.Register("Root", noopHandler)
	reg.Register("Serve", noopHandler)
	// "Copy" is deliberately absent.

	// --- Act ---
	app, err := runtime.FromDefinition(context.Background(), definitionFixture(), reg)

	// --- Assert ---
	require.Error(t, err)
	require.Nil(t, app)
	assert.Contains(t, err.Error(), "handler validation failed")
	assert.Contains(t, err.Error(), "command 'copy': no handler named 'Copy' registered")
}

func TestAssembleWithoutRegistry(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	def, err := runtime.Assemble(context.Background(), definitionFixture(), nil)
	require.NoError(t, err)
	def.Output = io.Discard
	app, err := cliutil.Build(def)
	require.NoError(t, err)

	// Presentation still works without any handlers.
	require.NoError(t, app.Help(io.Discard))

	// --- Act ---
	err = app.Run(context.Background(), []string{"serve"})

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler registered for 'Serve'")
}

func TestAssembleRejectsUnknownParameterType(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	def := &runtime.Definition{
		Name: "tool",
		Parameters: []*runtime.ParameterDefinition{
			{Long: "ratio", Type: "decimal"},
		},
		Run: "Root",
	}

	// --- Act ---
	_, err := runtime.Assemble(context.Background(), def, nil)

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), `application 'tool': parameter 'ratio': unknown parameter type "decimal"`)
}

func TestFromDefinitionValidatesTheDefinition(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	def := &runtime.Definition{
		Name: "tool",
		Flags: []*runtime.FlagDefinition{
			{Long: "force"},
			{Long: "force"},
		},
		Run: "Root",
	}
	reg := runtime.NewRegistry()
	reg.Register("Root", noopHandler)

	// --- Act ---
	_, err := runtime.FromDefinition(context.Background(), def, reg)

	// --- Assert ---
	var valErr *cliutil.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, err.Error(), `duplicate long name "force"`)
}

func TestInvocationShadowing(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var got string
	def := &runtime.Definition{
		Name: "tool",
		Parameters: []*runtime.ParameterDefinition{
			{Long: "profile", Default: "root-profile"},
		},
		Commands: []*runtime.CommandDefinition{
			{
				Name: "deploy",
				Parameters: []*runtime.ParameterDefinition{
					{Long: "profile", Default: "deploy-profile"},
				},
				Run: "Deploy",
			},
		},
	}
	reg := runtime.NewRegistry()
	reg.Register("Deploy", func(ctx context.Context, inv *runtime.Invocation) error {
		got = inv.String("profile")
		return nil
	})

	app, err := runtime.FromDefinition(context.Background(), def, reg)
	require.NoError(t, err)

	// --- Act ---
	err = app.Run(context.Background(), []string{"deploy"})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "deploy-profile", got, "the nearest definition wins on a name clash")
}

func TestInvocationUnknownNamePanics(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := runtime.NewRegistry()
	reg.Register("Root", func(ctx context.Context, inv *runtime.Invocation) error {
		inv.Flag("no-such-flag")
		return nil
	})
	def := &runtime.Definition{Name: "tool", Run: "Root"}
	app, err := runtime.FromDefinition(context.Background(), def, reg)
	require.NoError(t, err)

	// --- Act / Assert ---
	require.PanicsWithValue(t,
		"command 'tool' has no flag named 'no-such-flag'",
		func() { _ = app.Run(context.Background(), []string{}) },
	)
}
