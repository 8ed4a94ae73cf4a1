package manifest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacobrgreen/cliutil/manifest"
	"github.com/jacobrgreen/cliutil/runtime"
)

// writeManifests lays the given files out under a temporary root,
// creating subdirectories as the relative paths imply.
func writeManifests(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestLoadSingleManifest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"app.hcl": `
application "greet" {
  description = "Greets people."
  version     = "1.2.3"
  run         = "Greet"

  flag "loud" {
    short       = "l"
    description = "Shout the greeting"
    env         = "GREET_LOUD"
  }

  parameter "lang" {
    short       = "g"
    description = "Language code"
    type        = string
    default     = "en"
    placeholder = "CODE"
  }

  parameter "repeat" {
    type    = int
    default = 1
  }

  parameter "dry-run" {
    type    = bool
    default = true
  }

  argument "name" {
    description = "Who to greet"
    required    = true
  }

  argument "titles" {
    variadic = true
  }

  command "wave" {
    description = "Wave instead"
    aliases     = ["w"]
    run         = "Wave"

    command "slow" {
      description = "A slow wave"
      run         = "SlowWave"
    }
  }
}
`,
	})

	// --- Act ---
	def, err := manifest.NewLoader().Load(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)

	want := &runtime.Definition{
		Name:        "greet",
		Description: "Greets people.",
		Version:     "1.2.3",
		Run:         "Greet",
		Flags: []*runtime.FlagDefinition{
			{Short: "l", Long: "loud", Description: "Shout the greeting", EnvVar: "GREET_LOUD"},
		},
		Parameters: []*runtime.ParameterDefinition{
			{Short: "g", Long: "lang", Description: "Language code", Placeholder: "CODE", Default: "en", Type: "string"},
			{Long: "repeat", Default: "1", Type: "int"},
			{Long: "dry-run", Default: "true", Type: "bool"},
		},
		Arguments: []*runtime.ArgumentDefinition{
			{Name: "name", Description: "Who to greet", Required: true},
			{Name: "titles", Variadic: true},
		},
		Commands: []*runtime.CommandDefinition{
			{
				Name:        "wave",
				Aliases:     []string{"w"},
				Description: "Wave instead",
				Run:         "Wave",
				Commands: []*runtime.CommandDefinition{
					{Name: "slow", Description: "A slow wave", Run: "SlowWave"},
				},
			},
		},
	}
	if diff := cmp.Diff(want, def); diff != "" {
		t.Errorf("definition mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMergesLooseCommands(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"app.hcl": `
application "tool" {
  run = "Root"

  command "builtin" {
    run = "Builtin"
  }
}
`,
		"commands/extra.hcl": `
command "status" {
  description = "Show status"
  run         = "Status"
}
`,
		"commands/more.hcl": `
command "sync" {
  run = "Sync"
}
`,
	})

	// --- Act ---
	def, err := manifest.NewLoader().Load(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, def.Commands, 3)
	// The application's own commands come first, then loose top-level
	// blocks in file order.
	assert.Equal(t, "builtin", def.Commands[0].Name)
	assert.Equal(t, "status", def.Commands[1].Name)
	assert.Equal(t, "sync", def.Commands[2].Name)
}

func TestLoadExplicitFilePaths(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"app.hcl": `
application "tool" {
  run = "Root"
}
`,
	})

	// --- Act ---
	def, err := manifest.NewLoader().Load(context.Background(), filepath.Join(dir, "app.hcl"))

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "tool", def.Name)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "empty directory",
			files:   map[string]string{},
			wantErr: "no manifest files found",
		},
		{
			name: "no application block",
			files: map[string]string{
				"cmd.hcl": `
command "status" {
  run = "Status"
}
`,
			},
			wantErr: "no application block found",
		},
		{
			name: "multiple application blocks",
			files: map[string]string{
				"a.hcl": `
application "one" {
  run = "One"
}
`,
				"b.hcl": `
application "two" {
  run = "Two"
}
`,
			},
			wantErr: "multiple application blocks",
		},
		{
			name: "parse failure",
			files: map[string]string{
				"bad.hcl": `application "broken" {`,
			},
			wantErr: "failed to parse manifest",
		},
		{
			name: "unknown attribute",
			files: map[string]string{
				"bad.hcl": `
application "tool" {
  run     = "Root"
  colour  = "red"
}
`,
			},
			wantErr: "failed to decode manifest",
		},
		{
			name: "unknown parameter type",
			files: map[string]string{
				"bad.hcl": `
application "tool" {
  run = "Root"

  parameter "ratio" {
    type = float
  }
}
`,
			},
			wantErr: `unknown parameter type "float"`,
		},
		{
			name: "complex type expression",
			files: map[string]string{
				"bad.hcl": `
application "tool" {
  run = "Root"

  parameter "names" {
    type = list(string)
  }
}
`,
			},
			wantErr: "type must be a bare keyword",
		},
		{
			name: "unconvertible default",
			files: map[string]string{
				"bad.hcl": `
application "tool" {
  run = "Root"

  parameter "names" {
    default = ["a", "b"]
  }
}
`,
			},
			wantErr: "cannot convert default to string",
		},
		{
			name: "variable in default",
			files: map[string]string{
				"bad.hcl": `
application "tool" {
  run = "Root"

  parameter "lang" {
    default = var.lang
  }
}
`,
			},
			wantErr: "failed to decode manifest",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			dir := writeManifests(t, tc.files)

			// --- Act ---
			_, err := manifest.NewLoader().Load(context.Background(), dir)

			// --- Assert ---
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadMissingPath(t *testing.T) {
	t.Parallel()

	// --- Act ---
	_, err := manifest.NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope"))

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing path")
}

func TestFilesAvailableAfterParseFailure(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"bad.hcl": `application "broken" {`,
	})
	loader := manifest.NewLoader()

	// --- Act ---
	_, err := loader.Load(context.Background(), dir)

	// --- Assert ---
	require.Error(t, err)
	// The failed file's source must be available so callers can render
	// diagnostics with source context.
	files := loader.Files()
	require.Contains(t, files, filepath.Join(dir, "bad.hcl"))
}
