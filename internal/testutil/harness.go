package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacobrgreen/cliutil"
	"github.com/jacobrgreen/cliutil/internal/ctxlog"
	"github.com/jacobrgreen/cliutil/manifest"
	"github.com/jacobrgreen/cliutil/runtime"
)

// Result holds the outcomes of a harness run.
type Result struct {
	// Stdout is what the application printed: help, version and
	// handler output.
	Stdout string
	// LogOutput is the debug log captured from the whole pipeline.
	LogOutput string
	// Err is the first error from loading, assembling or running.
	Err error
	// ExitCode is the process exit code Err maps to.
	ExitCode int
}

// WriteManifests lays the given files out under a temporary root,
// creating subdirectories as the relative paths imply, and returns the
// root.
func WriteManifests(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

// RunManifestApp writes the manifest files to a temporary directory,
// loads them, assembles the application against reg and runs it once
// with args. Handlers observe a context carrying a debug logger whose
// output lands in Result.LogOutput.
func RunManifestApp(t *testing.T, files map[string]string, reg *runtime.Registry, args []string) *Result {
	t.Helper()

	dir := WriteManifests(t, files)

	logBuffer := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logBuffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	var stdout bytes.Buffer
	err := func() error {
		def, err := manifest.NewLoader().Load(ctx, dir)
		if err != nil {
			return err
		}
		appDef, err := runtime.Assemble(ctx, def, reg)
		if err != nil {
			return err
		}
		appDef.Output = &stdout
		app, err := cliutil.Build(appDef)
		if err != nil {
			return err
		}
		return app.Run(ctx, args)
	}()

	return &Result{
		Stdout:    stdout.String(),
		LogOutput: logBuffer.String(),
		Err:       err,
		ExitCode:  cliutil.ExitCode(err),
	}
}
