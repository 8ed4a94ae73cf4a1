package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/jacobrgreen/cliutil/internal/ctxlog"
	"github.com/jacobrgreen/cliutil/internal/fsutil"
	"github.com/jacobrgreen/cliutil/runtime"
)

// Loader reads application definitions from HCL manifests. It
// implements runtime.Loader.
type Loader struct {
	files map[string]*hcl.File
}

// NewLoader creates a new manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every manifest file the paths name and merges them into
// a single definition. Exactly one application block must exist across
// all files; top-level command blocks from any file attach to it after
// the application's own commands, in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*runtime.Definition, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no manifest files found")
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	parser := hclparse.NewParser()
	// The parser's file map is live, so sources parsed before a failure
	// stay available to Files for diagnostic rendering.
	l.files = parser.Files()

	var (
		app     *applicationSchema
		appFile string
		loose   []*commandSchema
	)

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", file, diags)
		}

		for _, a := range root.Applications {
			if app != nil {
				return nil, fmt.Errorf("multiple application blocks: '%s' in %s and '%s' in %s",
					app.Name, appFile, a.Name, file)
			}
			app, appFile = a, file
		}
		loose = append(loose, root.Commands...)
	}

	if app == nil {
		return nil, fmt.Errorf("no application block found in manifests")
	}

	def, err := translateApplication(app)
	if err != nil {
		return nil, err
	}
	for _, c := range loose {
		cmd, err := translateCommand(c)
		if err != nil {
			return nil, fmt.Errorf("in application '%s': %w", app.Name, err)
		}
		def.Commands = append(def.Commands, cmd)
	}

	logger.Debug("Manifest loading complete.", "app", def.Name, "commands", len(def.Commands))
	return def, nil
}

// Files exposes the parsed sources keyed by path, for rendering
// errors with hcl.NewDiagnosticTextWriter.
func (l *Loader) Files() map[string]*hcl.File {
	return l.files
}
