package runtime

import "context"

// Definition is the format-agnostic representation of an entire
// application. Loaders produce it from external sources such as HCL
// manifests; Assemble lowers it onto the static API.
type Definition struct {
	Name        string
	Description string
	Version     string

	Flags      []*FlagDefinition
	Parameters []*ParameterDefinition
	Arguments  []*ArgumentDefinition
	Commands   []*CommandDefinition

	// Run names the registered handler invoked when no subcommand is
	// selected. Empty means the application dispatches only.
	Run string

	DisableHelp    bool
	DisableVersion bool
}

// CommandDefinition is the format-agnostic representation of one
// subcommand.
type CommandDefinition struct {
	Name        string
	Aliases     []string
	Description string

	Flags      []*FlagDefinition
	Parameters []*ParameterDefinition
	Arguments  []*ArgumentDefinition
	Commands   []*CommandDefinition

	// Run names the registered handler for this command.
	Run string
}

// FlagDefinition describes a boolean flag.
type FlagDefinition struct {
	Short       string
	Long        string
	Description string
	EnvVar      string
}

// ParameterDefinition describes a valued parameter. Type is one of
// "string", "int", "bool" or "duration"; empty means string.
type ParameterDefinition struct {
	Short       string
	Long        string
	Description string
	Placeholder string
	Default     string
	Required    bool
	Type        string
	EnvVar      string
}

// ArgumentDefinition describes a positional argument.
type ArgumentDefinition struct {
	Name        string
	Description string
	Required    bool
	Variadic    bool
}

// Loader is the interface for a format-specific definition source.
type Loader interface {
	// Load reads definitions from the given paths and translates them
	// into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Definition, error)
}
