// Package cliutil builds command line applications from declarative
// definitions. An application, its subcommands, flags, parameters and
// positional arguments are declared as data; parsed values land in
// typed destinations the caller owns, so handlers read plain Go values
// instead of querying a parse result.
//
// The definition is frozen with Build (or MustBuild for package-level
// declarations), which checks the whole tree at once: name collisions
// between commands, aliases, flags and parameters, reserved builtin
// names, missing value destinations and malformed defaults are all
// reported together. The frozen App then provides parsing, dispatch,
// help and version builtins, and user-facing error reporting with
// near-miss suggestions.
//
// Applications that need to be assembled at run time, or loaded from
// HCL manifests, use the runtime and manifest subpackages, which lower
// onto the same engine.
package cliutil
