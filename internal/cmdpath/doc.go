// internal/cmdpath/doc.go

/*
Package cmdpath provides a structured, type-safe representation for
command identities within an application tree, based on the canonical
format `name sub subsub`.

The format is defined as a space-separated sequence of names,
e.g., `remote add`.

This package enforces the shared name schema for commands, flags,
parameters and arguments, and centralizes all formatting and parsing
logic so every surface validates identifiers the same way.
*/
package cmdpath
