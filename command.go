package cliutil

import (
	"context"
)

// RunFunc is the entry point of a command. Every bound flag, parameter
// and argument destination is populated before it is called.
type RunFunc func(ctx context.Context) error

// Command is a named subcommand grouping flags, parameters, arguments
// and further subcommands.
//
//	$ myapp {subcommand} --{flag} --{parameter}={value}
type Command struct {
	// Name is the word that selects the command. Required.
	Name string
	// Aliases are alternative words for the command. They share the
	// name space with sibling command names.
	Aliases []string
	// Description is shown in help output.
	Description string

	Flags      []*Flag
	Parameters []*Parameter
	Arguments  []*Arg
	Commands   []*Command

	// Run handles the command once parsing lands on it. A command
	// without Run must have subcommands; selecting it directly is a
	// usage error.
	Run RunFunc
}

// matches reports whether word selects this command.
func (c *Command) matches(word string) bool {
	if c.Name == word {
		return true
	}
	for _, alias := range c.Aliases {
		if alias == word {
			return true
		}
	}
	return false
}

// findCommand resolves a bare word against a command list by name or
// alias.
func findCommand(commands []*Command, word string) *Command {
	for _, cmd := range commands {
		if cmd.matches(word) {
			return cmd
		}
	}
	return nil
}

// findFlagLong and friends do linear scans: command scopes are small
// and declaration order is the natural precedence.
func findFlagLong(flags []*Flag, name string) *Flag {
	for _, f := range flags {
		if f.Long != "" && f.Long == name {
			return f
		}
	}
	return nil
}

func findFlagShort(flags []*Flag, name string) *Flag {
	for _, f := range flags {
		if f.Short != "" && f.Short == name {
			return f
		}
	}
	return nil
}

func findParamLong(params []*Parameter, name string) *Parameter {
	for _, p := range params {
		if p.Long != "" && p.Long == name {
			return p
		}
	}
	return nil
}

func findParamShort(params []*Parameter, name string) *Parameter {
	for _, p := range params {
		if p.Short != "" && p.Short == name {
			return p
		}
	}
	return nil
}
