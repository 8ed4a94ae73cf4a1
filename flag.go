package cliutil

import (
	"strconv"
)

// FlagValue is the destination a Flag writes into when it appears on
// the command line. Declare one next to the flag and read it from the
// handler.
type FlagValue struct {
	set bool
}

// IsSet reports whether the flag appeared on the command line or was
// enabled through its environment variable.
func (v *FlagValue) IsSet() bool {
	return v.set
}

func (v *FlagValue) mark() {
	v.set = true
}

// Flag is a boolean command line switch.
//
//	$ myapp -t --test
type Flag struct {
	// Short is the name used with a single dash. It may be longer than
	// one character.
	Short string
	// Long is the name used with a double dash.
	Long string
	// Description is shown in help output.
	Description string
	// EnvVar names an environment variable that enables the flag when
	// it holds a true value and the flag is absent from the command
	// line.
	EnvVar string
	// Value receives the result. Required.
	Value *FlagValue
}

// displayName is the spelling used in error and help messages,
// preferring the long form.
func (f *Flag) displayName() string {
	if f.Long != "" {
		return "--" + f.Long
	}
	return "-" + f.Short
}

// envTrue reports whether an environment variable value counts as
// enabling a flag.
func envTrue(value string) bool {
	b, err := strconv.ParseBool(value)
	return err == nil && b
}
