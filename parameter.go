package cliutil

import (
	"fmt"
	"strconv"
	"time"
)

// ParamType constrains the values a Parameter accepts. Typed
// parameters are validated during parsing, so handlers can convert
// without re-checking.
type ParamType int

const (
	ParamString ParamType = iota
	ParamInt
	ParamBool
	ParamDuration
)

func (t ParamType) String() string {
	switch t {
	case ParamInt:
		return "int"
	case ParamBool:
		return "bool"
	case ParamDuration:
		return "duration"
	default:
		return "string"
	}
}

// check validates a raw command line value against the type.
func (t ParamType) check(value string) error {
	var err error
	switch t {
	case ParamInt:
		_, err = strconv.Atoi(value)
	case ParamBool:
		_, err = strconv.ParseBool(value)
	case ParamDuration:
		_, err = time.ParseDuration(value)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("%q is not a valid %s", value, t)
	}
	return nil
}

// ParameterValue is the destination a Parameter writes into when a
// value is supplied on the command line, through the environment, or
// by default.
type ParameterValue struct {
	value string
	set   bool
}

// IsSet reports whether a value was supplied from any source.
func (v *ParameterValue) IsSet() bool {
	return v.set
}

// Value returns the raw value and whether one was supplied.
func (v *ParameterValue) Value() (string, bool) {
	return v.value, v.set
}

// String returns the raw value, or the empty string when unset.
func (v *ParameterValue) String() string {
	return v.value
}

// Int converts the value. Unset values convert like the empty string
// and return an error.
func (v *ParameterValue) Int() (int, error) {
	return strconv.Atoi(v.value)
}

// Bool converts the value. Unset values convert like the empty string
// and return an error.
func (v *ParameterValue) Bool() (bool, error) {
	return strconv.ParseBool(v.value)
}

// Duration converts the value. Unset values convert like the empty
// string and return an error.
func (v *ParameterValue) Duration() (time.Duration, error) {
	return time.ParseDuration(v.value)
}

func (v *ParameterValue) setValue(value string) {
	v.value = value
	v.set = true
}

// Parameter is a named command line value.
//
//	$ myapp -p <value> --param=<value>
type Parameter struct {
	// Short is the name used with a single dash. It may be longer than
	// one character.
	Short string
	// Long is the name used with a double dash.
	Long string
	// Description is shown in help output.
	Description string
	// Placeholder names the value in help output, e.g. `--lang=<CODE>`.
	// Defaults to "value".
	Placeholder string
	// Default is applied when the parameter is absent from both the
	// command line and the environment. Mutually exclusive with
	// Required.
	Default string
	// Required makes parsing fail when no value is supplied.
	Required bool
	// Type restricts accepted values. The zero value is ParamString.
	Type ParamType
	// EnvVar names an environment variable consulted when the
	// parameter is absent from the command line.
	EnvVar string
	// Value receives the result. Required.
	Value *ParameterValue
}

// displayName is the spelling used in error and help messages,
// preferring the long form.
func (p *Parameter) displayName() string {
	if p.Long != "" {
		return "--" + p.Long
	}
	return "-" + p.Short
}

// placeholder returns the value name for help output.
func (p *Parameter) placeholder() string {
	if p.Placeholder != "" {
		return p.Placeholder
	}
	return "value"
}
