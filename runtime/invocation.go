package runtime

import (
	"fmt"
	"strings"
	"time"

	"github.com/jacobrgreen/cliutil"
)

// Invocation gives a handler access to the values parsed for its
// command, looked up by the names used in the definition. Values of
// ancestor commands are visible too; on a name clash the nearest
// definition wins.
//
// Looking up a name the definition never declared is a programmer
// error and panics: the handler disagrees with the definition it was
// registered for.
type Invocation struct {
	path     []string
	flags    map[string]*cliutil.FlagValue
	params   map[string]*cliutil.ParameterValue
	args     map[string]*cliutil.ArgValue
	variadic map[string]*cliutil.ArgsValue
}

// Path returns the invoked command's path, starting with the
// application name.
func (inv *Invocation) Path() []string {
	return append([]string(nil), inv.path...)
}

// Flag reports whether the named flag was set.
func (inv *Invocation) Flag(name string) bool {
	return inv.flag(name).IsSet()
}

// IsSet reports whether the named parameter received a value from the
// command line, the environment or a default.
func (inv *Invocation) IsSet(name string) bool {
	return inv.param(name).IsSet()
}

// Parameter returns the named parameter's raw value and whether it was
// set at all.
func (inv *Invocation) Parameter(name string) (string, bool) {
	p := inv.param(name)
	return p.String(), p.IsSet()
}

// String returns the named parameter's raw value.
func (inv *Invocation) String(name string) string {
	return inv.param(name).String()
}

// Int converts the named parameter's value.
func (inv *Invocation) Int(name string) (int, error) {
	return inv.param(name).Int()
}

// Bool converts the named parameter's value.
func (inv *Invocation) Bool(name string) (bool, error) {
	return inv.param(name).Bool()
}

// Duration converts the named parameter's value.
func (inv *Invocation) Duration(name string) (time.Duration, error) {
	return inv.param(name).Duration()
}

// Arg returns the named positional argument's value, or the empty
// string when it was not supplied.
func (inv *Invocation) Arg(name string) string {
	if v, ok := inv.args[name]; ok {
		return v.String()
	}
	inv.unknown("argument", name)
	return ""
}

// Args returns the named variadic argument's values in order.
func (inv *Invocation) Args(name string) []string {
	if v, ok := inv.variadic[name]; ok {
		return v.Strings()
	}
	inv.unknown("variadic argument", name)
	return nil
}

func (inv *Invocation) flag(name string) *cliutil.FlagValue {
	if v, ok := inv.flags[name]; ok {
		return v
	}
	inv.unknown("flag", name)
	return nil
}

func (inv *Invocation) param(name string) *cliutil.ParameterValue {
	if v, ok := inv.params[name]; ok {
		return v
	}
	inv.unknown("parameter", name)
	return nil
}

func (inv *Invocation) unknown(kind, name string) {
	panic(fmt.Sprintf("command '%s' has no %s named '%s'", strings.Join(inv.path, " "), kind, name))
}

// child derives the invocation a subcommand's handler will see.
func (inv *Invocation) child(name string) *Invocation {
	c := &Invocation{
		path:     append(append([]string(nil), inv.path...), name),
		flags:    make(map[string]*cliutil.FlagValue, len(inv.flags)),
		params:   make(map[string]*cliutil.ParameterValue, len(inv.params)),
		args:     make(map[string]*cliutil.ArgValue, len(inv.args)),
		variadic: make(map[string]*cliutil.ArgsValue, len(inv.variadic)),
	}
	for k, v := range inv.flags {
		c.flags[k] = v
	}
	for k, v := range inv.params {
		c.params[k] = v
	}
	for k, v := range inv.args {
		c.args[k] = v
	}
	for k, v := range inv.variadic {
		c.variadic[k] = v
	}
	return c
}

func newInvocation(appName string) *Invocation {
	return &Invocation{
		path:     []string{appName},
		flags:    make(map[string]*cliutil.FlagValue),
		params:   make(map[string]*cliutil.ParameterValue),
		args:     make(map[string]*cliutil.ArgValue),
		variadic: make(map[string]*cliutil.ArgsValue),
	}
}
