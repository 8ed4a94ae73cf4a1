package cliutil

// ArgValue is the destination a positional Arg writes into.
type ArgValue struct {
	value string
	set   bool
}

// IsSet reports whether the argument was supplied.
func (v *ArgValue) IsSet() bool {
	return v.set
}

// String returns the supplied value, or the empty string when unset.
func (v *ArgValue) String() string {
	return v.value
}

func (v *ArgValue) setValue(value string) {
	v.value = value
	v.set = true
}

// ArgsValue collects the values of a variadic Arg in order.
type ArgsValue struct {
	values []string
}

// Strings returns the collected values. The slice is nil when none
// were supplied.
func (v *ArgsValue) Strings() []string {
	return v.values
}

func (v *ArgsValue) add(value string) {
	v.values = append(v.values, value)
}

// Arg is a positional command line argument. Positionals are filled in
// declaration order after subcommand dispatch is ruled out.
//
//	$ myapp greet <name>
type Arg struct {
	// Name identifies the argument in help and error messages.
	Name string
	// Description is shown in help output.
	Description string
	// Required makes parsing fail when the argument is missing.
	Required bool
	// Variadic collects all remaining positionals. Only the last
	// argument of a command may be variadic.
	Variadic bool
	// Value receives the result for a non-variadic argument.
	Value *ArgValue
	// Values receives the results for a variadic argument.
	Values *ArgsValue
}
