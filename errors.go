package cliutil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/jacobrgreen/cliutil/internal/textutil"
)

// Usage error kinds. A *UsageError returned by Run matches exactly one
// of these through errors.Is.
var (
	ErrUnknownArgument     = errors.New("unknown argument")
	ErrUnexpectedParameter = errors.New("unexpected parameter")
	ErrUnknownCommand      = errors.New("unknown command")
	ErrExpectedValue       = errors.New("expected value")
	ErrExpectedSubcommand  = errors.New("expected subcommand")
	ErrMissingParameter    = errors.New("missing required parameter")
	ErrExpectedArgument    = errors.New("expected argument")
	ErrUnexpectedArgument  = errors.New("unexpected argument")
	ErrInvalidValue        = errors.New("invalid value")
)

// UsageError describes a command line the application could not accept.
// It never reaches a handler: parsing stops at the first problem.
type UsageError struct {
	// Kind is one of the Err sentinels above.
	Kind error
	// Token is the offending input, as the user typed it.
	Token string
	// Command is the path of the command that was parsing, starting
	// with the application name.
	Command []string
	// Suggestion holds a near-miss name when one exists.
	Suggestion string
	// Detail carries extra context for invalid values.
	Detail string
}

func (e *UsageError) Error() string {
	switch e.Kind {
	case ErrUnknownArgument:
		return "Unknown argument: " + e.Token
	case ErrUnexpectedParameter:
		return "Unexpected parameter: " + e.Token
	case ErrUnknownCommand:
		return "Unknown command: " + e.Token
	case ErrExpectedValue:
		return "Expected value for argument: " + e.Token
	case ErrExpectedSubcommand:
		return "Expected subcommand"
	case ErrMissingParameter:
		return "Missing required parameter: " + e.Token
	case ErrExpectedArgument:
		return "Expected argument: " + e.Token
	case ErrUnexpectedArgument:
		return "Unexpected argument: " + e.Token
	case ErrInvalidValue:
		if e.Detail != "" {
			return fmt.Sprintf("Invalid value for argument %s: %s", e.Token, e.Detail)
		}
		return "Invalid value for argument: " + e.Token
	}
	return "command line error: " + e.Token
}

func (e *UsageError) Unwrap() error {
	return e.Kind
}

// ValidationError aggregates every problem found in an application
// definition so callers see the whole list at once.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("application definition invalid:\n- %s", strings.Join(e.Issues, "\n- "))
}

// ExitError lets a handler request a specific process exit code. Run
// passes it through untouched.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// ExitCode maps an error returned by Run to a process exit code: 0 for
// nil, the explicit code of an ExitError, 2 for usage and validation
// errors, and 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return 2
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return 2
	}
	return 1
}

// FprintError renders err for end users: the message, a did-you-mean
// line when a suggestion exists, and a help hint for usage errors. The
// prefix is colored when w is a terminal.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}

	prefix := "Error:"
	if textutil.IsTerminal(w) {
		prefix = color.Red.Sprint(prefix)
	}
	fmt.Fprintf(w, "%s %s\n", prefix, err)

	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		return
	}
	if usageErr.Suggestion != "" {
		fmt.Fprintf(w, "Did you mean '%s'?\n", usageErr.Suggestion)
	}
	if len(usageErr.Command) > 0 {
		fmt.Fprintf(w, "Run '%s help' for usage.\n", strings.Join(usageErr.Command, " "))
	}
}
