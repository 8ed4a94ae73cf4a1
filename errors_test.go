package cliutil

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageErrorMessages(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  *UsageError
		want string
	}{
		{
			name: "unknown argument",
			err:  &UsageError{Kind: ErrUnknownArgument, Token: "--frobnicate"},
			want: "Unknown argument: --frobnicate",
		},
		{
			name: "unexpected parameter",
			err:  &UsageError{Kind: ErrUnexpectedParameter, Token: "--force=yes"},
			want: "Unexpected parameter: --force=yes",
		},
		{
			name: "unknown command",
			err:  &UsageError{Kind: ErrUnknownCommand, Token: "servo"},
			want: "Unknown command: servo",
		},
		{
			name: "expected value",
			err:  &UsageError{Kind: ErrExpectedValue, Token: "--port"},
			want: "Expected value for argument: --port",
		},
		{
			name: "expected subcommand",
			err:  &UsageError{Kind: ErrExpectedSubcommand},
			want: "Expected subcommand",
		},
		{
			name: "missing required parameter",
			err:  &UsageError{Kind: ErrMissingParameter, Token: "--token"},
			want: "Missing required parameter: --token",
		},
		{
			name: "expected argument",
			err:  &UsageError{Kind: ErrExpectedArgument, Token: "name"},
			want: "Expected argument: name",
		},
		{
			name: "unexpected argument",
			err:  &UsageError{Kind: ErrUnexpectedArgument, Token: "extra"},
			want: "Unexpected argument: extra",
		},
		{
			name: "invalid value with detail",
			err:  &UsageError{Kind: ErrInvalidValue, Token: "--port", Detail: `"abc" is not a valid int`},
			want: `Invalid value for argument --port: "abc" is not a valid int`,
		},
		{
			name: "invalid value without detail",
			err:  &UsageError{Kind: ErrInvalidValue, Token: "--port"},
			want: "Invalid value for argument: --port",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.err.Error())
			assert.ErrorIs(t, tc.err, tc.err.Kind)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Issues: []string{"first problem", "second problem"}}

	want := "application definition invalid:\n- first problem\n- second problem"
	assert.Equal(t, want, err.Error())
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "no error", err: nil, want: 0},
		{name: "exit error", err: &ExitError{Code: 3, Message: "gave up"}, want: 3},
		{name: "wrapped exit error", err: fmt.Errorf("handler: %w", &ExitError{Code: 4}), want: 4},
		{name: "usage error", err: &UsageError{Kind: ErrUnknownCommand, Token: "servo"}, want: 2},
		{name: "validation error", err: &ValidationError{Issues: []string{"bad"}}, want: 2},
		{name: "other error", err: errors.New("boom"), want: 1},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestFprintError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "usage error with suggestion and command",
			err: &UsageError{
				Kind:       ErrUnknownArgument,
				Token:      "--forc",
				Command:    []string{"tool"},
				Suggestion: "--force",
			},
			want: "Error: Unknown argument: --forc\n" +
				"Did you mean '--force'?\n" +
				"Run 'tool help' for usage.\n",
		},
		{
			name: "usage error under a subcommand",
			err: &UsageError{
				Kind:    ErrExpectedSubcommand,
				Command: []string{"tool", "remote"},
			},
			want: "Error: Expected subcommand\n" +
				"Run 'tool remote help' for usage.\n",
		},
		{
			name: "usage error without command path",
			err:  &UsageError{Kind: ErrUnknownArgument, Token: "--frob"},
			want: "Error: Unknown argument: --frob\n",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "Error: boom\n",
		},
		{
			name: "nil error prints nothing",
			err:  nil,
			want: "",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			var out bytes.Buffer
			FprintError(&out, tc.err)

			// --- Assert ---
			require.Equal(t, tc.want, out.String())
		})
	}
}
