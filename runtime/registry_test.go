package runtime_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacobrgreen/cliutil/runtime"
)

func noopHandler(ctx context.Context, inv *runtime.Invocation) error {
	return nil
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := runtime.NewRegistry()
	reg.Register("Greet", noopHandler)

	// --- Act ---
	handler, ok := reg.Lookup("Greet")

	// --- Assert ---
	require.True(t, ok)
	require.NotNil(t, handler)

	_, ok = reg.Lookup("Missing")
	assert.False(t, ok)
}

func TestRegistryDuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := runtime.NewRegistry()
	reg.Register("Greet", noopHandler)

	// --- Act / Assert ---
	require.PanicsWithValue(t,
		"handler with name 'Greet' already registered",
		func() { reg.Register("Greet", noopHandler) },
	)
}

func TestRegistryNamesAreSorted(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := runtime.NewRegistry()
	reg.Register("Serve", noopHandler)
	reg.Register("Copy", noopHandler)
	reg.Register("Root", noopHandler)

	// --- Act / Assert ---
	assert.Equal(t, []string{"Copy", "Root", "Serve"}, reg.Names())
}
