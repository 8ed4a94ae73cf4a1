// internal/textutil/textutil_test.go
package textutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "short text stays on one line",
			text:  "a test flag",
			width: 20,
			want:  []string{"a test flag"},
		},
		{
			name:  "long text breaks at word boundaries",
			text:  "runs the program in headless mode without a display",
			width: 24,
			want:  []string{"runs the program in", "headless mode without a", "display"},
		},
		{
			name:  "zero width disables wrapping",
			text:  "never wrapped no matter how long it is",
			width: 0,
			want:  []string{"never wrapped no matter how long it is"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Wrap(tc.text, tc.width))
		})
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "abcd", PadRight("abcd", 4))
	assert.Equal(t, "abcde", PadRight("abcde", 4))
	assert.Equal(t, "    ", PadRight("", 4))
}

func TestTerminalFallbacks(t *testing.T) {
	t.Parallel()

	// A plain buffer has no file descriptor, so both helpers take the
	// non-terminal path.
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))
	assert.Equal(t, DefaultWidth, TerminalWidth(&buf))
}
