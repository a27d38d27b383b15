package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		width int
		want  string
	}{
		"fits":            {input: "short", width: 10, want: "short"},
		"exact":           {input: "exact", width: 5, want: "exact"},
		"cut":             {input: "a longer description", width: 10, want: "a longer …"},
		"width too small": {input: "abcdef", width: 3, want: "abcdef"},
		"multibyte":       {input: "héllo wörld", width: 8, want: "héllo w…"},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Truncate(tc.input, tc.width))
		})
	}
}

func TestPrintSeparator_ContainsLabel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintSeparator(&buf, "cursorlog")

	out := buf.String()
	assert.Contains(t, out, "cursorlog")
	assert.True(t, strings.Contains(out, "─"))
}

func TestPrintSuccessAndWarning(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintSuccess(&buf, "snapshot saved")
	PrintWarning(&buf, "snapshot empty")

	assert.Contains(t, buf.String(), "snapshot saved")
	assert.Contains(t, buf.String(), "snapshot empty")
}
