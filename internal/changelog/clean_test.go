package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := map[string]struct {
		raw      string
		expected string
	}{
		"trims outer whitespace": {
			raw:      "  Fixed a crash in the terminal  ",
			expected: "Fixed a crash in the terminal",
		},
		"strips leading connector punctuation": {
			raw:      " - Fixed a crash. ",
			expected: "Fixed a crash.",
		},
		"strips leading connector run": {
			raw:      "): Improved completions in chat",
			expected: "Improved completions in chat",
		},
		"rewrites markdown link to text": {
			raw:      "[See details](https://x.com/y)",
			expected: "See details",
		},
		"removes bare urls": {
			raw:      "See https://cursor.com/changelog for details",
			expected: "See for details",
		},
		"strips heading marker": {
			raw:      "## Improved tab completion",
			expected: "Improved tab completion",
		},
		"strips numeric colon artifact": {
			raw:      "12): Fixed terminal rendering",
			expected: "Fixed terminal rendering",
		},
		"strips leading nightly token": {
			raw:      "nightly Improved agent mode",
			expected: "Improved agent mode",
		},
		"nightly strip is case insensitive": {
			raw:      "NIGHTLY improvements to chat",
			expected: "improvements to chat",
		},
		"collapses embedded newlines": {
			raw:      "Fixed a bug\nin the parser",
			expected: "Fixed a bug in the parser",
		},
		"collapses whitespace runs": {
			raw:      "Fixed   a\t bug",
			expected: "Fixed a bug",
		},
		"mid-sentence of prefix yields empty": {
			raw:      "of the editor crashing",
			expected: "",
		},
		"mid-sentence until prefix yields empty": {
			raw:      "until the next release",
			expected: "",
		},
		"empty input yields empty": {
			raw:      "",
			expected: "",
		},
		"only punctuation yields empty": {
			raw:      " -- ):  ",
			expected: "",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Clean(tc.raw))
		})
	}
}

func TestCleanWith_CustomFragmentPrefixes(t *testing.T) {
	opts := CleanOptions{FragmentPrefixes: []string{"and "}}

	assert.Equal(t, "", CleanWith("and then the editor restarts", opts))
	// The default prefixes no longer apply.
	assert.Equal(t, "of the editor crashing", CleanWith("of the editor crashing", opts))
}

func TestClean_IsPureAndTotal(t *testing.T) {
	inputs := []string{"", "   ", "\n\n\n", "][][)(::", "https://a.b"}
	for _, in := range inputs {
		first := Clean(in)
		assert.Equal(t, first, Clean(in), "same input must clean identically")
	}
}
