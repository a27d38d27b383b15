package changelog

import (
	"regexp"
	"strings"
)

// CleanOptions controls description normalization.
type CleanOptions struct {
	// FragmentPrefixes lists prefixes that mark a description as a
	// mid-sentence capture. A cleaned description starting with one of
	// these is discarded entirely (Clean returns "").
	FragmentPrefixes []string
}

// DefaultCleanOptions returns the standard cleaning configuration.
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{
		FragmentPrefixes: []string{"of ", "until "},
	}
}

var (
	leadingConnectorRe = regexp.MustCompile(`^[.,:;\-)\]]+\s*`)
	markdownLinkRe     = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	bareURLRe          = regexp.MustCompile(`https?://\S+`)
	leadingHeadingRe   = regexp.MustCompile(`^##\s*`)
	leadingNumColonRe  = regexp.MustCompile(`^\d+\):\s*`)
	leadingBracketsRe  = regexp.MustCompile(`^[):\]\[]+\s*`)
	leadingNightlyRe   = regexp.MustCompile(`(?i)^nightly\s*`)
	newlineRunRe       = regexp.MustCompile(`\s*\n\s*`)
	spaceRunRe         = regexp.MustCompile(`\s+`)
)

// Clean normalizes a raw description fragment using the default options.
// It is pure and total: any input yields a string, possibly empty.
func Clean(raw string) string {
	return CleanWith(raw, DefaultCleanOptions())
}

// CleanWith normalizes a raw description fragment. Steps run in a fixed
// order; callers must treat an empty result as "no usable description".
func CleanWith(raw string, opts CleanOptions) string {
	desc := strings.TrimSpace(raw)

	// Leading connector punctuation signals a partial capture.
	desc = leadingConnectorRe.ReplaceAllString(desc, "")

	// Markdown links become their text; bare URLs disappear.
	desc = markdownLinkRe.ReplaceAllString(desc, "$1")
	desc = bareURLRe.ReplaceAllString(desc, "")

	desc = leadingHeadingRe.ReplaceAllString(desc, "")

	// Artifacts left over from abbreviated ranges like "12): ".
	desc = leadingNumColonRe.ReplaceAllString(desc, "")
	desc = leadingBracketsRe.ReplaceAllString(desc, "")

	desc = leadingNightlyRe.ReplaceAllString(desc, "")

	desc = newlineRunRe.ReplaceAllString(desc, " ")
	desc = spaceRunRe.ReplaceAllString(desc, " ")
	desc = strings.TrimSpace(desc)

	for _, prefix := range opts.FragmentPrefixes {
		if strings.HasPrefix(desc, prefix) {
			return ""
		}
	}

	return desc
}
