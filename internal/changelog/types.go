package changelog

import (
	"regexp"
	"strconv"
	"strings"
)

// VersionRecord is one consolidated changelog entry. Version is either a
// three-component patch version ("0.48.2"), a wildcard minor-series label
// ("0.48.x"), or a hyphenated range of consecutive patches ("0.46.1-0.46.5").
type VersionRecord struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	DetailLink  string `json:"detailLink,omitempty"`
}

// PatchInfo is the best-known candidate for a single version while an
// extraction run is in progress.
type PatchInfo struct {
	Description string
	DetailLink  string
}

// PatchMap accumulates extraction candidates keyed by raw version string.
// It lives only within one extraction run and never escapes it.
type PatchMap map[string]PatchInfo

var (
	patchVersionRe    = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	wildcardVersionRe = regexp.MustCompile(`^\d+\.\d+\.x$`)
	rangeVersionRe    = regexp.MustCompile(`^\d+\.\d+\.\d+-\d+\.\d+\.\d+$`)
)

// IsWildcard reports whether the record's version is a minor-series label
// such as "0.48.x".
func (r VersionRecord) IsWildcard() bool {
	return wildcardVersionRe.MatchString(r.Version)
}

// IsRange reports whether the record's version spans two endpoints.
func (r VersionRecord) IsRange() bool {
	return strings.Contains(r.Version, "-")
}

// versionTuple parses a dotted version string into integer components.
// Missing or unparseable components are treated as 0, so "0.48.x" parses
// as [0 48 0].
func versionTuple(version string) [3]int {
	var t [3]int
	for i, part := range strings.SplitN(version, ".", 3) {
		if i >= 3 {
			break
		}
		if n, err := strconv.Atoi(part); err == nil {
			t[i] = n
		}
	}
	return t
}

// compareTuples returns -1, 0, or 1 comparing two version tuples
// lexicographically.
func compareTuples(a, b [3]int) int {
	for i := 0; i < 3; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
