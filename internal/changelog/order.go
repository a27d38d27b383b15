package changelog

import (
	"sort"
	"strconv"
	"strings"
)

// wildcardSentinel makes an in-progress minor-series label ("0.48.x") sort
// ahead of every released patch within the same series.
const wildcardSentinel = 999

// Order returns the records sorted newest first. The sort is stable: records
// with equal keys keep their relative order. The input slice is not mutated.
func Order(records []VersionRecord) []VersionRecord {
	out := make([]VersionRecord, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		return compareTuples(orderKey(out[i].Version), orderKey(out[j].Version)) > 0
	})

	return out
}

// orderKey derives the comparison tuple for a version string. A range sorts
// by its right-hand endpoint; a wildcard patch component becomes the
// sentinel; anything unparseable becomes 0.
func orderKey(version string) [3]int {
	if idx := strings.LastIndex(version, "-"); idx >= 0 {
		version = version[idx+1:]
	}

	var t [3]int
	for i, part := range strings.Split(version, ".") {
		if i >= 3 {
			break
		}
		if part == "x" {
			t[i] = wildcardSentinel
			continue
		}
		if n, err := strconv.Atoi(part); err == nil {
			t[i] = n
		}
	}
	return t
}

// Latest returns the first record whose version is not a wildcard label.
// If every record is a wildcard label the very first record is returned.
// The second return value is false when records is empty.
func Latest(records []VersionRecord) (VersionRecord, bool) {
	if len(records) == 0 {
		return VersionRecord{}, false
	}
	for _, r := range records {
		if !r.IsWildcard() {
			return r, true
		}
	}
	return records[0], true
}
