package changelog

import "sort"

// descriptionGroup collects the versions sharing one cleaned description.
type descriptionGroup struct {
	versions   []string
	detailLink string
}

// Consolidate inverts the patch map into groups keyed by description and
// merges runs of consecutive patch versions into range records. Output order
// across groups is unspecified; Order imposes the final ordering.
func Consolidate(patches PatchMap) []VersionRecord {
	// Iterate versions in ascending order so the "first" detail link seen
	// for a group is deterministic.
	versions := make([]string, 0, len(patches))
	for v := range patches {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		return compareTuples(versionTuple(versions[i]), versionTuple(versions[j])) < 0
	})

	groups := make(map[string]*descriptionGroup)
	var order []string
	for _, v := range versions {
		info := patches[v]
		g, ok := groups[info.Description]
		if !ok {
			g = &descriptionGroup{}
			groups[info.Description] = g
			order = append(order, info.Description)
		}
		g.versions = append(g.versions, v)
		if g.detailLink == "" {
			g.detailLink = info.DetailLink
		}
	}

	var records []VersionRecord
	for _, desc := range order {
		if len(desc) < DefaultMinDescriptionLen {
			continue
		}
		records = append(records, consolidateGroup(desc, groups[desc])...)
	}
	return records
}

// consolidateGroup partitions one group's versions into maximal consecutive
// runs and emits a record per run.
func consolidateGroup(desc string, g *descriptionGroup) []VersionRecord {
	// Only well-formed versions participate: numeric three-component
	// patches, wildcard minor-series labels, and already-merged ranges.
	// Wildcards and ranges never join a run, so consolidation is
	// idempotent over its own output.
	var members []string
	for _, v := range g.versions {
		if patchVersionRe.MatchString(v) || wildcardVersionRe.MatchString(v) || rangeVersionRe.MatchString(v) {
			members = append(members, v)
		}
	}
	if len(members) == 0 {
		return nil
	}

	sort.SliceStable(members, func(i, j int) bool {
		return compareTuples(versionTuple(members[i]), versionTuple(members[j])) < 0
	})

	var records []VersionRecord
	run := []string{members[0]}
	for i := 1; i < len(members); i++ {
		if consecutive(members[i-1], members[i]) {
			run = append(run, members[i])
			continue
		}
		records = append(records, emitRun(run, desc, g.detailLink))
		run = []string{members[i]}
	}
	records = append(records, emitRun(run, desc, g.detailLink))

	return records
}

// consecutive reports whether b is the patch release immediately after a.
func consecutive(a, b string) bool {
	if !patchVersionRe.MatchString(a) || !patchVersionRe.MatchString(b) {
		return false
	}
	ta, tb := versionTuple(a), versionTuple(b)
	return ta[0] == tb[0] && ta[1] == tb[1] && ta[2]+1 == tb[2]
}

// emitRun builds one record for a run: the literal version for a singleton,
// a hyphen-joined range otherwise.
func emitRun(run []string, desc, link string) VersionRecord {
	version := run[0]
	if len(run) > 1 {
		version = run[0] + "-" + run[len(run)-1]
	}
	return VersionRecord{Version: version, Description: desc, DetailLink: link}
}
