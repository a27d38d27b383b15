package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolidate_MergesConsecutiveRuns(t *testing.T) {
	patches := PatchMap{
		"0.46.1": {Description: "Stability fixes for the agent"},
		"0.46.2": {Description: "Stability fixes for the agent"},
		"0.46.3": {Description: "Stability fixes for the agent"},
	}

	records := Consolidate(patches)
	require.Len(t, records, 1)
	assert.Equal(t, "0.46.1-0.46.3", records[0].Version)
	assert.Equal(t, "Stability fixes for the agent", records[0].Description)
}

func TestConsolidate_SingleVersionKeepsLiteralString(t *testing.T) {
	patches := PatchMap{
		"0.46.5": {Description: "One specific bug fix here"},
	}

	records := Consolidate(patches)
	require.Len(t, records, 1)
	assert.Equal(t, "0.46.5", records[0].Version)
}

func TestConsolidate_GapSplitsRuns(t *testing.T) {
	patches := PatchMap{
		"0.46.1": {Description: "Shared description for the series"},
		"0.46.2": {Description: "Shared description for the series"},
		"0.46.5": {Description: "Shared description for the series"},
	}

	records := Consolidate(patches)
	require.Len(t, records, 2)
	assert.Equal(t, "0.46.1-0.46.2", records[0].Version)
	assert.Equal(t, "0.46.5", records[1].Version)
}

func TestConsolidate_MinorBoundarySplitsRuns(t *testing.T) {
	patches := PatchMap{
		"0.45.9": {Description: "Shared description for the series"},
		"0.46.0": {Description: "Shared description for the series"},
	}

	records := Consolidate(patches)
	require.Len(t, records, 2)
}

func TestConsolidate_Idempotent(t *testing.T) {
	patches := PatchMap{
		"0.46.1": {Description: "Stability fixes for the agent"},
		"0.46.2": {Description: "Stability fixes for the agent"},
		"0.47.1": {Description: "New chat layout for everyone"},
	}

	first := Consolidate(patches)

	again := make(PatchMap, len(first))
	for _, r := range first {
		again[r.Version] = PatchInfo{Description: r.Description, DetailLink: r.DetailLink}
	}

	second := Consolidate(again)
	assert.ElementsMatch(t, first, second)
}

func TestConsolidate_DropsShortDescriptions(t *testing.T) {
	patches := PatchMap{
		"0.46.1": {Description: "too short"},
	}

	assert.Empty(t, Consolidate(patches))
}

func TestConsolidate_DropsMalformedVersions(t *testing.T) {
	patches := PatchMap{
		"0.46":     {Description: "A perfectly fine description"},
		"0.46.1.2": {Description: "A perfectly fine description"},
	}

	assert.Empty(t, Consolidate(patches))
}

func TestConsolidate_WildcardEmitsAsIs(t *testing.T) {
	patches := PatchMap{
		"0.48.x": {Description: "Series summary for the release"},
	}

	records := Consolidate(patches)
	require.Len(t, records, 1)
	assert.Equal(t, "0.48.x", records[0].Version)
}

func TestConsolidate_FirstDetailLinkWinsWithinGroup(t *testing.T) {
	patches := PatchMap{
		"0.46.2": {Description: "Stability fixes for the agent", DetailLink: "https://b.example"},
		"0.46.1": {Description: "Stability fixes for the agent", DetailLink: "https://a.example"},
	}

	records := Consolidate(patches)
	require.Len(t, records, 1)
	// Versions are visited ascending, so 0.46.1's link is encountered first.
	assert.Equal(t, "https://a.example", records[0].DetailLink)
}
