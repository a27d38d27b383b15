package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerryzhao173985/cursorlog/internal/changelog"
)

func testRecords() []changelog.VersionRecord {
	return []changelog.VersionRecord{
		{Version: "0.48.x", Description: "Series summary entry", DetailLink: "https://cursor.com/changelog/0-48"},
		{Version: "0.48.2", Description: "Fixed a crash on startup"},
		{Version: "0.47.1-0.47.3", Description: "Rolled out the new context engine"},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	records := testRecords()
	require.NoError(t, s.Save(records))

	loaded := s.Load()
	assert.Equal(t, records, loaded)
}

func TestStore_SaveCreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s := New(dir)

	require.NoError(t, s.Save(testRecords()))
	assert.FileExists(t, s.Path())
}

func TestStore_SaveReplacesPriorSnapshot(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.Save(testRecords()))
	replacement := []changelog.VersionRecord{{Version: "0.49.1", Description: "A brand new release entry"}}
	require.NoError(t, s.Save(replacement))

	assert.Equal(t, replacement, s.Load())
}

func TestStore_LoadMissingSnapshotIsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "never-created"))
	assert.Empty(t, s.Load())
}

func TestStore_LoadMalformedSnapshotIsEmpty(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json["), 0o644))

	assert.Empty(t, s.Load())
}

func TestStore_DetailLinkOmittedWhenAbsent(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Save([]changelog.VersionRecord{{Version: "0.48.2", Description: "Fixed a crash on startup"}}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.NotContains(t, raw[0], "detailLink")
	assert.Equal(t, "0.48.2", raw[0]["version"])
	assert.Equal(t, "Fixed a crash on startup", raw[0]["description"])
}

func TestStore_Latest(t *testing.T) {
	s := New(t.TempDir())

	_, ok := s.Latest()
	assert.False(t, ok, "no snapshot yet")

	require.NoError(t, s.Save(testRecords()))

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, "0.48.2", latest.Version, "wildcard label is skipped")
}
