// Package store persists the consolidated changelog snapshot.
//
// The snapshot is a single JSON file holding the full ordered record
// sequence. Saves replace it wholesale; there is no history of prior
// snapshots. Reads never fail: a missing or undecodable snapshot loads as
// an empty sequence.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jerryzhao173985/cursorlog/internal/changelog"
)

// SnapshotFile is the snapshot's file name within the state directory.
const SnapshotFile = "changelog.json"

// Store reads and writes the changelog snapshot under a state directory.
type Store struct {
	// StateDir is the directory containing the snapshot file. It is
	// created on first save if it does not exist.
	StateDir string
}

// New creates a Store rooted at stateDir.
func New(stateDir string) *Store {
	return &Store{StateDir: stateDir}
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return filepath.Join(s.StateDir, SnapshotFile)
}

// Save replaces the snapshot with the given records. The write goes through
// a temp file and a rename, so readers never observe a partial snapshot.
// Failures propagate: silently losing a save would desynchronize in-memory
// and durable state.
func (s *Store) Save(records []changelog.VersionRecord) error {
	if err := os.MkdirAll(s.StateDir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(s.StateDir, SnapshotFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing snapshot: %w", err)
	}

	if err := os.Rename(tmpPath, s.Path()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing snapshot: %w", err)
	}

	return nil
}

// Load returns the last saved record sequence. A missing snapshot loads as
// empty; a snapshot that cannot be decoded is reported to stderr and also
// loads as empty. Load never returns an error to callers.
func (s *Store) Load() []changelog.VersionRecord {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to read snapshot: %v\n", err)
		}
		return nil
	}

	var records []changelog.VersionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: snapshot at %s is not decodable, ignoring it: %v\n", s.Path(), err)
		return nil
	}

	return records
}

// Latest returns the newest non-wildcard record from the saved snapshot,
// following the snapshot's stored order. The second return value is false
// when no snapshot exists or it is empty.
func (s *Store) Latest() (changelog.VersionRecord, bool) {
	return changelog.Latest(s.Load())
}
