// Package tracker orchestrates the update pipeline: fetch the raw changelog
// text, extract and consolidate records, order them, and replace the
// persisted snapshot. Read paths go straight to the store and never block
// on an update.
package tracker

import (
	"context"

	"github.com/jerryzhao173985/cursorlog/internal/changelog"
	"github.com/jerryzhao173985/cursorlog/internal/config"
	"github.com/jerryzhao173985/cursorlog/internal/errors"
	"github.com/jerryzhao173985/cursorlog/internal/fetch"
	"github.com/jerryzhao173985/cursorlog/internal/store"
)

// Tracker ties the pipeline stages together around one configuration.
type Tracker struct {
	cfg       *config.Configuration
	fetcher   fetch.Fetcher
	store     *store.Store
	extractor *changelog.Extractor
}

// New builds a Tracker from configuration with a Firecrawl fetcher.
func New(cfg *config.Configuration) *Tracker {
	return NewWithFetcher(cfg, fetch.NewClient(cfg.APIKey))
}

// NewWithFetcher builds a Tracker with a custom fetcher, mainly for tests.
func NewWithFetcher(cfg *config.Configuration, fetcher fetch.Fetcher) *Tracker {
	extractor := changelog.NewExtractor()
	if cfg.MinDescriptionLength > 0 {
		extractor.MinDescriptionLen = cfg.MinDescriptionLength
	}
	if len(cfg.FragmentPrefixes) > 0 {
		extractor.CleanOpts = changelog.CleanOptions{FragmentPrefixes: cfg.FragmentPrefixes}
	}

	return &Tracker{
		cfg:       cfg,
		fetcher:   fetcher,
		store:     store.New(cfg.StateDir),
		extractor: extractor,
	}
}

// Store exposes the underlying snapshot store.
func (t *Tracker) Store() *store.Store {
	return t.store
}

// Update fetches the changelog page, runs the extraction pipeline, and
// replaces the persisted snapshot. The fetch is awaited in full before
// extraction begins; the remaining stages run to completion without
// suspension. Returns the newly ordered records.
//
// Concurrent updates are not coordinated: if two run at once, the later
// save wins wholesale.
func (t *Tracker) Update(ctx context.Context) ([]changelog.VersionRecord, error) {
	raw, err := t.fetcher.Scrape(ctx, t.cfg.ChangelogURL)
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Fetch, "fetching changelog",
			"Check your network connection",
			"Verify the API key is valid (cursorlog update --api-key ...)")
	}

	patches := t.extractor.Extract(raw)
	records := changelog.Order(changelog.Consolidate(patches))

	if err := t.store.Save(records); err != nil {
		return nil, errors.WrapWithMessage(err, errors.Persistence, "saving snapshot",
			"Check permissions on "+t.cfg.StateDir)
	}

	return records, nil
}

// Load returns the last saved record sequence. It never fails; a missing or
// corrupt snapshot loads as empty.
func (t *Tracker) Load() []changelog.VersionRecord {
	return t.store.Load()
}

// Latest returns the newest non-wildcard record from the saved snapshot.
func (t *Tracker) Latest() (changelog.VersionRecord, bool) {
	return t.store.Latest()
}
