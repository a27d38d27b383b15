package changelog

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// FormatOptions controls how records are rendered to a terminal.
type FormatOptions struct {
	// Plain disables colors and icons for script-friendly output.
	Plain bool
}

var (
	versionColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	linkColor    = color.New(color.FgBlue, color.Faint).SprintFunc()
)

// FormatRecords writes one line per record to w, newest first as given.
func FormatRecords(records []VersionRecord, w io.Writer, opts FormatOptions) error {
	for _, r := range records {
		if err := FormatRecord(r, w, opts); err != nil {
			return err
		}
	}
	return nil
}

// FormatRecord writes a single record as "version  description" with the
// detail link appended when present.
func FormatRecord(r VersionRecord, w io.Writer, opts FormatOptions) error {
	var err error
	if opts.Plain {
		if r.DetailLink != "" {
			_, err = fmt.Fprintf(w, "%s  %s (%s)\n", r.Version, r.Description, r.DetailLink)
		} else {
			_, err = fmt.Fprintf(w, "%s  %s\n", r.Version, r.Description)
		}
		return err
	}

	if r.DetailLink != "" {
		_, err = fmt.Fprintf(w, "%s  %s %s\n", versionColor(r.Version), r.Description, linkColor("("+r.DetailLink+")"))
	} else {
		_, err = fmt.Fprintf(w, "%s  %s\n", versionColor(r.Version), r.Description)
	}
	return err
}
