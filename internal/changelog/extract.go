package changelog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultMinDescriptionLen is the shortest cleaned description considered
// meaningful. Anything shorter is treated as a false positive.
const DefaultMinDescriptionLen = 10

// markdownFragments are cleaned descriptions that are pure markdown syntax
// residue and never usable prose.
var markdownFragments = map[string]struct{}{
	"](":     {},
	"]":      {},
	")":      {},
	"](http": {},
	":":      {},
}

// Extractor runs the pattern-matching strategies over a raw changelog blob
// and accumulates the best candidate per version.
type Extractor struct {
	// MinDescriptionLen is the minimum cleaned description length.
	MinDescriptionLen int
	// CleanOpts is passed through to description cleaning.
	CleanOpts CleanOptions
}

// NewExtractor returns an Extractor with default filtering rules.
func NewExtractor() *Extractor {
	return &Extractor{
		MinDescriptionLen: DefaultMinDescriptionLen,
		CleanOpts:         DefaultCleanOptions(),
	}
}

// candidate is one strategy's proposal for a version's description.
type candidate struct {
	version     string
	description string
	detailLink  string
}

// Extract runs every strategy over the raw text and merges the results.
// Each strategy is independent of the others' output; the merge rule decides
// conflicts. Strategies that find nothing simply contribute nothing.
func (e *Extractor) Extract(raw string) PatchMap {
	patches := make(PatchMap)

	// Base strategies: a longer description replaces a shorter one.
	for _, strategy := range []func(string) []candidate{
		sectionCandidates,
		inlineRunCandidates,
		lineAnchoredCandidates,
		patchesSubsectionCandidates,
	} {
		for _, c := range strategy(raw) {
			e.merge(patches, c, false)
		}
	}

	// Range-expansion strategies only fill versions nothing else described.
	for _, strategy := range []func(string) []candidate{
		updateRangeCandidates,
		abbreviatedRangeCandidates,
		bareRangeCandidates,
	} {
		for _, c := range strategy(raw) {
			e.merge(patches, c, true)
		}
	}

	return patches
}

// merge folds one candidate into the working map. The description is kept if
// the version is new, replaced only by a strictly longer one (unless the
// candidate is fill-only), and the first detail link seen for a version is
// never overwritten.
func (e *Extractor) merge(patches PatchMap, c candidate, fillOnly bool) {
	// Versions with a non-zero major component are false positives from
	// unrelated numbers in the page.
	if !strings.HasPrefix(c.version, "0.") {
		return
	}

	desc := CleanWith(c.description, e.CleanOpts)
	if desc == "" || len(desc) < e.MinDescriptionLen {
		return
	}
	if _, bad := markdownFragments[desc]; bad {
		return
	}

	existing, ok := patches[c.version]
	if !ok {
		patches[c.version] = PatchInfo{Description: desc, DetailLink: c.detailLink}
		return
	}

	if !fillOnly && len(desc) > len(existing.Description) {
		existing.Description = desc
	}
	if existing.DetailLink == "" && c.detailLink != "" {
		existing.DetailLink = c.detailLink
	}
	patches[c.version] = existing
}

var (
	inlineMarkerRe     = regexp.MustCompile(`(\d+\.\d+\.\d+)\s*:?\s*-?\s*`)
	lineAnchoredRe     = regexp.MustCompile(`(?m)^(\d+\.\d+\.\d+)\s*:?\s*-?\s*([^-:0-9][^0-9\n]*)$`)
	patchesHeadingRe   = regexp.MustCompile(`###\s*Patches|\*\*Patches\*\*`)
	subsectionEndRe    = regexp.MustCompile(`###|\*\*[A-Z]`)
	wildcardMarkerRe   = regexp.MustCompile(`\d+\.\d+\.x`)
	standaloneNumberRe = regexp.MustCompile(`(?m)^\d{4,}\s*$`)
	headingLinkRe      = regexp.MustCompile(`##\s*\[([^\]]+)\]\(([^)]+)\)`)
	updateRangeRe      = regexp.MustCompile(`(?s)UPDATE\s*\((\d+\.\d+\.\d+)\s*-\s*(\d+\.\d+\.\d+)\):\s*(.*?)(?:\n\n|\n[A-Z]|\z)`)
	abbrevRangeRe      = regexp.MustCompile(`(?s)UPDATE\s*\((\d+\.\d+\.)(\d+)\s*-\s*(\d+)\):\s*(.*?)(?:\n\n|\n[A-Z]|\z)`)
	bareRangeRe        = regexp.MustCompile(`(?s)\((\d+\.\d+\.\d+)\s*-\s*(\d+\.\d+\.\d+)\):\s*(.*?)(?:\n\n|\n[A-Z]|\z)`)
)

// inlineRunCandidates scans for repeating "version: description - version:
// description" runs anywhere in the text. Each version captures the text up
// to the next version marker, newline, or end of input.
func inlineRunCandidates(text string) []candidate {
	var out []candidate

	markers := inlineMarkerRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range markers {
		version := text[m[2]:m[3]]
		start := m[1]
		end := len(text)
		if i+1 < len(markers) && markers[i+1][0] < end {
			end = markers[i+1][0]
		}

		segment := text[start:end]
		if nl := strings.IndexByte(segment, '\n'); nl >= 0 {
			segment = segment[:nl]
		}
		// Drop the separator dash preceding the next version in the run.
		segment = strings.TrimRight(segment, " \t-")
		if segment == "" {
			continue
		}

		out = append(out, candidate{version: version, description: segment})
	}

	return out
}

// lineAnchoredCandidates captures versions at the start of a line with the
// remainder of the line as their description. Remainders containing digits
// are skipped: those lines are multi-version runs, which the inline-run
// strategy splits correctly.
func lineAnchoredCandidates(text string) []candidate {
	var out []candidate
	for _, m := range lineAnchoredRe.FindAllStringSubmatch(text, -1) {
		out = append(out, candidate{version: m[1], description: m[2]})
	}
	return out
}

// patchesSubsectionCandidates locates "Patches" sub-headings (either heading
// spelling) and re-applies the inline-run scan to the subsection span.
func patchesSubsectionCandidates(text string) []candidate {
	var out []candidate
	for _, loc := range patchesHeadingRe.FindAllStringIndex(text, -1) {
		span := text[loc[1]:]
		if end := subsectionEndRe.FindStringIndex(span); end != nil {
			span = span[:end[0]]
		}
		out = append(out, inlineRunCandidates(span)...)
	}
	return out
}

// sectionCandidates splits the text at wildcard minor-series markers
// ("0.48.x"). Each section runs until the next marker, a large standalone
// number, or end of text. A heading-embedded link supplies the section's
// detail link, the paragraph after it the wildcard description, and patch
// versions inside the section inherit the link if they carry none.
func sectionCandidates(text string) []candidate {
	var out []candidate

	markers := wildcardMarkerRe.FindAllStringIndex(text, -1)
	for i, m := range markers {
		label := text[m[0]:m[1]]
		start := m[1]
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		if num := standaloneNumberRe.FindStringIndex(text[start:end]); num != nil {
			end = start + num[0]
		}
		section := text[start:end]

		link := ""
		body := section
		if hl := headingLinkRe.FindStringSubmatchIndex(section); hl != nil {
			link = section[hl[4]:hl[5]]
			body = section[hl[1]:]
		}

		if desc := firstParagraph(body); desc != "" {
			out = append(out, candidate{version: label, description: desc, detailLink: link})
		}

		for _, c := range inlineRunCandidates(section) {
			if c.detailLink == "" {
				c.detailLink = link
			}
			out = append(out, c)
		}
	}

	return out
}

// firstParagraph returns the text up to the first blank line.
func firstParagraph(text string) string {
	text = strings.TrimLeft(text, " \t\r\n")
	if idx := strings.Index(text, "\n\n"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// updateRangeCandidates expands "UPDATE (0.45.1-0.45.11): desc" annotations
// into one candidate per patch version within the range.
func updateRangeCandidates(text string) []candidate {
	var out []candidate
	for _, m := range updateRangeRe.FindAllStringSubmatch(text, -1) {
		out = append(out, expandRange(m[1], m[2], m[3])...)
	}
	return out
}

// abbreviatedRangeCandidates expands the abbreviated form
// "UPDATE (0.45.12-13): desc".
func abbreviatedRangeCandidates(text string) []candidate {
	var out []candidate
	for _, m := range abbrevRangeRe.FindAllStringSubmatch(text, -1) {
		prefix := m[1]
		first, err1 := strconv.Atoi(m[2])
		last, err2 := strconv.Atoi(m[3])
		if err1 != nil || err2 != nil || first > last {
			continue
		}
		for p := first; p <= last; p++ {
			out = append(out, candidate{
				version:     fmt.Sprintf("%s%d", prefix, p),
				description: m[4],
			})
		}
	}
	return out
}

// bareRangeCandidates expands "(0.42.1 - 0.42.5): desc" annotations.
func bareRangeCandidates(text string) []candidate {
	var out []candidate
	for _, m := range bareRangeRe.FindAllStringSubmatch(text, -1) {
		out = append(out, expandRange(m[1], m[2], m[3])...)
	}
	return out
}

// expandRange generates one candidate per patch between two endpoints.
// Endpoints must share major and minor components.
func expandRange(startVersion, endVersion, description string) []candidate {
	start := strings.Split(startVersion, ".")
	end := strings.Split(endVersion, ".")
	if len(start) != 3 || len(end) != 3 {
		return nil
	}
	if start[0] != end[0] || start[1] != end[1] {
		return nil
	}

	first, err1 := strconv.Atoi(start[2])
	last, err2 := strconv.Atoi(end[2])
	if err1 != nil || err2 != nil || first > last {
		return nil
	}

	var out []candidate
	for p := first; p <= last; p++ {
		out = append(out, candidate{
			version:     fmt.Sprintf("%s.%s.%d", start[0], start[1], p),
			description: description,
		})
	}
	return out
}
