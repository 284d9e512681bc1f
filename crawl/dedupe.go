package crawl

import (
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webmd"
)

// LineDeduper removes repeated boilerplate lines from Markdown. Scope is
// one page: the crawler creates a fresh deduper per page and does not
// carry line fingerprints across pages.
type LineDeduper struct {
	seen map[uint64]struct{}
}

// NewLineDeduper creates an empty LineDeduper.
func NewLineDeduper() *LineDeduper {
	return &LineDeduper{seen: make(map[uint64]struct{})}
}

// Dedupe drops every line whose trimmed text is longer than
// webmd.MinDedupeLineLen characters and has been seen before. Short lines
// always pass through and never register a fingerprint, so list markers,
// blank lines and headings are never suppressed.
func (d *LineDeduper) Dedupe(markdown string) string {
	lines := strings.Split(markdown, "\n")
	unique := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if utf8.RuneCountInString(trimmed) > webmd.MinDedupeLineLen {
			h := xxhash.Sum64String(trimmed)
			if _, ok := d.seen[h]; ok {
				continue
			}
			d.seen[h] = struct{}{}
		}
		unique = append(unique, line)
	}

	return strings.Join(unique, "\n")
}

// PageSet tracks whole-page content fingerprints across one crawl so that
// distinct URLs serving byte-identical Markdown are emitted only once.
type PageSet struct {
	seen map[uint64]struct{}
}

// NewPageSet creates an empty PageSet.
func NewPageSet() *PageSet {
	return &PageSet{seen: make(map[uint64]struct{})}
}

// Seen reports whether the page content has been seen before, inserting
// its fingerprint on first sight. The fingerprint is computed over the
// converted, line-deduped Markdown before the per-page URL header is
// prepended, so identical content at different URLs hashes equal.
func (p *PageSet) Seen(markdown string) bool {
	h := xxhash.Sum64String(markdown)
	if _, ok := p.seen[h]; ok {
		return true
	}
	p.seen[h] = struct{}{}
	return false
}
