package crawl_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/webmd/crawl"
	"github.com/stretchr/testify/assert"
)

func TestLineDeduper_Dedupe(t *testing.T) {
	t.Parallel()

	// Over the 40-character fingerprinting threshold.
	longLine := "This is a repeated boilerplate line well over the length threshold."

	t.Run("drops repeated long lines", func(t *testing.T) {
		t.Parallel()

		d := crawl.NewLineDeduper()
		input := longLine + "\nUnique content.\n" + longLine
		got := d.Dedupe(input)
		assert.Equal(t, longLine+"\nUnique content.", got)
	})

	t.Run("keeps repeated short lines", func(t *testing.T) {
		t.Parallel()

		d := crawl.NewLineDeduper()
		input := "* item\n* item\n\n\n# Heading\n# Heading"
		got := d.Dedupe(input)
		assert.Equal(t, input, got, "short lines and blanks must never be suppressed")
	})

	t.Run("thresholds count characters, not bytes", func(t *testing.T) {
		t.Parallel()

		// 20 runes but 60 bytes in UTF-8: under the 40-character
		// threshold, so the repeat must never be suppressed.
		cjkLine := "これは短い日本語の行ですがバイト数は多い"

		d := crawl.NewLineDeduper()
		input := cjkLine + "\n" + cjkLine
		got := d.Dedupe(input)
		assert.Equal(t, input, got)
	})

	t.Run("compares trimmed text but preserves original indentation", func(t *testing.T) {
		t.Parallel()

		d := crawl.NewLineDeduper()
		input := "    " + longLine + "\n" + longLine
		got := d.Dedupe(input)
		assert.Equal(t, "    "+longLine, got, "indented and bare spellings are the same line")
	})

	t.Run("state accumulates across calls", func(t *testing.T) {
		t.Parallel()

		d := crawl.NewLineDeduper()
		first := d.Dedupe(longLine)
		assert.Equal(t, longLine, first)

		second := d.Dedupe(longLine + "\nfresh text")
		assert.Equal(t, "fresh text", strings.TrimSpace(second))
	})
}

func TestPageSet_Seen(t *testing.T) {
	t.Parallel()

	p := crawl.NewPageSet()

	assert.False(t, p.Seen("# Docs\n\nPage body."), "first sighting should report unseen")
	assert.True(t, p.Seen("# Docs\n\nPage body."), "second sighting must report seen")
	assert.False(t, p.Seen("# Docs\n\nDifferent body."), "different content is unseen")
}
