package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/webmd"
	"github.com/fwojciec/webmd/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert("<h1>Title</h1><p>Some <strong>bold</strong> text.</p>")
		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "**bold**")
	})

	t.Run("preserves links and images", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<p><a href="https://example.com">site</a> <img src="/a.png" alt="pic"></p>`)
		require.NoError(t, err)
		assert.Contains(t, md, "[site](https://example.com)")
		assert.Contains(t, md, "![pic](/a.png)")
	})

	t.Run("renders tables", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<table><tr><th>Name</th><th>Age</th></tr><tr><td>Ana</td><td>30</td></tr></table>`)
		require.NoError(t, err)
		assert.Contains(t, md, "| Name |")
		assert.Contains(t, md, "| Ana")
		assert.Contains(t, md, "---", "table rows need a delimiter line")
	})

	t.Run("renders lists", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert("<ul><li>first</li><li>second</li></ul>")
		require.NoError(t, err)
		assert.Contains(t, md, "- first")
		assert.Contains(t, md, "- second")
	})

	t.Run("keeps unicode text intact", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert("<p>żółć 日本語 émigré</p>")
		require.NoError(t, err)
		assert.Contains(t, md, "żółć 日本語 émigré")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := conv.Convert("   ")
		require.Error(t, err)
		assert.Equal(t, webmd.EINVALID, webmd.ErrorCode(err))
	})
}
