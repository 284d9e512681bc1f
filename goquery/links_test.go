package goquery_test

import (
	"testing"

	"github.com/fwojciec/webmd/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns hrefs in document order, unresolved", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://example.com/absolute">abs</a>
<a href="/root-relative">root</a>
<a href="sibling">doc</a>
</body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/absolute",
			"/root-relative",
			"sibling",
		}, links)
	})

	t.Run("skips empty, fragment and non-http hrefs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="">empty</a>
<a href="#">top</a>
<a href="javascript:void(0)">js</a>
<a href="mailto:hi@example.com">mail</a>
<a href="tel:+1234567890">phone</a>
<a href="data:text/plain,x">data</a>
<a href="/keep">keep</a>
</body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"/keep"}, links)
	})

	t.Run("anchors without href are ignored", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewLinkExtractor().ExtractLinks(`<html><body><a name="top">x</a></body></html>`)
		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
