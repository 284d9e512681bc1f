package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/webmd"
	"github.com/fwojciec/webmd/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// filler is comfortably over the visible-text floor.
var filler = strings.Repeat("Real documentation text that belongs in the output. ", 6)

func TestSelectorExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts the main element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav>Site navigation</nav>
<main><h1>Guide</h1><p>` + filler + `</p></main>
<footer>Copyright</footer>
</body></html>`

		result, err := goquery.NewMainExtractor().Extract(html)
		require.NoError(t, err)
		assert.Equal(t, webmd.StrategyMain, result.Strategy)
		assert.Contains(t, result.ContentHTML, "<h1>Guide</h1>")
		assert.NotContains(t, result.ContentHTML, "Site navigation")
		assert.NotContains(t, result.ContentHTML, "Copyright")
	})

	t.Run("extracts the article element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>` + filler + `</p></article></body></html>`

		result, err := goquery.NewArticleExtractor().Extract(html)
		require.NoError(t, err)
		assert.Equal(t, webmd.StrategyArticle, result.Strategy)
		assert.Contains(t, result.ContentHTML, "<article>")
	})

	t.Run("strips noise tags nested inside the match", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
<script>tracking()</script>
<aside>Related links</aside>
<p>` + filler + `</p>
</main></body></html>`

		result, err := goquery.NewMainExtractor().Extract(html)
		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "tracking()")
		assert.NotContains(t, result.ContentHTML, "Related links")
	})

	t.Run("returns ENOCONTENT when the element is missing", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewMainExtractor().Extract(`<html><body><p>no main here</p></body></html>`)
		require.Error(t, err)
		assert.Equal(t, webmd.ENOCONTENT, webmd.ErrorCode(err))
	})

	t.Run("returns ENOCONTENT when visible text is too short", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewMainExtractor().Extract(`<html><body><main><p>tiny</p></main></body></html>`)
		require.Error(t, err)
		assert.Equal(t, webmd.ENOCONTENT, webmd.ErrorCode(err))
	})

	t.Run("text floor counts characters, not bytes", func(t *testing.T) {
		t.Parallel()

		// 120 runes of CJK text is 360 bytes: over the floor in bytes,
		// under it in characters, so the element must be rejected.
		cjk := strings.Repeat("日本語の文書", 20)
		html := `<html><body><main><p>` + cjk + `</p></main></body></html>`

		_, err := goquery.NewMainExtractor().Extract(html)
		require.Error(t, err)
		assert.Equal(t, webmd.ENOCONTENT, webmd.ErrorCode(err))
	})
}

func TestContentAreaExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("finds common content-area ids and classes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div id="content"><p>` + filler + `</p></div></body></html>`

		result, err := goquery.NewContentAreaExtractor().Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "selector:#content", result.Strategy)
		assert.Contains(t, result.ContentHTML, "Real documentation text")
	})

	t.Run("prefers earlier selectors", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div id="content"><p>` + filler + `</p></div>
<div class="main-content"><p>` + filler + `</p></div>
</body></html>`

		result, err := goquery.NewContentAreaExtractor().Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "selector:#content", result.Strategy)
	})

	t.Run("skips areas with too little text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div id="content"><p>tiny</p></div>
<div role="main"><p>` + filler + `</p></div>
</body></html>`

		result, err := goquery.NewContentAreaExtractor().Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "selector:[role='main']", result.Strategy)
	})

	t.Run("returns ENOCONTENT when nothing matches", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewContentAreaExtractor().Extract(`<html><body><p>plain page</p></body></html>`)
		require.Error(t, err)
		assert.Equal(t, webmd.ENOCONTENT, webmd.ErrorCode(err))
	})
}
