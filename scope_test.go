package webmd_test

import (
	"testing"

	"github.com/fwojciec/webmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScope(t *testing.T) {
	t.Parallel()

	t.Run("accepts http and https seeds", func(t *testing.T) {
		t.Parallel()

		for _, seed := range []string{"https://example.com", "http://example.com/docs"} {
			s, err := webmd.NewScope(seed, false)
			require.NoError(t, err)
			assert.NotNil(t, s)
		}
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		t.Parallel()

		_, err := webmd.NewScope("ftp://example.com", false)
		require.Error(t, err)
		assert.Equal(t, webmd.EINVALID, webmd.ErrorCode(err))
	})

	t.Run("rejects seed without host", func(t *testing.T) {
		t.Parallel()

		_, err := webmd.NewScope("https://", false)
		require.Error(t, err)
		assert.Equal(t, webmd.EINVALID, webmd.ErrorCode(err))
	})
}

func TestScope_Origin(t *testing.T) {
	t.Parallel()

	s, err := webmd.NewScope("https://www.example.com/docs/intro", false)
	require.NoError(t, err)
	assert.Equal(t, "https://www.example.com", s.Origin())
}

func TestScope_Normalize(t *testing.T) {
	t.Parallel()

	newScope := func(t *testing.T, seed string, subdomains bool) *webmd.Scope {
		t.Helper()
		s, err := webmd.NewScope(seed, subdomains)
		require.NoError(t, err)
		return s
	}

	t.Run("resolves absolute paths against the origin", func(t *testing.T) {
		t.Parallel()

		s := newScope(t, "https://example.com", false)
		got, ok := s.Normalize("/docs/intro", "https://example.com/guides/setup/")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/docs/intro/", got)
	})

	t.Run("resolves document-relative links against the parent", func(t *testing.T) {
		t.Parallel()

		s := newScope(t, "https://example.com", false)
		got, ok := s.Normalize("intro", "https://example.com/docs/")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/docs/intro/", got)
	})

	t.Run("drops query string and fragment", func(t *testing.T) {
		t.Parallel()

		s := newScope(t, "https://example.com", false)
		got, ok := s.Normalize("https://example.com/docs?version=2#install", "https://example.com/")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/docs/", got)
	})

	t.Run("collapses trailing-slash variants to one URL", func(t *testing.T) {
		t.Parallel()

		s := newScope(t, "https://example.com", false)
		a, ok := s.Normalize("https://example.com/docs", "https://example.com/")
		require.True(t, ok)
		b, ok := s.Normalize("https://example.com/docs/", "https://example.com/")
		require.True(t, ok)
		assert.Equal(t, a, b)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		s := newScope(t, "https://example.com", false)
		once, ok := s.Normalize("https://example.com/docs/page?x=1", "https://example.com/")
		require.True(t, ok)
		twice, ok := s.Normalize(once, "https://example.com/")
		require.True(t, ok)
		assert.Equal(t, once, twice)
	})

	t.Run("treats www and bare host as the same domain", func(t *testing.T) {
		t.Parallel()

		s := newScope(t, "https://www.example.com", false)
		got, ok := s.Normalize("https://example.com/about", "https://www.example.com/")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/about/", got)
	})

	t.Run("rejects out-of-scope hosts", func(t *testing.T) {
		t.Parallel()

		s := newScope(t, "https://example.com", false)
		_, ok := s.Normalize("https://other.com/page", "https://example.com/")
		assert.False(t, ok)
	})

	t.Run("rejects subdomains unless allowed", func(t *testing.T) {
		t.Parallel()

		strict := newScope(t, "https://example.com", false)
		_, ok := strict.Normalize("https://docs.example.com/intro", "https://example.com/")
		assert.False(t, ok)

		loose := newScope(t, "https://example.com", true)
		got, ok := loose.Normalize("https://docs.example.com/intro", "https://example.com/")
		require.True(t, ok)
		assert.Equal(t, "https://docs.example.com/intro/", got)
	})

	t.Run("subdomain matching is a raw suffix test", func(t *testing.T) {
		t.Parallel()

		// With subdomains allowed, any host ending in the root domain is
		// in-scope, dot boundary or not. notexample.com matching a root
		// of example.com is the documented behavior (see Scope.inDomain).
		loose := newScope(t, "https://example.com", true)
		got, ok := loose.Normalize("https://notexample.com/page", "https://example.com/")
		require.True(t, ok)
		assert.Equal(t, "https://notexample.com/page/", got)

		strict := newScope(t, "https://example.com", false)
		_, ok = strict.Normalize("https://notexample.com/page", "https://example.com/")
		assert.False(t, ok, "strict scope still requires an exact host match")
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		t.Parallel()

		s := newScope(t, "https://example.com", false)
		for _, link := range []string{"mailto:hi@example.com", "ftp://example.com/file"} {
			_, ok := s.Normalize(link, "https://example.com/")
			assert.False(t, ok, "link %q should be rejected", link)
		}
	})

	t.Run("rejects non-document extensions case-insensitively", func(t *testing.T) {
		t.Parallel()

		s := newScope(t, "https://example.com", false)
		for _, link := range []string{
			"https://example.com/report.pdf",
			"https://example.com/photo.JPG",
			"https://example.com/archive.tar.gz",
		} {
			_, ok := s.Normalize(link, "https://example.com/")
			assert.False(t, ok, "link %q should be rejected", link)
		}

		_, ok := s.Normalize("https://example.com/docs/page.html", "https://example.com/")
		assert.True(t, ok, "html pages are documents")
	})
}
