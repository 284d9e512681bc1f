package webmd

import (
	"net/url"
	"strings"
)

// skipExtensions lists non-document file extensions excluded from crawling,
// matched case-insensitively against the URL path.
var skipExtensions = []string{
	".pdf", ".doc", ".docx", ".ppt", ".pptx", ".xls", ".xlsx",
	".zip", ".rar", ".tar", ".gz", ".7z",
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp",
	".mp3", ".mp4", ".avi", ".mov", ".wmv", ".flv",
	".exe", ".bin", ".iso", ".dmg", ".apk", ".ipa",
}

// Scope canonicalizes discovered links and decides whether they are
// in-scope for a crawl rooted at a seed URL. All methods are pure
// functions of the receiver and their inputs.
type Scope struct {
	scheme          string
	host            string
	domain          string // host with a leading "www." stripped
	allowSubdomains bool
}

// NewScope derives the crawl scope from a seed URL.
// Returns EINVALID if the seed is malformed or not http(s).
func NewScope(seed string, allowSubdomains bool) (*Scope, error) {
	u, err := url.Parse(seed)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid seed URL %q: %v", seed, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, Errorf(EINVALID, "unsupported scheme %q in seed URL %q", u.Scheme, seed)
	}
	if u.Host == "" {
		return nil, Errorf(EINVALID, "seed URL %q has no host", seed)
	}
	return &Scope{
		scheme:          u.Scheme,
		host:            u.Host,
		domain:          strings.TrimPrefix(u.Host, "www."),
		allowSubdomains: allowSubdomains,
	}, nil
}

// Origin returns the scheme://host the scope is rooted at.
func (s *Scope) Origin() string {
	return s.scheme + "://" + s.host
}

// Normalize canonicalizes a discovered link relative to the page it was
// found on and reports whether it is in-scope for the crawl.
//
// Relative links are resolved against the crawl origin (absolute paths) or
// the parent URL (document-relative). Links are rejected when their scheme
// is not http(s), their host falls outside the domain scope, or their path
// ends in a known non-document extension. Canonical form drops the query
// string and fragment and enforces a trailing slash, so normalization is
// idempotent and trailing-slash variants collapse to one URL.
func (s *Scope) Normalize(rawLink, parentURL string) (string, bool) {
	link := rawLink
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		base := parentURL
		if strings.HasPrefix(link, "/") {
			base = s.Origin()
		}
		resolved, ok := resolveAgainst(base, link)
		if !ok {
			return "", false
		}
		link = resolved
	}

	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if !s.inDomain(u.Host) {
		return "", false
	}

	path := strings.ToLower(u.Path)
	for _, ext := range skipExtensions {
		if strings.HasSuffix(path, ext) {
			return "", false
		}
	}

	clean := u.Scheme + "://" + u.Host + u.Path
	if !strings.HasSuffix(clean, "/") {
		clean += "/"
	}
	return clean, true
}

// inDomain checks a link host against the crawl's root domain. A leading
// "www." is stripped from the host first, so both spellings are accepted.
//
// With subdomains allowed this is a raw string suffix test, faithfully
// matching the behavior this tool replaces: notexample.com is in-scope for
// a root domain of example.com. Callers who need strict subdomain matching
// should keep AllowSubdomains off.
func (s *Scope) inDomain(host string) bool {
	stripped := strings.TrimPrefix(host, "www.")
	if s.allowSubdomains {
		return strings.HasSuffix(stripped, s.domain)
	}
	return stripped == s.domain
}

func resolveAgainst(base, href string) (string, bool) {
	b, err := url.Parse(base)
	if err != nil {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	return b.ResolveReference(ref).String(), true
}
