package scrape

import (
	"net/url"
	"strings"
)

// AbsoluteURL resolves an anchor href against the site origin. Absolute
// URLs pass through unchanged; relative paths are joined to the origin.
func AbsoluteURL(origin, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}

	base, err := url.Parse(origin)
	if err != nil {
		if strings.HasPrefix(href, "/") {
			return strings.TrimRight(origin, "/") + href
		}
		return strings.TrimRight(origin, "/") + "/" + href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return strings.TrimRight(origin, "/") + "/" + strings.TrimLeft(href, "/")
	}
	return base.ResolveReference(ref).String()
}
