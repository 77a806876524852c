package docbuzz

import "context"

// SitemapSource discovers documentation URLs from a site's sitemaps.
// Implementations return an empty slice, not an error, when the site has
// no sitemap.
type SitemapSource interface {
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
