package mock

import (
	"context"

	"github.com/docbuzz/docbuzz"
)

var _ docbuzz.SitemapSource = (*SitemapSource)(nil)

// SitemapSource is a mock implementation of docbuzz.SitemapSource.
type SitemapSource struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapSource) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
