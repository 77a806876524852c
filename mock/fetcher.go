package mock

import (
	"context"

	"github.com/docbuzz/docbuzz"
)

var _ docbuzz.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of docbuzz.PageFetcher.
type PageFetcher struct {
	FetchFn func(ctx context.Context, url string) *docbuzz.PageRecord
	CloseFn func() error
}

func (f *PageFetcher) Fetch(ctx context.Context, url string) *docbuzz.PageRecord {
	return f.FetchFn(ctx, url)
}

func (f *PageFetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
