// Package mock provides function-field mock implementations of the
// docbuzz interfaces for testing.
package mock

import (
	"context"

	"github.com/docbuzz/docbuzz"
)

var _ docbuzz.CrawlHistory = (*CrawlHistory)(nil)

// CrawlHistory is a mock implementation of docbuzz.CrawlHistory.
type CrawlHistory struct {
	RecordRunFn func(ctx context.Context, run *docbuzz.CrawlRun) error
	ListRunsFn  func(ctx context.Context) ([]*docbuzz.CrawlRun, error)
}

func (h *CrawlHistory) RecordRun(ctx context.Context, run *docbuzz.CrawlRun) error {
	return h.RecordRunFn(ctx, run)
}

func (h *CrawlHistory) ListRuns(ctx context.Context) ([]*docbuzz.CrawlRun, error) {
	return h.ListRunsFn(ctx)
}
