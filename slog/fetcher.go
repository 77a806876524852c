// Package slog provides logging decorators for pipeline interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docbuzz/docbuzz"
)

// Ensure LoggingFetcher implements docbuzz.PageFetcher.
var _ docbuzz.PageFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a PageFetcher with per-fetch logging.
type LoggingFetcher struct {
	next   docbuzz.PageFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docbuzz.PageFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the start of the fetch, delegates to the wrapped fetcher,
// and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) *docbuzz.PageRecord {
	f.logger.Info("fetching", "url", url)

	begin := time.Now()
	rec := f.next.Fetch(ctx, url)

	if rec.Err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"kind", string(rec.Err.Kind),
			"reason", rec.Err.Message,
			"duration", time.Since(begin),
		)
		return rec
	}

	f.logger.Info("fetch",
		"url", url,
		"bytes", len(rec.Content),
		"links", len(rec.Links),
		"duration", time.Since(begin),
	)
	return rec
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
