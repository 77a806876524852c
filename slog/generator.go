package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docbuzz/docbuzz"
)

// Ensure LoggingGenerator implements docbuzz.Generator.
var _ docbuzz.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with per-request logging.
type LoggingGenerator struct {
	next   docbuzz.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next docbuzz.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the outcome.
func (g *LoggingGenerator) Generate(ctx context.Context, req docbuzz.PostRequest) (post string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"topic", req.Topic,
			"subtopic", req.Subtopic,
			"chars", len(post),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, req)
}
