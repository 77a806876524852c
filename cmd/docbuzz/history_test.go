package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/docbuzz/docbuzz"
	main "github.com/docbuzz/docbuzz/cmd/docbuzz"
	"github.com/docbuzz/docbuzz/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists recorded runs", func(t *testing.T) {
		t.Parallel()

		history := &mock.CrawlHistory{
			ListRunsFn: func(context.Context) ([]*docbuzz.CrawlRun, error) {
				return []*docbuzz.CrawlRun{
					{
						ID:         "run-2",
						SeedURL:    "https://docs.kluster.ai/get-started/get-api-key/",
						ScrapedAt:  time.Date(2026, 8, 22, 9, 30, 0, 0, time.UTC),
						TotalPages: 27,
						Duration:   42 * time.Second,
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			History: history,
		}

		require.NoError(t, (&main.HistoryCmd{}).Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "27 pages")
		assert.Contains(t, output, "42s")
		assert.Contains(t, output, "https://docs.kluster.ai/get-started/get-api-key/")
	})

	t.Run("suggests crawling when history is empty", func(t *testing.T) {
		t.Parallel()

		history := &mock.CrawlHistory{
			ListRunsFn: func(context.Context) ([]*docbuzz.CrawlRun, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			History: history,
		}

		require.NoError(t, (&main.HistoryCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No crawls recorded yet.")
	})
}
