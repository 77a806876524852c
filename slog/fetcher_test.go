package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/docbuzz/docbuzz"
	"github.com/docbuzz/docbuzz/mock"
	dslog "github.com/docbuzz/docbuzz/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageFetcher{
			FetchFn: func(ctx context.Context, url string) *docbuzz.PageRecord {
				return &docbuzz.PageRecord{
					URL:     url,
					Content: "extracted page text",
					Links:   []string{"https://docs.example.com/next"},
				}
			},
		}

		fetcher := dslog.NewLoggingFetcher(inner, logger)
		rec := fetcher.Fetch(context.Background(), "https://docs.example.com/")

		assert.Nil(t, rec.Err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://docs.example.com/")
		assert.Contains(t, output, "bytes=19")
		assert.Contains(t, output, "links=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs start of fetch before the request", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var startLogged bool
		inner := &mock.PageFetcher{
			FetchFn: func(ctx context.Context, url string) *docbuzz.PageRecord {
				startLogged = bytes.Contains(buf.Bytes(), []byte("fetching"))
				return &docbuzz.PageRecord{URL: url, Content: "text"}
			},
		}

		fetcher := dslog.NewLoggingFetcher(inner, logger)
		fetcher.Fetch(context.Background(), "https://docs.example.com/")

		assert.True(t, startLogged)
		assert.Contains(t, buf.String(), `msg=fetching url=https://docs.example.com/`)
	})

	t.Run("logs failure with kind and reason", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageFetcher{
			FetchFn: func(ctx context.Context, url string) *docbuzz.PageRecord {
				return &docbuzz.PageRecord{
					URL: url,
					Err: &docbuzz.FetchError{Kind: docbuzz.FetchNotFound, Message: "404 Not Found"},
				}
			},
		}

		fetcher := dslog.NewLoggingFetcher(inner, logger)
		rec := fetcher.Fetch(context.Background(), "https://docs.example.com/missing")

		require.NotNil(t, rec.Err)
		output := buf.String()
		assert.Contains(t, output, "fetch failed")
		assert.Contains(t, output, "kind=not_found")
		assert.Contains(t, output, "reason=\"404 Not Found\"")
	})
}

func TestLoggingFetcher_Close_delegates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	closeCalled := false
	inner := &mock.PageFetcher{
		CloseFn: func() error {
			closeCalled = true
			return nil
		},
	}

	fetcher := dslog.NewLoggingFetcher(inner, logger)
	require.NoError(t, fetcher.Close())
	assert.True(t, closeCalled)
}
