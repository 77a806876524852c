package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/docbuzz/docbuzz"
	"github.com/docbuzz/docbuzz/mock"
	dslog "github.com/docbuzz/docbuzz/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("logs topic and output size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Generator{
			GenerateFn: func(ctx context.Context, req docbuzz.PostRequest) (string, error) {
				return "🚨 A post", nil
			},
		}

		gen := dslog.NewLoggingGenerator(inner, logger)
		post, err := gen.Generate(context.Background(), docbuzz.PostRequest{
			Topic:    "Getting Started",
			Subtopic: "Api Key Setup",
			Context:  "docs",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, post)
		output := buf.String()
		assert.Contains(t, output, "generate")
		assert.Contains(t, output, "topic=\"Getting Started\"")
		assert.Contains(t, output, "subtopic=\"Api Key Setup\"")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Generator{
			GenerateFn: func(ctx context.Context, req docbuzz.PostRequest) (string, error) {
				return "", errors.New("model unavailable")
			},
		}

		gen := dslog.NewLoggingGenerator(inner, logger)
		_, err := gen.Generate(context.Background(), docbuzz.PostRequest{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"model unavailable\"")
	})
}
