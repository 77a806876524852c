package crawl_test

import (
	"testing"

	"github.com/docbuzz/docbuzz/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier_Enqueue_rejects_duplicate_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)

	assert.True(t, f.Enqueue("https://docs.example.com/a"))
	assert.False(t, f.Enqueue("https://docs.example.com/a"))
	assert.Equal(t, 1, f.Pending())
}

func TestFrontier_Enqueue_treats_fragment_variants_as_duplicates(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)

	assert.True(t, f.Enqueue("https://docs.example.com/a#intro"))
	assert.False(t, f.Enqueue("https://docs.example.com/a"))
	assert.False(t, f.Enqueue("https://docs.example.com/a#setup"))

	batch := f.NextBatch()
	require.Len(t, batch, 1)
	assert.Equal(t, "https://docs.example.com/a", batch[0])
}

func TestFrontier_NextBatch_clears_pending(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)
	f.Enqueue("https://docs.example.com/a")
	f.Enqueue("https://docs.example.com/b")

	batch := f.NextBatch()
	assert.Len(t, batch, 2)
	assert.Equal(t, 0, f.Pending())
	assert.Empty(t, f.NextBatch())
}

func TestFrontier_Enqueue_after_NextBatch_still_deduplicates(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)
	f.Enqueue("https://docs.example.com/a")
	f.NextBatch()

	// Queued-once semantics persist across rounds.
	assert.False(t, f.Enqueue("https://docs.example.com/a"))
	assert.Equal(t, 0, f.Pending())
}

func TestFrontier_MarkDiscovered_is_idempotent(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)
	f.MarkDiscovered("https://docs.example.com/a")
	f.MarkDiscovered("https://docs.example.com/a")

	assert.Equal(t, 1, f.DiscoveredCount())

	got := f.Discovered()
	assert.Contains(t, got, "https://docs.example.com/a")

	// Mutating the copy must not affect the frontier.
	got["https://docs.example.com/b"] = struct{}{}
	assert.Equal(t, 1, f.DiscoveredCount())
}
