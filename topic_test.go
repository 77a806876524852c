package docbuzz_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/docbuzz/docbuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(url, content string) *docbuzz.PageRecord {
	return &docbuzz.PageRecord{URL: url, Title: "Title", Content: content}
}

func TestClassifyTopics_get_started_paths(t *testing.T) {
	t.Parallel()

	records := map[string]*docbuzz.PageRecord{
		"https://docs.example.com/get-started/get-api-key/": record(
			"https://docs.example.com/get-started/get-api-key/",
			strings.Repeat("Generate your API key ", 10),
		),
	}

	index := docbuzz.ClassifyTopics(records)

	require.Contains(t, index, "Getting Started")
	require.Contains(t, index["Getting Started"], "Api Key Setup")
	entry := index["Getting Started"]["Api Key Setup"]
	assert.Contains(t, entry.Content, "Generate your API key")
	assert.Equal(t, "https://docs.example.com/get-started/get-api-key/", entry.URL)
}

func TestClassifyTopics_fine_tuning_skips_generic_trailing_segments(t *testing.T) {
	t.Parallel()

	records := map[string]*docbuzz.PageRecord{
		"https://docs.example.com/get-started/fine-tuning/overview/": record(
			"https://docs.example.com/get-started/fine-tuning/overview/", "overview content"),
		"https://docs.example.com/get-started/fine-tuning/api/": record(
			"https://docs.example.com/get-started/fine-tuning/api/", "api content"),
	}

	index := docbuzz.ClassifyTopics(records)

	require.Contains(t, index, "Fine-tuning")
	// Both URLs classify under the same topic; the overview/api skip rule
	// makes both subtopics derive from the "fine-tuning" segment, so they
	// collapse to the same curated subtopic label.
	require.Contains(t, index["Fine-tuning"], "Fine Tuning")
	// Last write wins: lexicographically later URL is the overview page.
	assert.Equal(t, "overview content", index["Fine-tuning"]["Fine Tuning"].Content)
}

func TestClassifyTopics_verify_paths_get_dedicated_topic(t *testing.T) {
	t.Parallel()

	records := map[string]*docbuzz.PageRecord{
		"https://docs.example.com/get-started/verify/reliability/dedicated-api/": record(
			"https://docs.example.com/get-started/verify/reliability/dedicated-api/", "verify content"),
	}

	index := docbuzz.ClassifyTopics(records)

	require.Contains(t, index, "Verify & Reliability")
	assert.Contains(t, index["Verify & Reliability"], "Dedicated API")
}

func TestClassifyTopics_known_prefixes_and_fallback(t *testing.T) {
	t.Parallel()

	records := map[string]*docbuzz.PageRecord{
		"https://docs.example.com/api-reference/":                  record("https://docs.example.com/api-reference/", "reference content"),
		"https://docs.example.com/tutorials/sentiment-analysis/":   record("https://docs.example.com/tutorials/sentiment-analysis/", "tutorial content"),
		"https://docs.example.com/release-notes/changelog-2024/":   record("https://docs.example.com/release-notes/changelog-2024/", "changelog content"),
		"https://docs.example.com/tutorials/uploading-large-files": record("https://docs.example.com/tutorials/uploading-large-files", "upload content"),
	}

	index := docbuzz.ClassifyTopics(records)

	// Single-segment path uses the topic label as the subtopic.
	require.Contains(t, index, "API Reference")
	assert.Contains(t, index["API Reference"], "API Reference")

	require.Contains(t, index, "Use Cases & Tutorials")
	assert.Contains(t, index["Use Cases & Tutorials"], "Sentiment Analysis")
	assert.Contains(t, index["Use Cases & Tutorials"], "Large File Upload")

	// Unknown first segment falls back to a title-cased label.
	require.Contains(t, index, "Release Notes")
	assert.Contains(t, index["Release Notes"], "Changelog 2024")
}

func TestClassifyTopics_skips_empty_content(t *testing.T) {
	t.Parallel()

	records := map[string]*docbuzz.PageRecord{
		"https://docs.example.com/get-started/models/": {
			URL: "https://docs.example.com/get-started/models/",
			Err: &docbuzz.FetchError{Kind: docbuzz.FetchNotFound},
		},
	}

	index := docbuzz.ClassifyTopics(records)

	assert.Empty(t, index)
}

func TestClassifyTopics_is_idempotent(t *testing.T) {
	t.Parallel()

	records := map[string]*docbuzz.PageRecord{
		"https://docs.example.com/get-started/models/":           record("https://docs.example.com/get-started/models/", "models content"),
		"https://docs.example.com/tutorials/image-analysis/":     record("https://docs.example.com/tutorials/image-analysis/", "image content"),
		"https://docs.example.com/get-started/fine-tuning/api/":  record("https://docs.example.com/get-started/fine-tuning/api/", "api content"),
		"https://docs.example.com/get-started/fine-tuning/":      record("https://docs.example.com/get-started/fine-tuning/", "ft content"),
		"https://docs.example.com/api-reference/chat-completion": record("https://docs.example.com/api-reference/chat-completion", "chat content"),
	}

	first := docbuzz.ClassifyTopics(records)
	second := docbuzz.ClassifyTopics(records)

	assert.Equal(t, first, second)
}

func TestSummarize_truncates_long_content(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 500)
	summary := docbuzz.Summarize(long)

	assert.Len(t, summary, 403)
	assert.True(t, strings.HasSuffix(summary, "..."))
	assert.Equal(t, long[:400], summary[:400])
}

func TestSummarize_truncates_at_rune_boundary(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("€", 500)
	summary := docbuzz.Summarize(long)

	assert.True(t, utf8.ValidString(summary))
	assert.Equal(t, strings.Repeat("€", 400)+"...", summary)
	assert.Equal(t, 403, utf8.RuneCountInString(summary))
}

func TestSummarize_keeps_short_content(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", docbuzz.Summarize("short"))
	exact := strings.Repeat("b", 400)
	assert.Equal(t, exact, docbuzz.Summarize(exact))
}
