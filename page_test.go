package docbuzz_test

import (
	"strings"
	"testing"

	"github.com/docbuzz/docbuzz"
	"github.com/stretchr/testify/assert"
)

func TestPageRecord_Qualifies_boundary(t *testing.T) {
	t.Parallel()

	short := &docbuzz.PageRecord{
		URL:     "https://docs.example.com/a",
		Content: strings.Repeat("x", docbuzz.MinContentLength-1),
	}
	assert.False(t, short.Qualifies(), "49-byte content is excluded")

	exact := &docbuzz.PageRecord{
		URL:     "https://docs.example.com/b",
		Content: strings.Repeat("x", docbuzz.MinContentLength),
	}
	assert.True(t, exact.Qualifies(), "50-byte content is included")
}

func TestPageRecord_Qualifies_failed_fetch(t *testing.T) {
	t.Parallel()

	rec := &docbuzz.PageRecord{
		URL: "https://docs.example.com/missing",
		Err: &docbuzz.FetchError{Kind: docbuzz.FetchNotFound, Message: "404 Not Found"},
	}

	assert.False(t, rec.Qualifies())
	assert.Empty(t, rec.Content, "a failed record never carries content")
}

func TestFetchError_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "timeout", (&docbuzz.FetchError{Kind: docbuzz.FetchTimeout}).Error())
	assert.Equal(t, "other: connection refused",
		(&docbuzz.FetchError{Kind: docbuzz.FetchOther, Message: "connection refused"}).Error())
}
