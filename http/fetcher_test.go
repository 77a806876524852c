package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/docbuzz/docbuzz"
	"github.com/docbuzz/docbuzz/goquery"
	dochttp "github.com/docbuzz/docbuzz/http"
	"github.com/docbuzz/docbuzz/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_success_populates_record(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>API Keys</title></head><body><main><p>Generate your API key to start building with the platform today.</p></main></body></html>`))
	}))
	defer srv.Close()

	f := dochttp.NewFetcher(goquery.NewExtractor())
	defer f.Close()

	rec := f.Fetch(context.Background(), srv.URL+"/get-started/get-api-key/")

	require.Nil(t, rec.Err)
	assert.Equal(t, "API Keys", rec.Title)
	assert.Contains(t, rec.Content, "Generate your API key")
	assert.False(t, rec.FetchedAt.IsZero())
}

func TestFetcher_404_short_circuits_to_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := dochttp.NewFetcher(goquery.NewExtractor())
	defer f.Close()

	rec := f.Fetch(context.Background(), srv.URL+"/missing")

	require.NotNil(t, rec.Err)
	assert.Equal(t, docbuzz.FetchNotFound, rec.Err.Kind)
	assert.Empty(t, rec.Content, "failed records carry no content")
}

func TestFetcher_non_200_status_classifies_as_Other(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := dochttp.NewFetcher(goquery.NewExtractor())
	defer f.Close()

	rec := f.Fetch(context.Background(), srv.URL+"/broken")

	require.NotNil(t, rec.Err)
	assert.Equal(t, docbuzz.FetchOther, rec.Err.Kind)
	assert.Contains(t, rec.Err.Message, "HTTP 500")
	assert.Empty(t, rec.Content)
}

func TestFetcher_slow_server_classifies_as_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	f := dochttp.NewFetcher(goquery.NewExtractor(),
		dochttp.WithRequestTimeout(50*time.Millisecond))
	defer f.Close()

	rec := f.Fetch(context.Background(), srv.URL+"/slow")

	require.NotNil(t, rec.Err)
	assert.Equal(t, docbuzz.FetchTimeout, rec.Err.Kind)
	assert.Empty(t, rec.Content)
}

func TestFetcher_unreachable_host_classifies_as_Other(t *testing.T) {
	t.Parallel()

	f := dochttp.NewFetcher(goquery.NewExtractor())
	defer f.Close()

	// Reserved TEST-NET address; connection fails immediately or the
	// classification falls back to Other for refused connections.
	rec := f.Fetch(context.Background(), "http://127.0.0.1:1/none")

	require.NotNil(t, rec.Err)
	assert.Empty(t, rec.Content)
}

func TestFetcher_extractor_failure_classifies_as_Other(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	f := dochttp.NewFetcher(&mock.Extractor{
		ExtractFn: func(html, baseURL string) (*docbuzz.ExtractResult, error) {
			return nil, docbuzz.Errorf(docbuzz.EINVALID, "bad markup")
		},
	})
	defer f.Close()

	rec := f.Fetch(context.Background(), srv.URL+"/page")

	require.NotNil(t, rec.Err)
	assert.Equal(t, docbuzz.FetchOther, rec.Err.Kind)
}

func TestFetcher_sends_user_agent(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body><main>x</main></body></html>"))
	}))
	defer srv.Close()

	f := dochttp.NewFetcher(goquery.NewExtractor(), dochttp.WithUserAgent("docbuzz-test"))
	defer f.Close()

	f.Fetch(context.Background(), srv.URL+"/page")

	assert.Equal(t, "docbuzz-test", gotUA)
}
