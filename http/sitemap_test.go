package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	dochttp "github.com/docbuzz/docbuzz/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapSource_reads_robots_txt_directive(t *testing.T) {
	t.Parallel()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			fmt.Fprintf(w, "User-agent: *\nSitemap: %s/docs-sitemap.xml\n", srv.URL)
		case "/docs-sitemap.xml":
			fmt.Fprintf(w, `<?xml version="1.0"?>
<urlset><url><loc>%[1]s/get-started/models/</loc></url><url><loc>%[1]s/tutorials/</loc></url></urlset>`, srv.URL)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	urls, err := dochttp.NewSitemapSource(nil).DiscoverURLs(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, []string{srv.URL + "/get-started/models/", srv.URL + "/tutorials/"}, urls)
}

func TestSitemapSource_falls_back_to_sitemap_xml(t *testing.T) {
	t.Parallel()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sitemap.xml":
			fmt.Fprintf(w, `<urlset><url><loc>%s/page/</loc></url></urlset>`, srv.URL)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	urls, err := dochttp.NewSitemapSource(nil).DiscoverURLs(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, []string{srv.URL + "/page/"}, urls)
}

func TestSitemapSource_walks_sitemap_index(t *testing.T) {
	t.Parallel()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sitemap.xml":
			fmt.Fprintf(w, `<sitemapindex><sitemap><loc>%[1]s/sub.xml</loc></sitemap><sitemap><loc>%[1]s/sitemap.xml</loc></sitemap></sitemapindex>`, srv.URL)
		case "/sub.xml":
			fmt.Fprintf(w, `<urlset><url><loc>%s/nested/</loc></url></urlset>`, srv.URL)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	// The index references itself; the seen set prevents a cycle.
	urls, err := dochttp.NewSitemapSource(nil).DiscoverURLs(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, []string{srv.URL + "/nested/"}, urls)
}

func TestSitemapSource_filters_by_path_prefix(t *testing.T) {
	t.Parallel()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sitemap.xml":
			fmt.Fprintf(w, `<urlset><url><loc>%[1]s/docs/intro/</loc></url><url><loc>%[1]s/blog/post/</loc></url></urlset>`, srv.URL)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	urls, err := dochttp.NewSitemapSource(nil).DiscoverURLs(context.Background(), srv.URL+"/docs")
	require.NoError(t, err)

	assert.Equal(t, []string{srv.URL + "/docs/intro/"}, urls)
}

func TestSitemapSource_no_sitemap_returns_empty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	urls, err := dochttp.NewSitemapSource(nil).DiscoverURLs(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Empty(t, urls)
}
