package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/docbuzz/docbuzz"
	"github.com/docbuzz/docbuzz/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	seed := c.Seed
	if seed == "" {
		seed = crawl.DefaultSeedURL
	}

	seedURL, err := url.Parse(seed)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: invalid seed URL %q\n", seed)
		return docbuzz.Errorf(docbuzz.EINVALID, "invalid seed URL: %v", err)
	}

	// The known catalogue only applies to the site it was written for.
	if seedURL.Host == "docs.kluster.ai" {
		deps.Crawler.Known = crawl.KnownDocURLs(crawl.DefaultBaseURL)
	}

	if c.Sitemap {
		base := seedURL.Scheme + "://" + seedURL.Host + seedURL.Path
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, base)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: sitemap discovery failed: %s\n", docbuzz.ErrorMessage(err))
		} else {
			fmt.Fprintf(deps.Stdout, "Sitemap contributed %d URLs\n", len(urls))
			deps.Crawler.Known = append(deps.Crawler.Known, urls...)
		}
	}

	// Previous snapshot, if any, for change reporting.
	prev, err := deps.Snapshots.Load(deps.Ctx)
	if err != nil && docbuzz.ErrorCode(err) != docbuzz.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docbuzz.ErrorMessage(err))
		return err
	}

	start := time.Now()
	snap, err := deps.Crawler.BuildSnapshot(deps.Ctx, seed)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docbuzz.ErrorMessage(err))
		return err
	}
	elapsed := time.Since(start)

	if err := deps.Snapshots.Save(deps.Ctx, snap); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docbuzz.ErrorMessage(err))
		return err
	}

	if deps.Exporter != nil {
		if err := deps.Exporter.ExportSnapshot(deps.Ctx, snap); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docbuzz.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", snap.TotalPages, c.ExportDir)
	}

	if deps.History != nil {
		run := &docbuzz.CrawlRun{
			SeedURL:    seed,
			ScrapedAt:  time.Now(),
			TotalPages: snap.TotalPages,
			Duration:   elapsed,
		}
		if err := deps.History.RecordRun(deps.Ctx, run); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: failed to record crawl run: %s\n", docbuzz.ErrorMessage(err))
		}
	}

	changes := crawl.Compare(prev, snap)
	if prev != nil && !changes.Empty() {
		fmt.Fprintf(deps.Stdout, "Changes since last crawl: %d added, %d changed, %d removed\n",
			len(changes.Added), len(changes.Changed), len(changes.Removed))
	}

	fmt.Fprintf(deps.Stdout, "Crawled %d pages across %d topics in %s\n",
		snap.TotalPages, len(snap.Topics), elapsed.Round(time.Millisecond))
	return nil
}
