// Package crawl orchestrates documentation crawling: bounded breadth-first
// link discovery, concurrency-gated batch scraping, and snapshot assembly.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/docbuzz/docbuzz"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Crawl limits and defaults.
const (
	// DefaultConcurrency caps simultaneous in-flight fetches.
	DefaultConcurrency = 15

	// DefaultMaxURLs caps the discovered set; discovery stops growing
	// past this size even on densely linked sites.
	DefaultMaxURLs = 100

	// DefaultMaxRounds caps discovery rounds, guaranteeing termination
	// on cyclic link graphs.
	DefaultMaxRounds = 5

	// DefaultRoundPause is the politeness pause between discovery rounds.
	// It is a backpressure measure, not a rate limiter.
	DefaultRoundPause = 100 * time.Millisecond
)

// Frontier sizing for queued-URL deduplication.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Crawler drives a full documentation crawl: discovery from a seed URL,
// merging with the known-URL catalogue, and a final concurrency-bounded
// scrape of everything found.
//
// One counting gate caps in-flight fetches for the lifetime of a crawl,
// shared across the discovery and scraping phases.
type Crawler struct {
	Fetcher docbuzz.PageFetcher

	// Known URLs are always included in the final scrape, in addition to
	// whatever discovery finds.
	Known []string

	// Limiter, when set, enforces per-domain request spacing on top of
	// the concurrency gate.
	Limiter *DomainLimiter

	Logger *slog.Logger

	// Concurrency bounds in-flight fetches; also the scrape batch size.
	Concurrency int

	MaxURLs    int
	MaxRounds  int
	RoundPause time.Duration

	gateOnce sync.Once
	gate     *semaphore.Weighted
}

func (c *Crawler) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return DefaultConcurrency
}

func (c *Crawler) maxURLs() int {
	if c.MaxURLs > 0 {
		return c.MaxURLs
	}
	return DefaultMaxURLs
}

func (c *Crawler) maxRounds() int {
	if c.MaxRounds > 0 {
		return c.MaxRounds
	}
	return DefaultMaxRounds
}

func (c *Crawler) roundPause() time.Duration {
	if c.RoundPause > 0 {
		return c.RoundPause
	}
	return DefaultRoundPause
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// sem returns the shared concurrency gate, created on first use.
func (c *Crawler) sem() *semaphore.Weighted {
	c.gateOnce.Do(func() {
		c.gate = semaphore.NewWeighted(int64(c.concurrency()))
	})
	return c.gate
}

// Discover performs bounded breadth-first link discovery from seed and
// returns the discovered URL set. Each round fetches the pending batch
// concurrently, mines the results for new same-site links, and queues them
// for the next round. Discovery terminates when the queue empties, the
// discovered set reaches MaxURLs, or MaxRounds rounds have run.
func (c *Crawler) Discover(ctx context.Context, seed string) (map[string]struct{}, error) {
	seedURL, err := url.Parse(seed)
	if err != nil {
		return nil, docbuzz.Errorf(docbuzz.EINVALID, "invalid seed URL: %v", err)
	}
	host := seedURL.Host

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Enqueue(seed)

	c.logger().Info("discovery started", "seed", seed)

	round := 0
	for frontier.Pending() > 0 && frontier.DiscoveredCount() < c.maxURLs() && round < c.maxRounds() {
		if ctx.Err() != nil {
			return frontier.Discovered(), ctx.Err()
		}
		round++

		batch := frontier.NextBatch()
		c.logger().Info("discovery round", "round", round, "urls", len(batch))

		for _, rec := range c.fetchBatch(ctx, batch) {
			frontier.MarkDiscovered(rec.URL)
			for _, link := range rec.Links {
				if !strings.Contains(link, host) {
					continue
				}
				if strings.HasSuffix(link, ".pdf") || strings.HasSuffix(link, ".zip") {
					continue
				}
				frontier.Enqueue(link)
			}
		}

		// Cooperative pause between rounds.
		select {
		case <-ctx.Done():
			return frontier.Discovered(), ctx.Err()
		case <-time.After(c.roundPause()):
		}
	}

	c.logger().Info("discovery complete",
		"discovered", frontier.DiscoveredCount(),
		"rounds", round,
	)
	return frontier.Discovered(), nil
}

// CrawlAll runs discovery from seed, merges the known catalogue, scrapes
// the combined URL set in fixed-size sequential batches, and returns the
// qualifying records keyed by URL. Individual fetch failures never abort a
// batch or the crawl: failed and too-short pages are simply absent from
// the result.
func (c *Crawler) CrawlAll(ctx context.Context, seed string) (map[string]*docbuzz.PageRecord, error) {
	start := time.Now()

	discovered, err := c.Discover(ctx, seed)
	if err != nil {
		return nil, err
	}

	all := mergeURLs(c.Known, discovered)
	c.logger().Info("scraping",
		"urls", len(all),
		"known", len(c.Known),
		"discovered", len(discovered),
	)

	batchSize := c.concurrency()
	results := make(map[string]*docbuzz.PageRecord)
	batches := (len(all) + batchSize - 1) / batchSize

	for i := 0; i < len(all); i += batchSize {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		end := min(i+batchSize, len(all))
		c.logger().Info("processing batch",
			"batch", i/batchSize+1,
			"batches", batches,
			"urls", end-i,
		)

		for _, rec := range c.fetchBatch(ctx, all[i:end]) {
			if !rec.Qualifies() {
				continue
			}
			rec.ContentHash = ContentHash(rec.Content)
			results[rec.URL] = rec
		}
	}

	elapsed := time.Since(start)
	throughput := 0.0
	if elapsed > 0 {
		throughput = float64(len(results)) / elapsed.Seconds()
	}
	c.logger().Info("crawl complete",
		"pages", len(results),
		"elapsed", elapsed,
		"pages_per_sec", throughput,
	)

	return results, nil
}

// BuildSnapshot crawls from seed and assembles the durable crawl output:
// the classified topic index plus the raw qualifying records.
func (c *Crawler) BuildSnapshot(ctx context.Context, seed string) (*docbuzz.Snapshot, error) {
	records, err := c.CrawlAll(ctx, seed)
	if err != nil {
		return nil, err
	}

	return &docbuzz.Snapshot{
		ScrapedAt:  time.Now().Unix(),
		TotalPages: len(records),
		Topics:     docbuzz.ClassifyTopics(records),
		RawData:    records,
	}, nil
}

// fetchBatch fetches every URL in the batch concurrently. Each fetch holds
// the shared gate, so in-flight requests stay within the configured bound
// across overlapping phases. The batch completes only once every fetch has
// resolved; failures resolve to error records, never to aborts.
func (c *Crawler) fetchBatch(ctx context.Context, urls []string) []*docbuzz.PageRecord {
	records := make([]*docbuzz.PageRecord, len(urls))

	g := new(errgroup.Group)
	for i, u := range urls {
		g.Go(func() error {
			records[i] = c.fetchOne(ctx, u)
			return nil
		})
	}
	// Workers never return errors; failures live on the records.
	_ = g.Wait()

	return records
}

// fetchOne acquires the gate, applies the optional domain limiter, and
// fetches a single URL.
func (c *Crawler) fetchOne(ctx context.Context, u string) *docbuzz.PageRecord {
	if err := c.sem().Acquire(ctx, 1); err != nil {
		return failedRecord(u, err)
	}
	defer c.sem().Release(1)

	if c.Limiter != nil {
		if parsed, err := url.Parse(u); err == nil {
			if err := c.Limiter.Wait(ctx, parsed.Host); err != nil {
				return failedRecord(u, err)
			}
		}
	}

	return c.Fetcher.Fetch(ctx, u)
}

func failedRecord(u string, err error) *docbuzz.PageRecord {
	return &docbuzz.PageRecord{
		URL: u,
		Err: &docbuzz.FetchError{Kind: docbuzz.FetchOther, Message: err.Error()},
	}
}

// mergeURLs deduplicates known ∪ discovered into a sorted sequence.
// Ordering is not part of the contract; sorting just keeps batches stable
// between runs.
func mergeURLs(known []string, discovered map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(known)+len(discovered))
	var all []string
	for _, u := range known {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		all = append(all, u)
	}
	for u := range discovered {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		all = append(all, u)
	}
	sort.Strings(all)
	return all
}
