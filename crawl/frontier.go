package crawl

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Frontier tracks the state of round-based discovery: the URLs pending the
// next round and the monotonically growing set of discovered URLs. A Bloom
// filter remembers every URL ever queued, so a URL enters the pending queue
// at most once per crawl regardless of how often it is re-linked.
//
// Frontier is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu         sync.Mutex
	queued     *bloom.BloomFilter
	pending    []string
	discovered map[string]struct{}
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for queued-URL deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		queued:     bloom.NewWithEstimates(n, fpRate),
		discovered: make(map[string]struct{}),
	}
}

// Enqueue adds a URL to the next round's batch. Returns false if the URL
// was already queued at some point in this crawl. URL fragments are
// stripped first, so URLs differing only by fragment are duplicates.
func (f *Frontier) Enqueue(url string) bool {
	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queued.TestString(url) {
		return false
	}
	f.queued.AddString(url)
	f.pending = append(f.pending, url)
	return true
}

// NextBatch returns the pending URLs and clears the queue for the next
// round.
func (f *Frontier) NextBatch() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	batch := f.pending
	f.pending = nil
	return batch
}

// Pending returns the number of URLs waiting for the next round.
func (f *Frontier) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// MarkDiscovered records a URL as discovered. The discovered set only
// grows; marking the same URL twice is a no-op.
func (f *Frontier) MarkDiscovered(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.discovered[url] = struct{}{}
}

// DiscoveredCount returns the size of the discovered set.
func (f *Frontier) DiscoveredCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.discovered)
}

// Discovered returns a copy of the discovered set.
func (f *Frontier) Discovered() map[string]struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]struct{}, len(f.discovered))
	for u := range f.discovered {
		out[u] = struct{}{}
	}
	return out
}
