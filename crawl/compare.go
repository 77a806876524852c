package crawl

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/docbuzz/docbuzz"
)

// ContentHash returns a hex-encoded xxhash of content, used for change
// detection between crawls.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// Changes summarizes how one snapshot differs from another, by URL.
type Changes struct {
	Added   []string
	Changed []string
	Removed []string
}

// Empty reports whether the two snapshots have identical page sets and
// contents.
func (c *Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Changed) == 0 && len(c.Removed) == 0
}

// Compare diffs two snapshots by URL and content hash. Either snapshot may
// be nil (treated as empty). Results are sorted for stable output.
func Compare(old, current *docbuzz.Snapshot) *Changes {
	changes := &Changes{}

	oldData := rawData(old)
	newData := rawData(current)

	for u, rec := range newData {
		prev, ok := oldData[u]
		if !ok {
			changes.Added = append(changes.Added, u)
			continue
		}
		if recordHash(prev) != recordHash(rec) {
			changes.Changed = append(changes.Changed, u)
		}
	}
	for u := range oldData {
		if _, ok := newData[u]; !ok {
			changes.Removed = append(changes.Removed, u)
		}
	}

	sort.Strings(changes.Added)
	sort.Strings(changes.Changed)
	sort.Strings(changes.Removed)
	return changes
}

func rawData(s *docbuzz.Snapshot) map[string]*docbuzz.PageRecord {
	if s == nil {
		return nil
	}
	return s.RawData
}

// recordHash prefers the stored hash, computing one from content for
// records persisted before hashes existed.
func recordHash(rec *docbuzz.PageRecord) string {
	if rec.ContentHash != "" {
		return rec.ContentHash
	}
	return ContentHash(rec.Content)
}
