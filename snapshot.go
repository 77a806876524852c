package docbuzz

import "context"

// Snapshot is the durable output of one crawl: the topic index plus the
// raw per-page records that produced it.
type Snapshot struct {
	// ScrapedAt is the crawl completion time in epoch seconds.
	ScrapedAt int64 `json:"scraped_at"`

	// TotalPages counts the records in RawData.
	TotalPages int `json:"total_pages"`

	// Topics is the topic → subtopic → content index.
	Topics TopicIndex `json:"topics"`

	// RawData maps URL → record for every qualifying page.
	RawData map[string]*PageRecord `json:"raw_data"`
}

// Context returns the generation context string and page title for a
// (topic, subtopic) pair. The context is the entry's summary, falling back
// to a 500-character content prefix. Returns ENOTFOUND if the pair does
// not exist.
func (s *Snapshot) Context(topic, subtopic string) (string, string, error) {
	sub, ok := s.Topics[topic]
	if !ok {
		return "", "", Errorf(ENOTFOUND, "topic %q not found", topic)
	}
	entry, ok := sub[subtopic]
	if !ok {
		return "", "", Errorf(ENOTFOUND, "subtopic %q not found under %q", subtopic, topic)
	}

	context := entry.Summary
	if context == "" {
		context = entry.Content
		if runes := []rune(context); len(runes) > 500 {
			context = string(runes[:500])
		}
	}
	return context, entry.Title, nil
}

// SnapshotStore persists crawl snapshots.
type SnapshotStore interface {
	// Save writes the snapshot durably. Writes are atomic: a failed save
	// never corrupts a previously saved snapshot.
	Save(ctx context.Context, snapshot *Snapshot) error

	// Load reads the last saved snapshot. Returns ENOTFOUND when no
	// usable snapshot exists (missing or malformed data is "no data",
	// not a hard failure).
	Load(ctx context.Context) (*Snapshot, error)
}
