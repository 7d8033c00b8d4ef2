package lexicon

import (
	"strings"
	"time"

	"github.com/heartmarshall/rbmt-backend/internal/domain"
)

// Snapshot is an immutable lexicon table. A Snapshot is never modified after
// it has been published by a Store, so it is safe for concurrent readers.
type Snapshot struct {
	path          string
	entries       map[string]string
	maxPhraseLen  int
	skipped       int
	sourceMissing bool
	loadedAt      time.Time
}

// NewSnapshot builds a Snapshot from an in-memory surface → translation map.
// Keys are normalized and values trimmed; pairs that end up empty are dropped.
func NewSnapshot(entries map[string]string) *Snapshot {
	b := newBuilder(len(entries))
	for surface, translation := range entries {
		b.add(surface, translation)
	}
	return b.snapshot("", time.Now())
}

// Lookup returns the translation for surface. Matching is an exact,
// case-insensitive comparison against the normalized key.
func (s *Snapshot) Lookup(surface string) (string, bool) {
	v, ok := s.entries[strings.ToLower(surface)]
	return v, ok
}

// MaxPhraseLength is the largest word count among the keys, never less than 1.
func (s *Snapshot) MaxPhraseLength() int { return s.maxPhraseLen }

// Len returns the number of entries.
func (s *Snapshot) Len() int { return len(s.entries) }

// Stats summarizes the snapshot.
func (s *Snapshot) Stats() domain.LexiconStats {
	return domain.LexiconStats{
		Path:            s.path,
		Entries:         len(s.entries),
		MaxPhraseLength: s.maxPhraseLen,
		Skipped:         s.skipped,
		SourceMissing:   s.sourceMissing,
		LoadedAt:        s.loadedAt,
	}
}

// builder accumulates rows for a single load. Later rows win on duplicate keys.
type builder struct {
	entries      map[string]string
	maxPhraseLen int
	skipped      int
}

func newBuilder(sizeHint int) *builder {
	return &builder{
		entries:      make(map[string]string, sizeHint),
		maxPhraseLen: 1,
	}
}

func (b *builder) add(surface, translation string) bool {
	key := domain.NormalizeText(surface)
	value := strings.TrimSpace(translation)
	if key == "" || value == "" {
		b.skipped++
		return false
	}

	b.entries[key] = value
	if n := domain.WordCount(key); n > b.maxPhraseLen {
		b.maxPhraseLen = n
	}
	return true
}

func (b *builder) snapshot(path string, at time.Time) *Snapshot {
	return &Snapshot{
		path:         path,
		entries:      b.entries,
		maxPhraseLen: b.maxPhraseLen,
		skipped:      b.skipped,
		loadedAt:     at,
	}
}

func emptySnapshot(path string, at time.Time) *Snapshot {
	s := newBuilder(0).snapshot(path, at)
	s.sourceMissing = true
	return s
}
