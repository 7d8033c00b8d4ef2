// Package lexicon holds the bilingual surface → translation table used by
// the phrase translator. The live table is an immutable Snapshot swapped
// atomically on reload, so readers never observe a partially built table.
package lexicon

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/rbmt-backend/internal/domain"
)

const (
	DefaultSourceColumn = "kurukh"
	DefaultTargetColumn = "hindi"
)

// Option configures a Store.
type Option func(*Store)

// WithColumns sets the header names of the surface and translation columns.
func WithColumns(source, target string) Option {
	return func(s *Store) {
		s.format.sourceColumn = source
		s.format.targetColumn = target
	}
}

// WithDelimiter sets the field separator of the source file. Zero keeps the default comma.
func WithDelimiter(comma rune) Option {
	return func(s *Store) {
		if comma != 0 {
			s.format.comma = comma
		}
	}
}

// WithLogger sets the logger used to report load outcomes.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log.With("component", "lexicon") }
}

// Store owns the live lexicon snapshot for a single source path.
type Store struct {
	path   string
	format format
	log    *slog.Logger

	reloadMu sync.Mutex
	current  atomic.Pointer[Snapshot]
}

// Load creates a Store for path and reads it immediately. A missing or
// unreadable source is not fatal: the store starts empty with a maximum
// phrase length of 1.
func Load(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		format: format{
			sourceColumn: DefaultSourceColumn,
			targetColumn: DefaultTargetColumn,
			comma:        ',',
		},
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Reload()
	return s
}

// Reload re-reads the source and atomically replaces the live snapshot.
// Concurrent reloads are serialized; lookups never block on a reload.
func (s *Store) Reload() domain.LexiconStats {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	start := time.Now()
	snap, err := readFile(s.path, s.format)
	switch {
	case errors.Is(err, domain.ErrSourceMissing):
		s.log.Warn("lexicon source unavailable, using empty table",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		snap = emptySnapshot(s.path, start)
	case err != nil:
		s.log.Error("lexicon read interrupted, keeping parsed rows",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
	}

	s.current.Store(snap)

	stats := snap.Stats()
	s.log.Info("lexicon loaded",
		slog.String("path", s.path),
		slog.Int("entries", stats.Entries),
		slog.Int("max_phrase_len", stats.MaxPhraseLength),
		slog.Int("skipped", stats.Skipped),
		slog.Duration("duration", time.Since(start)),
	)
	return stats
}

// Snapshot returns the live table. Store has no lookup methods of its own:
// a request takes one Snapshot and performs all of its lookups against it.
func (s *Store) Snapshot() *Snapshot { return s.current.Load() }

// Stats describes the live table.
func (s *Store) Stats() domain.LexiconStats { return s.Snapshot().Stats() }
