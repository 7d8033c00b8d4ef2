package translation

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/rbmt-backend/internal/config"
	"github.com/heartmarshall/rbmt-backend/internal/domain"
	"github.com/heartmarshall/rbmt-backend/internal/lexicon"
	"github.com/heartmarshall/rbmt-backend/internal/mt"
)

type lexiconStore interface {
	Snapshot() *lexicon.Snapshot
	Reload() domain.LexiconStats
}

// Service exposes the translation pipeline to transports.
type Service struct {
	lex lexiconStore
	cfg config.TranslateConfig
	log *slog.Logger
}

// NewService creates a new translation service.
func NewService(
	log *slog.Logger,
	lex lexiconStore,
	cfg config.TranslateConfig,
) *Service {
	return &Service{
		lex: lex,
		cfg: cfg,
		log: log.With("service", "translation"),
	}
}

// Status describes the live lexicon.
func (s *Service) Status(_ context.Context) domain.LexiconStats {
	return s.lex.Snapshot().Stats()
}

// Reload re-reads the lexicon source and returns the new table's stats.
func (s *Service) Reload(ctx context.Context) domain.LexiconStats {
	before := s.lex.Snapshot().Len()
	stats := s.lex.Reload()

	s.log.InfoContext(ctx, "lexicon reloaded",
		slog.Int("entries_before", before),
		slog.Int("entries_after", stats.Entries),
		slog.Int("max_phrase_len", stats.MaxPhraseLength),
		slog.Bool("source_missing", stats.SourceMissing),
	)
	return stats
}

// Translate translates a single text. An empty text yields an empty result.
func (s *Service) Translate(ctx context.Context, in TranslateInput) (*Result, error) {
	if err := in.Validate(s.cfg.MaxTextLength); err != nil {
		return nil, err
	}

	res := translateOne(s.lex.Snapshot(), in.Text, in.Debug)

	s.log.DebugContext(ctx, "text translated",
		slog.Int("input_len", len(in.Text)),
		slog.Int("matches", len(res.Matches)),
	)
	return &res, nil
}

func translateOne(lex mt.Lexicon, text string, debug bool) Result {
	out, matches := mt.TranslateText(text, lex, debug)
	return Result{TranslatedText: out, Matches: matches}
}
