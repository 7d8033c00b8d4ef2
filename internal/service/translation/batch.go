package translation

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// TranslateBatch translates every text with the same lexicon snapshot, so a
// concurrent reload cannot split one batch across two tables. Results keep
// the order of the input.
func (s *Service) TranslateBatch(ctx context.Context, in BatchInput) ([]Result, error) {
	if err := in.Validate(s.cfg.MaxBatchSize, s.cfg.MaxTextLength); err != nil {
		return nil, err
	}

	snap := s.lex.Snapshot()
	results := make([]Result, len(in.Texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.cfg.BatchWorkers, 1))

	for i, text := range in.Texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = translateOne(snap, text, in.Debug)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("translate batch: %w", err)
	}

	s.log.DebugContext(ctx, "batch translated", slog.Int("items", len(results)))
	return results, nil
}
