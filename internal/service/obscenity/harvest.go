package obscenity

import (
	"context"
	"log/slog"
)

// dispatchHarvest runs a harvest attempt on its own goroutine. The task
// inherits context values but not cancellation: the caller's request ends
// with the verdict, while the harvest keeps its own timeout budget.
func (s *Service) dispatchHarvest(ctx context.Context, text string) {
	harvestCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.HarvestTimeout)

	s.harvests.Add(1)
	go func() {
		defer s.harvests.Done()
		defer cancel()
		s.harvest(harvestCtx, text)
	}()
}

// harvest asks the completion service for candidate obscene words in text
// and queues them as PENDING suspicious words. Every failure here is logged
// and swallowed: harvesting is a best-effort side channel.
func (s *Service) harvest(ctx context.Context, text string) {
	words, err := s.proposer.ProposeSuspiciousWords(ctx, text)
	if err != nil {
		s.log.WarnContext(ctx, "suspicious word harvesting failed",
			slog.String("error", err.Error()),
		)
		return
	}

	inserted, err := s.suspicious.BulkInsert(ctx, words)
	if err != nil {
		s.log.WarnContext(ctx, "suspicious word insert failed",
			slog.Int("proposed", len(words)),
			slog.String("error", err.Error()),
		)
		return
	}

	s.log.InfoContext(ctx, "suspicious words harvested",
		slog.Int("proposed", len(words)),
		slog.Int("inserted", inserted),
	)
}
