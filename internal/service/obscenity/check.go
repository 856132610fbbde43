package obscenity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/textwarden/obscenity-backend/internal/domain"
	"github.com/textwarden/obscenity-backend/internal/filter"
)

// IsWordObscene applies every transformation hypothesis to word, normalizes
// the result, and matches it against the dictionary. The first positive
// hypothesis wins (short-circuit). A dictionary read failure aborts the call:
// no verdict is possible without the dictionary.
func (s *Service) IsWordObscene(ctx context.Context, word string) (bool, error) {
	dict, err := s.words.All(ctx)
	if err != nil {
		return false, fmt.Errorf("load dictionary: %w", err)
	}

	for _, transform := range s.cfg.Transformations {
		candidate := filter.NormalizeWord(transform(word))
		if candidate == "" {
			continue
		}
		if s.matchAgainst(ctx, candidate, dict) {
			return true, nil
		}
	}
	return false, nil
}

// matchAgainst runs the obscenity match rule: an entry matches when the
// score beats the indicator AND beats the entry's recorded best similarity
// (or none is recorded). Every match ratchets the entry's best similarity —
// classification is deliberately not a pure read.
func (s *Service) matchAgainst(ctx context.Context, candidate string, dict []domain.ObsceneWord) bool {
	matched := false
	for _, entry := range dict {
		score := filter.Similarity(candidate, entry.NormalizedValue)
		if score <= s.cfg.ObscenityIndicator {
			continue
		}
		if entry.BestSimilarity != nil && score <= *entry.BestSimilarity {
			continue
		}

		matched = true

		// The verdict is already decided from the read snapshot; a failed
		// ratchet write only leaves a stale cached score behind.
		if _, err := s.words.UpdateBestSimilarity(ctx, entry.ID, score); err != nil {
			s.log.WarnContext(ctx, "best similarity update failed",
				slog.String("word", entry.Value),
				slog.String("error", err.Error()),
			)
		}
	}
	return matched
}

// IsTextObscene splits text on single spaces and reports whether any token
// is obscene (short-circuit on the first hit). When the text is clean and
// the suspicious-words check is enabled, candidate words are harvested in
// the background; harvesting can never change or delay the verdict.
func (s *Service) IsTextObscene(ctx context.Context, text string) (bool, error) {
	for _, word := range strings.Split(text, " ") {
		obscene, err := s.IsWordObscene(ctx, word)
		if err != nil {
			return false, err
		}
		if obscene {
			return true, nil
		}
	}

	if s.cfg.SuspiciousWordsCheck {
		s.dispatchHarvest(ctx, text)
	}

	return false, nil
}
