package obscenity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/textwarden/obscenity-backend/internal/domain"
	"github.com/textwarden/obscenity-backend/internal/filter"
)

// CreateObsceneWord adds word to the dictionary or refreshes an existing
// entry. The surface value is stored exactly as submitted; the normalized
// value is always recomputed, so re-creating an entry after a normalizer
// change brings it up to date. Best similarity is left untouched.
func (s *Service) CreateObsceneWord(ctx context.Context, word string) (*domain.ObsceneWord, error) {
	if strings.TrimSpace(word) == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	entry, err := s.words.Upsert(ctx, word, filter.NormalizeWord(word))
	if err != nil {
		return nil, fmt.Errorf("upsert obscene word: %w", err)
	}

	s.log.InfoContext(ctx, "obscene word stored",
		slog.String("value", entry.Value),
		slog.String("normalized", entry.NormalizedValue),
	)

	return entry, nil
}

// ImportObsceneWords upserts every non-blank word in the batch and returns
// the number processed. A single bad row aborts the import so a partially
// applied file is never silently accepted.
func (s *Service) ImportObsceneWords(ctx context.Context, words []string) (int, error) {
	imported := 0
	for _, word := range words {
		if strings.TrimSpace(word) == "" {
			continue
		}
		if _, err := s.words.Upsert(ctx, word, filter.NormalizeWord(word)); err != nil {
			return imported, fmt.Errorf("import %q: %w", word, err)
		}
		imported++
	}

	s.log.InfoContext(ctx, "obscene words imported", slog.Int("count", imported))
	return imported, nil
}
