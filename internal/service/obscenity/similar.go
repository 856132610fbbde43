package obscenity

import (
	"context"
	"fmt"
	"strings"

	"github.com/textwarden/obscenity-backend/internal/filter"
)

// GetSimilarWords returns, for each space-separated token of text, the top
// limit dictionary entries by trigram similarity against the normalized
// token. The map is keyed by the RAW token; a token repeated in the input
// overwrites its earlier result (last write wins — accepted quirk of the
// map-shaped response). Advisory only: this does not apply the match rule
// and never mutates best similarities.
func (s *Service) GetSimilarWords(ctx context.Context, text string, limit int) (map[string][]filter.Match, error) {
	if limit <= 0 {
		limit = 1
	}

	dict, err := s.words.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	result := make(map[string][]filter.Match)
	for _, word := range strings.Split(text, " ") {
		result[word] = filter.BestMatch(filter.NormalizeWord(word), dict, limit)
	}
	return result, nil
}
