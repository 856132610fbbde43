package obscenity

import (
	"context"

	"github.com/textwarden/obscenity-backend/internal/domain"
)

// ListObsceneWords returns a page of dictionary entries whose surface or
// normalized value contains search, plus the total count of matches.
func (s *Service) ListObsceneWords(ctx context.Context, search string, limit, offset int) ([]domain.ObsceneWord, int, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return s.words.List(ctx, search, limit, offset)
}
