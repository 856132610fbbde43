// Package moderation implements the suspicious-word lifecycle:
// PENDING → ADDED (approve) or PENDING → DECLINED (decline), both driven by
// an external moderator action. Terminal entries are immutable.
package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/textwarden/obscenity-backend/internal/domain"
)

type suspiciousStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SuspiciousWord, error)
	List(ctx context.Context, status *domain.SuspiciousWordStatus, limit, offset int) ([]domain.SuspiciousWord, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SuspiciousWordStatus) (*domain.SuspiciousWord, error)
}

type dictionary interface {
	CreateObsceneWord(ctx context.Context, word string) (*domain.ObsceneWord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service applies moderation decisions to the suspicious-word queue.
type Service struct {
	suspicious suspiciousStore
	dictionary dictionary
	tx         txManager
	log        *slog.Logger
}

// NewService creates a moderation service.
func NewService(
	log *slog.Logger,
	suspicious suspiciousStore,
	dictionary dictionary,
	tx txManager,
) *Service {
	return &Service{
		suspicious: suspicious,
		dictionary: dictionary,
		tx:         tx,
		log:        log.With("service", "moderation"),
	}
}

// List returns a page of the suspicious-word queue, optionally filtered by
// status, plus the total count of matches.
func (s *Service) List(ctx context.Context, status *domain.SuspiciousWordStatus, limit, offset int) ([]domain.SuspiciousWord, int, error) {
	if status != nil && !status.IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *status)
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return s.suspicious.List(ctx, status, limit, offset)
}

// Approve transitions a PENDING suspicious word to ADDED and materializes it
// in the obscene-word dictionary. Both writes happen in one transaction: a
// word is never marked ADDED without landing in the dictionary.
// Returns domain.ErrNotFound for an unknown id and
// domain.ErrInvalidTransition when the entry is no longer PENDING.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*domain.SuspiciousWord, error) {
	var approved *domain.SuspiciousWord

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		entry, err := s.suspicious.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !entry.CanTransition() {
			return fmt.Errorf("suspicious word %s is %s: %w", id, entry.Status, domain.ErrInvalidTransition)
		}

		updated, err := s.suspicious.UpdateStatus(ctx, id, domain.SuspiciousWordStatusAdded)
		if err != nil {
			return err
		}

		if _, err := s.dictionary.CreateObsceneWord(ctx, updated.Value); err != nil {
			return fmt.Errorf("materialize obscene word: %w", err)
		}

		approved = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "suspicious word approved",
		slog.String("id", id.String()),
		slog.String("value", approved.Value),
	)

	return approved, nil
}

// Decline transitions a PENDING suspicious word to DECLINED. No further
// effect. Returns domain.ErrNotFound for an unknown id and
// domain.ErrInvalidTransition when the entry is no longer PENDING.
func (s *Service) Decline(ctx context.Context, id uuid.UUID) (*domain.SuspiciousWord, error) {
	var declined *domain.SuspiciousWord

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		entry, err := s.suspicious.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !entry.CanTransition() {
			return fmt.Errorf("suspicious word %s is %s: %w", id, entry.Status, domain.ErrInvalidTransition)
		}

		updated, err := s.suspicious.UpdateStatus(ctx, id, domain.SuspiciousWordStatusDeclined)
		if err != nil {
			return err
		}

		declined = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "suspicious word declined",
		slog.String("id", id.String()),
		slog.String("value", declined.Value),
	)

	return declined, nil
}
