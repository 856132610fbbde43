package domain

import (
	"time"

	"github.com/google/uuid"
)

// ObsceneWord is a dictionary entry used for trigram matching.
// Value is the surface form exactly as submitted (unique); NormalizedValue is
// recomputed from Value on every write and is what similarity runs against.
type ObsceneWord struct {
	ID              uuid.UUID
	Value           string
	NormalizedValue string

	// BestSimilarity is the highest similarity score ever recorded against
	// this entry during classification, nil until the first match. It only
	// increases over the entry's lifetime.
	BestSimilarity *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SuspiciousWord is a moderation-queue entry proposed by the completion
// service. Value is unique; duplicate proposals are ignored on insert.
type SuspiciousWord struct {
	ID        uuid.UUID
	Value     string
	Status    SuspiciousWordStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransition reports whether the entry may leave its current status.
// Only PENDING entries are mutable; ADDED and DECLINED are terminal.
func (w SuspiciousWord) CanTransition() bool {
	return w.Status == SuspiciousWordStatusPending
}
