// Package obscenity orchestrates the classification core: de-obfuscation
// transformations, normalization, trigram matching against the persistent
// dictionary, and harvesting of suspicious words from clean text.
package obscenity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/textwarden/obscenity-backend/internal/domain"
	"github.com/textwarden/obscenity-backend/internal/filter"
)

const defaultHarvestTimeout = 30 * time.Second

type wordStore interface {
	All(ctx context.Context) ([]domain.ObsceneWord, error)
	List(ctx context.Context, search string, limit, offset int) ([]domain.ObsceneWord, int, error)
	Upsert(ctx context.Context, value, normalizedValue string) (*domain.ObsceneWord, error)
	UpdateBestSimilarity(ctx context.Context, id uuid.UUID, score float64) (bool, error)
}

type suspiciousStore interface {
	BulkInsert(ctx context.Context, values []string) (int, error)
}

type wordProposer interface {
	ProposeSuspiciousWords(ctx context.Context, text string) ([]string, error)
}

// Config holds classification settings.
type Config struct {
	// ObscenityIndicator is the similarity threshold in (0,1) above which a
	// dictionary entry counts as a match.
	ObscenityIndicator float64

	// Transformations are the de-obfuscation hypotheses applied to each word
	// before normalization. Defaults to filter.DefaultTransformations().
	Transformations []filter.Transformation

	// SuspiciousWordsCheck enables harvesting candidate words from text that
	// passed the obscenity check. Requires a proposer.
	SuspiciousWordsCheck bool

	// HarvestTimeout bounds a single harvesting attempt.
	HarvestTimeout time.Duration
}

// Service answers "is this word/text obscene?" and maintains the dictionary
// and the suspicious-word queue. It holds no persistent state of its own.
type Service struct {
	cfg        Config
	words      wordStore
	suspicious suspiciousStore
	proposer   wordProposer
	log        *slog.Logger

	harvests sync.WaitGroup
}

// NewService creates the obscenity filter service. Configuration problems
// are rejected here, never at first use: enabling the suspicious-words check
// without a proposer is a fatal configuration error.
func NewService(
	log *slog.Logger,
	words wordStore,
	suspicious suspiciousStore,
	proposer wordProposer,
	cfg Config,
) (*Service, error) {
	if cfg.ObscenityIndicator <= 0 || cfg.ObscenityIndicator >= 1 {
		return nil, fmt.Errorf("%w: obscenity indicator must be in (0,1), got %v",
			domain.ErrConfiguration, cfg.ObscenityIndicator)
	}
	if cfg.SuspiciousWordsCheck && proposer == nil {
		return nil, fmt.Errorf("%w: a word proposer must be set when the suspicious words check is enabled",
			domain.ErrConfiguration)
	}
	if len(cfg.Transformations) == 0 {
		cfg.Transformations = filter.DefaultTransformations()
	}
	if cfg.HarvestTimeout <= 0 {
		cfg.HarvestTimeout = defaultHarvestTimeout
	}

	return &Service{
		cfg:        cfg,
		words:      words,
		suspicious: suspicious,
		proposer:   proposer,
		log:        log.With("service", "obscenity"),
	}, nil
}

// NormalizeWord returns the canonical comparison form of a word.
func (s *Service) NormalizeWord(word string) string {
	return filter.NormalizeWord(word)
}

// NormalizeText normalizes each space-separated token of text independently.
func (s *Service) NormalizeText(text string) string {
	return filter.NormalizeText(text)
}

// Wait blocks until every in-flight harvest task has finished.
// Called on shutdown; a harvest cancelled by process exit is acceptable.
func (s *Service) Wait() {
	s.harvests.Wait()
}
