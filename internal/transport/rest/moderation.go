package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/textwarden/obscenity-backend/internal/domain"
)

type moderationService interface {
	List(ctx context.Context, status *domain.SuspiciousWordStatus, limit, offset int) ([]domain.SuspiciousWord, int, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.SuspiciousWord, error)
	Decline(ctx context.Context, id uuid.UUID) (*domain.SuspiciousWord, error)
}

// ModerationHandler serves the suspicious-word queue endpoints.
type ModerationHandler struct {
	svc moderationService
	log *slog.Logger
}

// NewModerationHandler creates a ModerationHandler.
func NewModerationHandler(svc moderationService, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{svc: svc, log: logger.With("handler", "moderation")}
}

type suspiciousWordResponse struct {
	ID        string    `json:"id"`
	Value     string    `json:"value"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type suspiciousListResponse struct {
	Words []suspiciousWordResponse `json:"words"`
	Total int                      `json:"total"`
}

// List handles GET /admin/suspicious?status=&limit=&offset=.
func (h *ModerationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var status *domain.SuspiciousWordStatus
	if v := q.Get("status"); v != "" {
		s := domain.SuspiciousWordStatus(v)
		status = &s
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	words, total, err := h.svc.List(r.Context(), status, limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := suspiciousListResponse{Words: make([]suspiciousWordResponse, len(words)), Total: total}
	for i, word := range words {
		resp.Words[i] = toSuspiciousResponse(word)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Approve handles POST /admin/suspicious/{id}/approve.
func (h *ModerationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Approve)
}

// Decline handles POST /admin/suspicious/{id}/decline.
func (h *ModerationHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Decline)
}

func (h *ModerationHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id uuid.UUID) (*domain.SuspiciousWord, error),
) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	word, err := op(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuspiciousResponse(*word))
}

func toSuspiciousResponse(w domain.SuspiciousWord) suspiciousWordResponse {
	return suspiciousWordResponse{
		ID:        w.ID.String(),
		Value:     w.Value,
		Status:    w.Status.String(),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
