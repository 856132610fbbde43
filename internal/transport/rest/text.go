package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/textwarden/obscenity-backend/internal/filter"
)

// Responses of the public check endpoint. Clients key off the status code;
// the messages are kept for human eyes.
const (
	msgTextFine    = "Your text is fine!"
	msgObsceneWord = "Obscene word!"
)

type checkerService interface {
	IsTextObscene(ctx context.Context, text string) (bool, error)
	GetSimilarWords(ctx context.Context, text string, limit int) (map[string][]filter.Match, error)
}

// TextHandler serves the public text-checking endpoints.
type TextHandler struct {
	svc checkerService
	log *slog.Logger
}

// NewTextHandler creates a TextHandler.
func NewTextHandler(svc checkerService, logger *slog.Logger) *TextHandler {
	return &TextHandler{svc: svc, log: logger.With("handler", "text")}
}

type checkRequest struct {
	Text string `json:"text"`
}

type similarWordsRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit"`
}

type matchResponse struct {
	Value           string  `json:"value"`
	NormalizedValue string  `json:"normalized_value"`
	Similarity      float64 `json:"similarity"`
}

// Check handles POST /text/check. A clean text gets 200, a text containing
// an obscene word gets 400.
func (h *TextHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	obscene, err := h.svc.IsTextObscene(r.Context(), req.Text)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if obscene {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": msgObsceneWord})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": msgTextFine})
}

// SimilarWords handles POST /text/obscene-words: for each token of the text,
// the closest dictionary entries by similarity. Advisory, no verdict.
func (h *TextHandler) SimilarWords(w http.ResponseWriter, r *http.Request) {
	var req similarWordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	matches, err := h.svc.GetSimilarWords(r.Context(), req.Text, req.Limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make(map[string][]matchResponse, len(matches))
	for token, ms := range matches {
		out := make([]matchResponse, len(ms))
		for i, m := range ms {
			out[i] = matchResponse{
				Value:           m.Word.Value,
				NormalizedValue: m.Word.NormalizedValue,
				Similarity:      m.Score,
			}
		}
		resp[token] = out
	}

	writeJSON(w, http.StatusOK, resp)
}
