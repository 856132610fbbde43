package rest

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/textwarden/obscenity-backend/internal/domain"
)

const maxImportSize = 10 << 20 // 10 MiB

type dictionaryService interface {
	ListObsceneWords(ctx context.Context, search string, limit, offset int) ([]domain.ObsceneWord, int, error)
	CreateObsceneWord(ctx context.Context, word string) (*domain.ObsceneWord, error)
	ImportObsceneWords(ctx context.Context, words []string) (int, error)
}

// WordsHandler serves the admin dictionary endpoints.
type WordsHandler struct {
	svc dictionaryService
	log *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc dictionaryService, logger *slog.Logger) *WordsHandler {
	return &WordsHandler{svc: svc, log: logger.With("handler", "words")}
}

type wordResponse struct {
	ID              string    `json:"id"`
	Value           string    `json:"value"`
	NormalizedValue string    `json:"normalized_value"`
	BestSimilarity  *float64  `json:"best_similarity,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type wordListResponse struct {
	Words []wordResponse `json:"words"`
	Total int            `json:"total"`
}

type createWordRequest struct {
	Word string `json:"word"`
}

// List handles GET /admin/words?search=&limit=&offset=.
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	words, total, err := h.svc.ListObsceneWords(r.Context(), q.Get("search"), limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := wordListResponse{Words: make([]wordResponse, len(words)), Total: total}
	for i, word := range words {
		resp.Words[i] = toWordResponse(word)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /admin/words.
func (h *WordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, err := h.svc.CreateObsceneWord(r.Context(), req.Word)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(*word))
}

// Import handles POST /admin/words/import. The body is a CSV upload (either
// a multipart "file" field or the raw request body); every non-empty cell is
// one dictionary word.
func (h *WordsHandler) Import(w http.ResponseWriter, r *http.Request) {
	reader, err := importBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	words, err := parseWordsCSV(reader)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid csv: %v", err))
		return
	}
	if len(words) == 0 {
		writeError(w, http.StatusBadRequest, "no words in upload")
		return
	}

	imported, err := h.svc.ImportObsceneWords(r.Context(), words)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"imported": imported})
}

func importBody(r *http.Request) (io.Reader, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			return nil, fmt.Errorf("invalid multipart form")
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("missing file field")
		}
		return file, nil
	}
	return io.LimitReader(r.Body, maxImportSize), nil
}

// parseWordsCSV flattens a CSV document into words, one per cell. Rows may
// have varying lengths.
func parseWordsCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var words []string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, cell := range record {
			if cell != "" {
				words = append(words, cell)
			}
		}
	}
	return words, nil
}

func toWordResponse(w domain.ObsceneWord) wordResponse {
	return wordResponse{
		ID:              w.ID.String(),
		Value:           w.Value,
		NormalizedValue: w.NormalizedValue,
		BestSimilarity:  w.BestSimilarity,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}
