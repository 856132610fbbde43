package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/textwarden/obscenity-backend/internal/domain"
)

type dictionaryServiceMock struct {
	ListFunc   func(ctx context.Context, search string, limit, offset int) ([]domain.ObsceneWord, int, error)
	CreateFunc func(ctx context.Context, word string) (*domain.ObsceneWord, error)
	ImportFunc func(ctx context.Context, words []string) (int, error)
}

func (m *dictionaryServiceMock) ListObsceneWords(ctx context.Context, search string, limit, offset int) ([]domain.ObsceneWord, int, error) {
	return m.ListFunc(ctx, search, limit, offset)
}

func (m *dictionaryServiceMock) CreateObsceneWord(ctx context.Context, word string) (*domain.ObsceneWord, error) {
	return m.CreateFunc(ctx, word)
}

func (m *dictionaryServiceMock) ImportObsceneWords(ctx context.Context, words []string) (int, error) {
	return m.ImportFunc(ctx, words)
}

func TestWordsList(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := &dictionaryServiceMock{
		ListFunc: func(ctx context.Context, search string, limit, offset int) ([]domain.ObsceneWord, int, error) {
			if search != "ban" || limit != 10 || offset != 20 {
				t.Errorf("args = (%q, %d, %d)", search, limit, offset)
			}
			return []domain.ObsceneWord{
				{ID: uuid.New(), Value: "Банан", NormalizedValue: "banan", CreatedAt: now, UpdatedAt: now},
			}, 42, nil
		},
	}
	h := NewWordsHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/admin/words?search=ban&limit=10&offset=20", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp wordListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 42 || len(resp.Words) != 1 || resp.Words[0].Value != "Банан" {
		t.Errorf("response = %+v", resp)
	}
}

func TestWordsCreate(t *testing.T) {
	t.Parallel()

	svc := &dictionaryServiceMock{
		CreateFunc: func(ctx context.Context, word string) (*domain.ObsceneWord, error) {
			return &domain.ObsceneWord{ID: uuid.New(), Value: word, NormalizedValue: "banan"}, nil
		},
	}
	h := NewWordsHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/admin/words", strings.NewReader(`{"word":"Банан"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var resp wordResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Value != "Банан" || resp.NormalizedValue != "banan" {
		t.Errorf("response = %+v", resp)
	}
}

func TestWordsCreate_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &dictionaryServiceMock{
		CreateFunc: func(ctx context.Context, word string) (*domain.ObsceneWord, error) {
			return nil, domain.NewValidationError("word", "required")
		},
	}
	h := NewWordsHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/admin/words", strings.NewReader(`{"word":""}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestWordsImport_RawCSV(t *testing.T) {
	t.Parallel()

	svc := &dictionaryServiceMock{
		ImportFunc: func(ctx context.Context, words []string) (int, error) {
			want := []string{"банан", "груша", "гранат"}
			if len(words) != len(want) {
				t.Fatalf("words = %v, want %v", words, want)
			}
			for i := range want {
				if words[i] != want[i] {
					t.Errorf("words[%d] = %q, want %q", i, words[i], want[i])
				}
			}
			return len(words), nil
		},
	}
	h := NewWordsHandler(svc, slog.Default())

	body := "банан,груша\nгранат\n"
	req := httptest.NewRequest(http.MethodPost, "/admin/words/import", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"imported":3`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestWordsImport_MultipartUpload(t *testing.T) {
	t.Parallel()

	svc := &dictionaryServiceMock{
		ImportFunc: func(ctx context.Context, words []string) (int, error) {
			if len(words) != 2 {
				t.Errorf("words = %v", words)
			}
			return len(words), nil
		},
	}
	h := NewWordsHandler(svc, slog.Default())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "words.csv")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("банан\nгруша\n")) //nolint:errcheck
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/words/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestWordsImport_EmptyUpload(t *testing.T) {
	t.Parallel()

	svc := &dictionaryServiceMock{
		ImportFunc: func(ctx context.Context, words []string) (int, error) {
			t.Error("service must not be called")
			return 0, nil
		},
	}
	h := NewWordsHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/admin/words/import", strings.NewReader(""))
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
