package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/rbmt-backend/internal/domain"
	"github.com/heartmarshall/rbmt-backend/internal/service/translation"
)

type translationService interface {
	Reload(ctx context.Context) domain.LexiconStats
	Translate(ctx context.Context, in translation.TranslateInput) (*translation.Result, error)
	TranslateBatch(ctx context.Context, in translation.BatchInput) ([]translation.Result, error)
}

// TranslateHandler serves the translation and reload endpoints.
type TranslateHandler struct {
	svc translationService
	log *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(svc translationService, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{
		svc: svc,
		log: logger.With("handler", "translate"),
	}
}

// TranslateRequest is the body of POST /translate.
type TranslateRequest struct {
	Text  *string `json:"text"`
	Debug bool    `json:"debug"`
}

// DebugInfo carries the match audit trail.
type DebugInfo struct {
	Matches []domain.Match `json:"matches"`
}

// TranslateResponse is the body of a single translation reply.
type TranslateResponse struct {
	TranslatedText string     `json:"translated_text"`
	Debug          *DebugInfo `json:"debug"`
}

// BatchRequest is the body of POST /translate/batch.
type BatchRequest struct {
	Texts []string `json:"texts"`
	Debug bool     `json:"debug"`
}

// BatchResponse is the body of POST /translate/batch replies.
type BatchResponse struct {
	Items []TranslateResponse `json:"items"`
}

// ReloadResponse is the body of POST /reload replies.
type ReloadResponse struct {
	Status       string `json:"status"`
	Entries      int    `json:"entries"`
	MaxPhraseLen int    `json:"max_phrase_len"`
}

// Reload re-reads the lexicon source.
// POST /reload
func (h *TranslateHandler) Reload(w http.ResponseWriter, r *http.Request) {
	stats := h.svc.Reload(r.Context())

	writeJSON(w, http.StatusOK, ReloadResponse{
		Status:       "reloaded",
		Entries:      stats.Entries,
		MaxPhraseLen: stats.MaxPhraseLength,
	})
}

// Translate translates one text.
// POST /translate
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := decodeJSON(r, w, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Text == nil {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	res, err := h.svc.Translate(r.Context(), translation.TranslateInput{Text: *req.Text, Debug: req.Debug})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(*res, req.Debug))
}

// TranslateBatch translates a list of texts, preserving order.
// POST /translate/batch
func (h *TranslateHandler) TranslateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := decodeJSON(r, w, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Texts == nil {
		writeError(w, http.StatusBadRequest, "texts is required")
		return
	}

	results, err := h.svc.TranslateBatch(r.Context(), translation.BatchInput{Texts: req.Texts, Debug: req.Debug})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items := make([]TranslateResponse, len(results))
	for i, res := range results {
		items[i] = toResponse(res, req.Debug)
	}
	writeJSON(w, http.StatusOK, BatchResponse{Items: items})
}

func toResponse(res translation.Result, debug bool) TranslateResponse {
	out := TranslateResponse{TranslatedText: res.TranslatedText}
	if debug {
		matches := res.Matches
		if matches == nil {
			matches = []domain.Match{}
		}
		out.Debug = &DebugInfo{Matches: matches}
	}
	return out
}

func (h *TranslateHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: ve.Errors})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.log.WarnContext(r.Context(), "translation aborted", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "request canceled")
	default:
		h.log.ErrorContext(r.Context(), "translate", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
