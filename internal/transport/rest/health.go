package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/rbmt-backend/internal/domain"
)

// lexiconStatus defines the minimal interface for lexicon health checks.
type lexiconStatus interface {
	Status(ctx context.Context) domain.LexiconStats
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	lex     lexiconStatus
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(lex lexiconStatus, version string) *HealthHandler {
	return &HealthHandler{lex: lex, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status       string    `json:"status"`
	Entries      int       `json:"entries"`
	MaxPhraseLen int       `json:"max_phrase_len"`
	Version      string    `json:"version,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now(),
	})
}

// Ready is the readiness probe: 200 once the lexicon holds entries, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	stats := h.lex.Status(r.Context())

	status, code := "ok", http.StatusOK
	if stats.Entries == 0 {
		status, code = "empty", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:       status,
		Entries:      stats.Entries,
		MaxPhraseLen: stats.MaxPhraseLength,
		Timestamp:    time.Now(),
	})
}

// Health reports lexicon size and the longest phrase. An empty lexicon is
// still healthy: translation degrades to pass-through.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.lex.Status(r.Context())

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:       "ok",
		Entries:      stats.Entries,
		MaxPhraseLen: stats.MaxPhraseLength,
		Version:      h.version,
		Timestamp:    time.Now(),
	})
}
