// Package api exposes the answering pipeline over HTTP and MCP.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Theathiestmonk/dronacharya-sub001/internal/query"
)

const maxRequestBodySize = 1 << 20 // 1MB

// Answerer is the pipeline entry point the handlers call. The descriptor
// reports what the query resolved to, for request logging.
type Answerer interface {
	Answer(ctx context.Context, text string, profile map[string]string) (string, query.Descriptor)
}

// AskRequest is the body of POST /ask. Profile optionally carries the
// authenticated-user service's grade fallback.
type AskRequest struct {
	Query   string            `json:"query"`
	Profile map[string]string `json:"profile,omitempty"`
}

// AskResponse is the reply to POST /ask.
type AskResponse struct {
	Answer    string `json:"answer"`
	RequestID string `json:"request_id"`
}

// NewHandler returns the HTTP surface: an unauthenticated health check and a
// bearer-authenticated /ask endpoint.
func NewHandler(engine Answerer, token string) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(token))
		r.Post("/ask", handleAsk(engine))
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func handleAsk(engine Answerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req AskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if req.Query == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "query is required")
			return
		}

		requestID := uuid.New().String()
		start := time.Now()
		reply, desc := engine.Answer(r.Context(), req.Query, req.Profile)
		slog.Info("query answered",
			"request_id", requestID,
			"query_type", string(desc.Type),
			"grade", desc.Grade,
			"duration_ms", time.Since(start).Milliseconds(),
		)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(AskResponse{Answer: reply, RequestID: requestID})
	}
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
