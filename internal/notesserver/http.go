// Package notesserver exposes the notes pipeline over HTTP and MCP.
package notesserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/anatolykoptev/go_ytnotes/internal/engine"
	"github.com/anatolykoptev/go_ytnotes/internal/toolutil"
)

const (
	maxBodyBytes = 1 << 20
	maxLoggedURL = 200
)

// Analyzer runs the notes pipeline for one URL.
type Analyzer interface {
	Analyze(ctx context.Context, rawURL string) (*engine.AnalysisResult, error)
}

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	URL    string `json:"url"`
	Format string `json:"format,omitempty"` // "html" adds notes_html
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	analyzer Analyzer
}

// NewHandler builds the HTTP API:
//
//	POST /analyze  run the pipeline for {url}
//	GET  /health   liveness
//	GET  /metrics  plain-text counters
func NewHandler(a Analyzer) http.Handler {
	h := &handlers{analyzer: a}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", h.handleAnalyze)
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /metrics", h.handleMetrics)

	return withRequestID(mux)
}

func (h *handlers) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqID := requestIDFrom(r.Context())

	var req AnalyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		slog.Debug("analyze: bad body", slog.String("request_id", reqID), slog.Any("error", err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}
	slog.Info("analyze request",
		slog.String("request_id", reqID),
		slog.String("url", engine.TruncateRunes(req.URL, maxLoggedURL, "...")))

	res, err := h.analyzer.Analyze(r.Context(), req.URL)
	if err != nil {
		pErr := engine.AsPipelineError(err)
		slog.Warn("analyze request failed",
			slog.String("request_id", reqID),
			slog.String("code", string(pErr.Code)),
			slog.Any("error", err))
		writeJSON(w, pErr.Status, errorResponse{Error: pErr.Message})
		return
	}

	if err := toolutil.ApplyFormat(res, req.Format); err != nil {
		slog.Warn("analyze: html render failed", slog.String("request_id", reqID), slog.Any("error", err))
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(engine.FormatMetrics()))
}

// writeJSON writes v as JSON. Notes contain Markdown and emoji, so HTML escaping is off.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Debug("write response failed", slog.Any("error", err))
	}
}

type requestIDKey struct{}

// withRequestID tags every request with a ULID, echoed in X-Request-Id.
// An incoming X-Request-Id is kept.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = toolutil.NewRequestID()
		}
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
