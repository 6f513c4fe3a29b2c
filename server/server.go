// Package server exposes the query pipeline over HTTP. The assistant
// front end calls GET /api/search with the raw transcribed question and
// renders the returned hits.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/poiesic/kazipot/core"
)

// QueryAnalyzer runs a natural language query through the understanding and
// retrieval pipeline.
type QueryAnalyzer interface {
	AnalyzeQuery(ctx context.Context, query string) ([]core.Hit, error)
}

// Server is the HTTP front end of the query pipeline.
type Server struct {
	analyzer QueryAnalyzer
	cfg      Config
	logger   *slog.Logger
	httpSrv  *http.Server
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewServer creates an HTTP API server around a query analyzer.
func NewServer(cfg Config, analyzer QueryAnalyzer, opts ...Option) (*Server, error) {
	if analyzer == nil {
		return nil, ErrAnalyzerRequired
	}

	s := &Server{
		analyzer: analyzer,
		cfg:      cfg,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.httpSrv = &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	return s, nil
}

// Handler returns the HTTP routing handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/api/search", s.handleSearch)

	return r
}

// ListenAndServe runs the HTTP server until the context is cancelled, then
// shuts down gracefully within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(s.cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

type searchResponse struct {
	Query string        `json:"query"`
	Count int           `json:"count"`
	Hits  []hitResponse `json:"hits"`
}

type hitResponse struct {
	Id             uint64  `json:"id"`
	Name           string  `json:"name"`
	Link           string  `json:"link,omitempty"`
	Type           string  `json:"type,omitempty"`
	RegionName     string  `json:"regionName,omitempty"`
	Destination    string  `json:"destination,omitempty"`
	Place          string  `json:"place,omitempty"`
	Kind           string  `json:"kind"`
	Description    string  `json:"description,omitempty"`
	Webpage        string  `json:"webpage,omitempty"`
	Score          float64 `json:"score"`
	TopResult      bool    `json:"topResult"`
	ExactHit       bool    `json:"exactHit"`
	Suggestion     bool    `json:"suggestion"`
	SuggestionText string  `json:"suggestionText,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing_query", "query parameter q is required")
		return
	}

	hits, err := s.analyzer.AnalyzeQuery(r.Context(), query)
	if err != nil {
		s.logger.Error("query analysis failed", "query", query, "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	items := make([]hitResponse, len(hits))
	for i, h := range hits {
		items[i] = hitToResponse(h)
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query: query,
		Count: len(items),
		Hits:  items,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func hitToResponse(h core.Hit) hitResponse {
	return hitResponse{
		Id:             uint64(h.Id),
		Name:           h.Name,
		Link:           h.Link,
		Type:           h.Type,
		RegionName:     h.RegionName,
		Destination:    h.Destination,
		Place:          h.Place,
		Kind:           h.Kind.String(),
		Description:    h.Description,
		Webpage:        h.Webpage,
		Score:          h.Score,
		TopResult:      h.IsTopResult,
		ExactHit:       h.ExactHit,
		Suggestion:     h.Suggestion,
		SuggestionText: h.SuggestionText,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
