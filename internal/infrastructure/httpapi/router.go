// Package httpapi exposes scanning and history as JSON over HTTP for the browser UI.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ersonp/scamguard/internal/application/handlers"
	"github.com/ersonp/scamguard/internal/domain/entities"
	"github.com/ersonp/scamguard/internal/infrastructure/config"
)

// maxBodyBytes bounds the size of a scan request body.
const maxBodyBytes = 1 << 20

var errBadRequest = errors.New("bad request")

// Router serves the HTTP API.
type Router struct {
	scan    *handlers.ScanHandler
	history *handlers.HistoryHandler
	logger  *slog.Logger
}

// NewRouter builds the API handler.
func NewRouter(scan *handlers.ScanHandler, history *handlers.HistoryHandler, cfg config.ServerConfig, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Router{scan: scan, history: history, logger: logger}
	limiter := NewRateLimiter(cfg.RateLimit, cfg.Burst)

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(requestLogger(logger))
	mux.Use(middleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	mux.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	mux.Route("/api", func(rt chi.Router) {
		rt.With(limiter.Middleware).Post("/scan", r.wrap(r.handleScan))
		rt.Get("/history", r.wrap(r.handleHistory))
		rt.Get("/history/{id}", r.wrap(r.handleHistoryItem))
		rt.Delete("/history", r.wrap(r.handleClear))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		switch {
		case errors.Is(err, entities.ErrInvalidInput), errors.Is(err, errBadRequest):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, entities.ErrNotFound):
			writeError(w, http.StatusNotFound, err)
		default:
			r.logger.ErrorContext(req.Context(), "request failed", "path", req.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, errors.New("internal error"))
		}
	}
}

// POST /api/scan
// Body: {"text": "<message>"}
func (r *Router) handleScan(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Text string `json:"text"`
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		return errors.Join(errBadRequest, err)
	}

	rec, err := r.scan.Handle(req.Context(), body.Text)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, rec)
}

// GET /api/history
func (r *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, r.history.HandleList(req.Context()))
}

// GET /api/history/{id}
func (r *Router) handleHistoryItem(w http.ResponseWriter, req *http.Request) error {
	rec, err := r.history.HandleShow(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, rec)
}

// DELETE /api/history
func (r *Router) handleClear(w http.ResponseWriter, req *http.Request) error {
	r.history.HandleClear(req.Context())
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	_ = writeJSON(w, status, map[string]string{"error": err.Error()})
}
