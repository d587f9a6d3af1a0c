// Package v1handler implements the v1 JSON API: scan lifecycle routes for
// authenticated users, threat registry routes, and the admin surface.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"avconsole/internal/registry"
	"avconsole/internal/simulator"
	"avconsole/pkg/logger"
	"avconsole/pkg/serrors"
)

// DefaultLimit is the page size used when the client does not pass ?limit=.
const DefaultLimit = 20

// MaxLimit caps ?limit= to keep list responses bounded.
const MaxLimit = 100

// Deps carries the downstream services the handlers call into.
type Deps struct {
	Simulator simulator.Simulator
	Registry  registry.Registry
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts all v1 routes on mux. Authentication is applied by the
// server around the whole mux, so every route here can assume a user ID in
// the context.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/scans", h.CreateScan)
	mux.HandleFunc("GET /v1/scans", h.ListScans)
	mux.HandleFunc("GET /v1/scans/{id}", h.GetScan)
	mux.HandleFunc("DELETE /v1/scans/{id}", h.DeleteScan)

	mux.HandleFunc("GET /v1/threats", h.ListThreats)
	mux.HandleFunc("POST /v1/threats/{id}/clean", h.CleanThreat)

	mux.HandleFunc("GET /v1/admin/stats", h.AdminStats)
	mux.HandleFunc("GET /v1/admin/scans", h.AdminScans)
	mux.HandleFunc("GET /v1/admin/users", h.AdminUsers)
	mux.HandleFunc("POST /v1/admin/threats", h.AdminCreateThreats)
}

// errorResponse is the uniform error payload.
type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps semantic error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
	} else {
		logger.Debug(r.Context(), "request rejected", zap.Error(err))
	}

	msg := http.StatusText(status)
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" && status < http.StatusInternalServerError {
		msg = serr.Message()
	}

	respondJSON(w, status, errorResponse{Error: msg})
}

// limitParam parses ?limit=, applying the default and the cap.
func limitParam(r *http.Request) uint {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultLimit
	}

	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || limit == 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}

	return uint(limit)
}
