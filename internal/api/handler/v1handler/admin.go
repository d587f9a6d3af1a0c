package v1handler

import (
	"encoding/json"
	"net/http"

	"avconsole/pkg/domain"
	"avconsole/pkg/serrors"
)

// requireAdmin checks that the calling user exists and is an admin.
func (h *Handler) requireAdmin(r *http.Request) error {
	user, err := h.deps.Registry.User(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return serrors.With(serrors.ErrForbidden, "admin access required")
	}

	return nil
}

// AdminStats returns the aggregate snapshot across all users.
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	if err := h.requireAdmin(r); err != nil {
		respondError(w, r, err)

		return
	}

	stats, err := h.deps.Registry.Stats(r.Context())
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// AdminScans returns recent scans across all users.
func (h *Handler) AdminScans(w http.ResponseWriter, r *http.Request) {
	if err := h.requireAdmin(r); err != nil {
		respondError(w, r, err)

		return
	}

	views, err := h.deps.Simulator.RecentScans(r.Context(), limitParam(r))
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, views)
}

// AdminUsers lists known accounts.
func (h *Handler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	if err := h.requireAdmin(r); err != nil {
		respondError(w, r, err)

		return
	}

	users, err := h.deps.Registry.Users(r.Context(), limitParam(r))
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, users)
}

type createThreatsRequest struct {
	Count  int           `json:"count"`
	UserID domain.UserID `json:"userId"`
}

// AdminCreateThreats seeds synthetic threats, optionally attributed to a
// user.
func (h *Handler) AdminCreateThreats(w http.ResponseWriter, r *http.Request) {
	if err := h.requireAdmin(r); err != nil {
		respondError(w, r, err)

		return
	}

	var req createThreatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	threats, err := h.deps.Registry.CreateRandomThreats(r.Context(), req.Count, req.UserID)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusCreated, threats)
}
