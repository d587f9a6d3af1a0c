package v1handler

import (
	"encoding/json"
	"net/http"

	"avconsole/internal/simulator"
	"avconsole/pkg/domain"
	"avconsole/pkg/serrors"
)

type createScanRequest struct {
	Type domain.ScanType `json:"type"`
}

// CreateScan starts a new scan for the calling user.
func (h *Handler) CreateScan(w http.ResponseWriter, r *http.Request) {
	var req createScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	view, err := h.deps.Simulator.StartScan(r.Context(), req.Type, GetUserIDFromContext(r.Context()))
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusCreated, view)
}

// ownedScan loads a scan view and hides records owned by other users. Foreign
// scans read as not found so the route does not leak their existence.
func (h *Handler) ownedScan(r *http.Request) (*simulator.ScanView, error) {
	id, err := domain.ParseScanID(r.PathValue("id"))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scan id")
	}

	view, err := h.deps.Simulator.ScanStatus(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if view.OwnerID != GetUserIDFromContext(r.Context()) {
		return nil, serrors.With(serrors.ErrNotFound, "scan %s not found", id)
	}

	return view, nil
}

// GetScan returns one scan with derived status and progress.
func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	view, err := h.ownedScan(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, view)
}

// ListScans returns the calling user's scans, most recent first.
func (h *Handler) ListScans(w http.ResponseWriter, r *http.Request) {
	views, err := h.deps.Simulator.OwnerScans(r.Context(),
		GetUserIDFromContext(r.Context()), limitParam(r))
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, views)
}

// DeleteScan removes one of the calling user's scans.
func (h *Handler) DeleteScan(w http.ResponseWriter, r *http.Request) {
	view, err := h.ownedScan(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	if err := h.deps.Simulator.DeleteScan(r.Context(), view.ID); err != nil {
		respondError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
