package v1handler

import (
	"net/http"
	"strconv"

	"avconsole/pkg/domain"
	"avconsole/pkg/serrors"
	"avconsole/pkg/storage"
)

// ListThreats returns the calling user's threats, newest first. Supports
// ?cleaned=true|false and ?type= filters.
func (h *Handler) ListThreats(w http.ResponseWriter, r *http.Request) {
	filter := storage.ThreatFilter{
		OwnerID: GetUserIDFromContext(r.Context()),
		Type:    domain.ThreatType(r.URL.Query().Get("type")),
	}
	if raw := r.URL.Query().Get("cleaned"); raw != "" {
		cleaned, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cleaned parameter"))

			return
		}
		filter.Cleaned = &cleaned
	}

	threats, err := h.deps.Registry.Threats(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, threats)
}

// CleanThreat marks one of the calling user's threats cleaned. The operation
// is idempotent: repeating it returns the same record with 200.
func (h *Handler) CleanThreat(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseThreatID(r.PathValue("id"))
	if err != nil {
		respondError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid threat id"))

		return
	}

	threat, err := h.deps.Registry.Threat(r.Context(), id)
	if err != nil {
		respondError(w, r, err)

		return
	}
	if threat.OwnerID != GetUserIDFromContext(r.Context()) {
		respondError(w, r, serrors.With(serrors.ErrNotFound, "threat %s not found", id))

		return
	}

	cleaned, err := h.deps.Registry.CleanThreat(r.Context(), id)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, cleaned)
}
