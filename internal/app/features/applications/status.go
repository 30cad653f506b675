package applications

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ServePositionStatus reports whether the visitor holds a pending
// application to a position and under which categories.
//
// Route: GET /applications/positions/{positionID}[?category=...]
//
//	{ "position_id":"p1", "applied":true, "categories":["math"] }
func (h *Handler) ServePositionStatus(w http.ResponseWriter, r *http.Request) {
	store, _, ok := h.viewStoreFor(w, r)
	if !ok {
		return
	}

	positionID := chi.URLParam(r, "positionID")
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	resp := positionStatus{
		PositionID: positionID,
		Category:   category,
		Applied:    store.HasApplied(positionID, category),
		Categories: store.AppliedCategories(positionID),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.ErrLog.LogError(r, "encode position status failed", err)
	}
}
