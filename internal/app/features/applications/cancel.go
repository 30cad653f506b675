// internal/app/features/applications/cancel.go
package applications

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleCancel cancels an application and redirects back to the list.
// An unknown id is ignored: no error and no notification.
//
// Route: POST /applications/{id}/cancel
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	store, applicantID, ok := h.viewStoreFor(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	app, found := store.Cancel(id)
	if found {
		h.Log.Info("application cancelled",
			zap.String("applicant_id", applicantID),
			zap.String("application_id", id))
		h.flash(w, r, fmt.Sprintf("Postulación a %s cancelada", app.PositionTitle))
	} else {
		h.Log.Debug("cancel: no application found (ignored)",
			zap.String("applicant_id", applicantID),
			zap.String("application_id", id))
	}

	http.Redirect(w, r, "/applications", http.StatusSeeOther)
}
