// internal/app/features/applications/new.go
package applications

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/ayudahub/internal/domain/models"
	"go.uber.org/zap"
)

// ServeNew renders the apply form, prefilled from the query string, and
// tells the visitor which categories of the position they already hold.
//
// Route: GET /applications/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	store, _, ok := h.viewStoreFor(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	data := newData{
		Title:         "Postular",
		Flash:         h.flashes(w, r),
		PositionID:    strings.TrimSpace(q.Get("position_id")),
		PositionTitle: strings.TrimSpace(q.Get("title")),
		Department:    strings.TrimSpace(q.Get("department")),
		Section:       strings.TrimSpace(q.Get("section")),
		Category:      strings.TrimSpace(q.Get("category")),
	}
	if data.PositionID != "" {
		data.AlreadyApplied = store.HasApplied(data.PositionID, data.Category)
		data.AppliedCategories = titleCategories(store.AppliedCategories(data.PositionID))
	}

	h.Render(w, r, "applications_new", data)
}

// HandleCreate records a new pending application and returns to the list.
// Input is taken as submitted.
//
// Route: POST /applications
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	store, applicantID, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogError(r, "parse apply form failed", err, zap.String("applicant_id", applicantID))
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	app := store.Add(models.NewApplication{
		PositionID:    strings.TrimSpace(r.PostFormValue("position_id")),
		PositionTitle: strings.TrimSpace(r.PostFormValue("position_title")),
		Department:    strings.TrimSpace(r.PostFormValue("department")),
		Section:       strings.TrimSpace(r.PostFormValue("section")),
		Category:      models.OptionalCategory(strings.TrimSpace(r.PostFormValue("category"))),
		Reason:        strings.TrimSpace(r.PostFormValue("reason")),
	})

	h.Log.Info("application submitted",
		zap.String("applicant_id", applicantID),
		zap.String("application_id", app.ID),
		zap.String("position_id", app.PositionID))

	h.flash(w, r, fmt.Sprintf("Postulación a %s enviada", app.PositionTitle))
	http.Redirect(w, r, "/applications", http.StatusSeeOther)
}
