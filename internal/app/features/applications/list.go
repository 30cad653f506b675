// internal/app/features/applications/list.go
package applications

import (
	"net/http"

	"github.com/dalemusser/ayudahub/internal/domain/models"
)

// ServeList renders the visitor's pending applications.
//
// Route: GET /applications
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	store, _, ok := h.viewStoreFor(w, r)
	if !ok {
		return
	}

	pending := store.Pending()
	data := listData{
		Title:      "Mis Postulaciones",
		Flash:      h.flashes(w, r),
		Count:      len(pending),
		CountLabel: countLabel(len(pending)),
		Items:      make([]cardVM, 0, len(pending)),
	}
	for _, app := range pending {
		data.Items = append(data.Items, h.card(app))
	}

	h.Render(w, r, "applications_list", data)
}

func (h *Handler) card(app models.Application) cardVM {
	vm := cardVM{
		ID:            app.ID,
		PositionTitle: app.PositionTitle,
		Department:    app.Department,
		SubmittedOn:   formatSubmitted(app.SubmittedAt, h.Location),
		Section:       app.Section,
		ReasonExcerpt: excerpt(app.Reason, h.ExcerptLen),
	}
	if app.Category != nil {
		vm.HasCategory = true
		vm.Category = titleCategory(*app.Category)
	}
	return vm
}
