// internal/app/features/applications/routes.go
package applications

import (
	"github.com/dalemusser/ayudahub/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// Routes returns the applications subrouter (mounted under /applications).
// Form submissions are throttled per client IP by limiter; nil disables it.
// Applicant ids are minted for any cookieless request, so they cannot key
// the limiter. The router expects session.LoadApplicant to run upstream.
func Routes(h *Handler, limiter *ratelimit.Store) chi.Router {
	r := chi.NewRouter()
	limit := ratelimit.Middleware(limiter, ratelimit.ClientIP, h.Log)

	r.Get("/", h.ServeList)
	r.Get("/new", h.ServeNew)
	r.Get("/positions/{positionID}", h.ServePositionStatus)

	r.With(limit).Post("/", h.HandleCreate)
	r.With(limit).Post("/{id}/cancel", h.HandleCancel)
	return r
}
