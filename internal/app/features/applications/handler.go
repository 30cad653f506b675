// internal/app/features/applications/handler.go
package applications

import (
	"net/http"
	"time"

	uierrors "github.com/dalemusser/ayudahub/internal/app/features/errors"
	applicationstore "github.com/dalemusser/ayudahub/internal/app/store/applications"
	"github.com/dalemusser/ayudahub/internal/app/system/session"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// RenderFunc renders the named template with data.
type RenderFunc func(w http.ResponseWriter, r *http.Request, name string, data any)

// Handler owns the applications pages: the pending list, the apply form,
// cancellation and the per-position status endpoint.
type Handler struct {
	Registry   *applicationstore.Registry
	Sessions   *session.Manager
	Render     RenderFunc
	ExcerptLen int
	Location   *time.Location
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

// NewHandler constructs an applications Handler rendering through the
// WAFFLE template engine.
func NewHandler(reg *applicationstore.Registry, sessMgr *session.Manager, excerptLen int, loc *time.Location, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		Registry: reg,
		Sessions: sessMgr,
		Render: func(w http.ResponseWriter, r *http.Request, name string, data any) {
			templates.Render(w, r, name, data)
		},
		ExcerptLen: excerptLen,
		Location:   loc,
		Log:        logger,
		ErrLog:     errLog,
	}
}

// storeFor resolves the visitor's store, creating it on first use. It writes
// a 500 and returns false when the request did not pass through
// session.LoadApplicant. Only handlers that add records call it.
func (h *Handler) storeFor(w http.ResponseWriter, r *http.Request) (*applicationstore.Store, string, bool) {
	id, ok := session.ApplicantID(r)
	if !ok {
		h.ErrLog.ServerError(w, r, "applications: no applicant in request context", nil)
		return nil, "", false
	}
	return h.Registry.For(id), id, true
}

// viewStoreFor is storeFor for handlers that never add records. A visitor
// without a Store gets an empty, unregistered one.
func (h *Handler) viewStoreFor(w http.ResponseWriter, r *http.Request) (*applicationstore.Store, string, bool) {
	id, ok := session.ApplicantID(r)
	if !ok {
		h.ErrLog.ServerError(w, r, "applications: no applicant in request context", nil)
		return nil, "", false
	}
	if s, found := h.Registry.Lookup(id); found {
		return s, id, true
	}
	return applicationstore.New(), id, true
}

// flashes pops pending flash messages. Failures only cost the notification.
func (h *Handler) flashes(w http.ResponseWriter, r *http.Request) []string {
	msgs, err := h.Sessions.Flashes(w, r)
	if err != nil {
		h.ErrLog.LogError(r, "read flashes failed", err)
	}
	return msgs
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, msg string) {
	if err := h.Sessions.AddFlash(w, r, msg); err != nil {
		h.ErrLog.LogError(r, "save flash failed", err)
	}
}
