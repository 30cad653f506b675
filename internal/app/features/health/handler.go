package health

import (
	"encoding/json"
	"net/http"

	applicationstore "github.com/dalemusser/ayudahub/internal/app/store/applications"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Registry *applicationstore.Registry
	Log      *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(reg *applicationstore.Registry, logger *zap.Logger) *Handler {
	return &Handler{
		Registry: reg,
		Log:      logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status     string `json:"status"`
	Applicants int    `json:"applicants"`
}

// Serve handles GET /health.
//
//	{ "status":"ok", "applicants":3 }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{Status: "ok"}
	if h.Registry != nil {
		resp.Applicants = h.Registry.Len()
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Error("health-check: encode failed", zap.Error(err))
	}
}
