package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/dalemusser/ayudahub/internal/app/system/session"
	"github.com/go-chi/chi/v5"
)

// WithApplicant puts an applicant id in the request context for testing
// handlers. This bypasses session.LoadApplicant.
func WithApplicant(r *http.Request, applicantID string) *http.Request {
	return r.WithContext(session.WithApplicant(r.Context(), applicantID))
}

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}
