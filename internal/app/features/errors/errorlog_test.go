package errors_test

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/ayudahub/internal/app/features/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestServerError_LogsAndReplies500(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	errLog := uierrors.NewErrorLogger(zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/applications", nil)
	rec := httptest.NewRecorder()
	errLog.ServerError(rec, req, "render failed", stderrors.New("boom"), zap.String("applicant_id", "a1"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "render failed" {
		t.Errorf("message: got %q", entry.Message)
	}
	fields := entry.ContextMap()
	if fields["path"] != "/applications" {
		t.Errorf("path field: got %v", fields["path"])
	}
	if fields["applicant_id"] != "a1" {
		t.Errorf("applicant_id field: got %v", fields["applicant_id"])
	}
	if fields["error"] != "boom" {
		t.Errorf("error field: got %v", fields["error"])
	}
}
