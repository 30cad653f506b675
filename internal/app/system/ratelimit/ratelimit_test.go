package ratelimit

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestMiddleware_AllowsThenRejectsSameKey(t *testing.T) {
	store := NewStore(0.02, 1)

	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = io.WriteString(w, "ok")
	})
	h := Middleware(store, nil, zap.NewNop())(next)

	r1 := httptest.NewRequest(http.MethodPost, "/applications", nil)
	r1.RemoteAddr = "10.0.0.1:1234"
	w1 := httptest.NewRecorder()
	h.ServeHTTP(w1, r1)
	if w1.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w1.Code)
	}

	r2 := httptest.NewRequest(http.MethodPost, "/applications", nil)
	r2.RemoteAddr = "10.0.0.1:5678"
	w2 := httptest.NewRecorder()
	h.ServeHTTP(w2, r2)
	if w2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w2.Code)
	}
	if got := w2.Header().Get("Retry-After"); got == "" {
		t.Fatal("expected Retry-After header to be set")
	}
	if calls != 1 {
		t.Errorf("next called %d times, want 1", calls)
	}

	// a different client has its own bucket
	r3 := httptest.NewRequest(http.MethodPost, "/applications", nil)
	r3.RemoteAddr = "10.0.0.2:1234"
	w3 := httptest.NewRecorder()
	h.ServeHTTP(w3, r3)
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200 for other key, got %d", w3.Code)
	}
}

func TestMiddleware_CustomKeyFunc(t *testing.T) {
	store := NewStore(0.02, 1)
	keyFn := func(r *http.Request) string { return r.Header.Get("X-Applicant") }
	h := Middleware(store, keyFn, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Applicant", "alice")
		req.RemoteAddr = "10.0.0.1:1"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Errorf("request %d: got %d, want %d", i, rec.Code, want)
		}
	}
}

func TestMiddleware_NilStorePassesThrough(t *testing.T) {
	h := Middleware(nil, nil, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: got %d", i, rec.Code)
		}
	}
}

func TestStore_SweepsIdleKeys(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewStore(1, 1,
		WithIdleTTL(time.Minute),
		WithCleanupEvery(30*time.Second),
		WithClock(func() time.Time { return now }),
	)

	store.Allow("a")
	store.Allow("b")
	if store.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", store.Len())
	}

	now = now.Add(2 * time.Minute)
	store.Allow("c")
	if store.Len() != 1 {
		t.Errorf("Len after sweep: got %d, want 1", store.Len())
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.10:4321"
	if got := ClientIP(req); got != "192.168.1.10" {
		t.Errorf("RemoteAddr: got %q", got)
	}

	req.RemoteAddr = "no-port"
	if got := ClientIP(req); got != "no-port" {
		t.Errorf("RemoteAddr without port: got %q", got)
	}

	req.Header.Set("X-Real-IP", "10.1.1.1")
	if got := ClientIP(req); got != "10.1.1.1" {
		t.Errorf("X-Real-IP: got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Errorf("X-Forwarded-For: got %q", got)
	}
}
