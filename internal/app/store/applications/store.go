// internal/app/store/applications/store.go
package applicationstore

import (
	"sync"
	"time"

	"github.com/dalemusser/ayudahub/internal/domain/models"
	"github.com/google/uuid"
)

// Store holds one visitor's applications in memory, in insertion order.
// Records are never removed; cancelling only changes their status.
type Store struct {
	mu    sync.RWMutex
	apps  []models.Application
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for SubmittedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides the application id generator.
func WithIDFunc(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New constructs an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new pending application and returns it.
// No validation is performed on the supplied fields.
func (s *Store) Add(data models.NewApplication) models.Application {
	app := models.Application{
		ID:            s.newID(),
		PositionID:    data.PositionID,
		PositionTitle: data.PositionTitle,
		Department:    data.Department,
		Section:       data.Section,
		Category:      copyCategory(data.Category),
		Reason:        data.Reason,
		SubmittedAt:   s.now(),
		Status:        models.ApplicationPending,
	}

	s.mu.Lock()
	s.apps = append(s.apps, app)
	s.mu.Unlock()

	return clone(app)
}

// Cancel marks the application with the given id as cancelled.
// Unknown ids are ignored; ok reports whether a record was found.
func (s *Store) Cancel(id string) (app models.Application, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.apps {
		if s.apps[i].ID == id {
			s.apps[i].Status = models.ApplicationCancelled
			return clone(s.apps[i]), true
		}
	}
	return models.Application{}, false
}

// Get returns the application with the given id.
func (s *Store) Get(id string) (models.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.apps {
		if a.ID == id {
			return clone(a), true
		}
	}
	return models.Application{}, false
}

// All returns every application, cancelled ones included.
func (s *Store) All() []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Application, 0, len(s.apps))
	for _, a := range s.apps {
		out = append(out, clone(a))
	}
	return out
}

// Pending returns the pending applications in insertion order.
func (s *Store) Pending() []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Application, 0, len(s.apps))
	for _, a := range s.apps {
		if a.IsPending() {
			out = append(out, clone(a))
		}
	}
	return out
}

// PendingCount returns the number of pending applications.
func (s *Store) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, a := range s.apps {
		if a.IsPending() {
			n++
		}
	}
	return n
}

// AppliedCategories returns the categories of the pending applications to
// positionID. Applications without a category are skipped; duplicates are kept.
func (s *Store) AppliedCategories(positionID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cats := []string{}
	for _, a := range s.apps {
		if a.PositionID != positionID || !a.IsPending() || a.Category == nil {
			continue
		}
		cats = append(cats, *a.Category)
	}
	return cats
}

// HasApplied reports whether a pending application to positionID exists.
// A non-empty category must match as well.
func (s *Store) HasApplied(positionID, category string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.apps {
		if a.PositionID != positionID || !a.IsPending() {
			continue
		}
		if category == "" || a.CategoryValue() == category {
			return true
		}
	}
	return false
}

func clone(a models.Application) models.Application {
	a.Category = copyCategory(a.Category)
	return a
}

func copyCategory(c *string) *string {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
