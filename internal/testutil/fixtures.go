package testutil

import (
	"testing"

	applicationstore "github.com/dalemusser/ayudahub/internal/app/store/applications"
	"github.com/dalemusser/ayudahub/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	reg *applicationstore.Registry
	t   *testing.T
}

// NewFixtures creates a new Fixtures instance seeding the given registry.
func NewFixtures(t *testing.T, reg *applicationstore.Registry) *Fixtures {
	t.Helper()
	return &Fixtures{reg: reg, t: t}
}

// Registry returns the underlying registry for direct access in tests.
func (f *Fixtures) Registry() *applicationstore.Registry {
	return f.reg
}

// CreateApplication adds a pending application for applicantID.
// An empty category means the application has none.
func (f *Fixtures) CreateApplication(applicantID, positionID, title, category string) models.Application {
	f.t.Helper()
	return f.reg.For(applicantID).Add(models.NewApplication{
		PositionID:    positionID,
		PositionTitle: title,
		Department:    "Departamento de Matemática",
		Section:       "1",
		Category:      models.OptionalCategory(category),
		Reason:        "Quiero apoyar el curso",
	})
}

// CreateCancelledApplication adds an application for applicantID and
// cancels it.
func (f *Fixtures) CreateCancelledApplication(applicantID, positionID, title, category string) models.Application {
	f.t.Helper()
	app := f.CreateApplication(applicantID, positionID, title, category)
	cancelled, ok := f.reg.For(applicantID).Cancel(app.ID)
	if !ok {
		f.t.Fatalf("cancel fixture %s: not found", app.ID)
	}
	return cancelled
}
