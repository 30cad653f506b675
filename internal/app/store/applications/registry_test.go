package applicationstore_test

import (
	"sync"
	"testing"

	applicationstore "github.com/dalemusser/ayudahub/internal/app/store/applications"
	"github.com/dalemusser/ayudahub/internal/domain/models"
)

func TestRegistry_SameApplicantSameStore(t *testing.T) {
	reg := applicationstore.NewRegistry()

	a := reg.For("alice")
	if a != reg.For("alice") {
		t.Error("For returned a different store for the same applicant")
	}
	if reg.Len() != 1 {
		t.Errorf("Len: got %d, want 1", reg.Len())
	}
}

func TestRegistry_LookupDoesNotCreate(t *testing.T) {
	reg := applicationstore.NewRegistry()

	if _, ok := reg.Lookup("alice"); ok {
		t.Error("Lookup found a store that was never created")
	}
	if reg.Len() != 0 {
		t.Errorf("Len after Lookup: got %d, want 0", reg.Len())
	}

	a := reg.For("alice")
	got, ok := reg.Lookup("alice")
	if !ok || got != a {
		t.Error("Lookup should return the store created by For")
	}
}

func TestRegistry_ApplicantsAreIsolated(t *testing.T) {
	reg := applicationstore.NewRegistry()

	reg.For("alice").Add(models.NewApplication{PositionID: "p1"})

	if reg.For("bob").HasApplied("p1", "") {
		t.Error("bob sees alice's application")
	}
	if reg.Len() != 2 {
		t.Errorf("Len: got %d, want 2", reg.Len())
	}
}

func TestRegistry_ConcurrentFor(t *testing.T) {
	reg := applicationstore.NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.For("alice").Add(models.NewApplication{PositionID: "p1"})
		}()
	}
	wg.Wait()

	if got := reg.For("alice").PendingCount(); got != 20 {
		t.Errorf("PendingCount: got %d, want 20", got)
	}
}
