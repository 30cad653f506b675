package applicationstore

import "sync"

// Registry hands out one Store per applicant. It is created together with
// the HTTP handler tree and lives as long as it does.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
	opts   []Option
}

// NewRegistry constructs an empty Registry. opts are applied to every Store
// it creates.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		stores: make(map[string]*Store),
		opts:   opts,
	}
}

// For returns the Store for applicantID, creating it on first use.
func (g *Registry) For(applicantID string) *Store {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.stores[applicantID]
	if !ok {
		s = New(g.opts...)
		g.stores[applicantID] = s
	}
	return s
}

// Lookup returns the Store for applicantID without creating one.
func (g *Registry) Lookup(applicantID string) (*Store, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.stores[applicantID]
	return s, ok
}

// Len returns the number of applicants with a Store.
func (g *Registry) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.stores)
}
