package hxtable

import "sync"

// Store holds a table's state.
//
// Update must apply u against the latest state and must not hold a stale
// copy between calls. Updaters passed to Update never call back into the
// store.
type Store interface {
	Get() State
	Update(u Updater[State])
}

// MemoryStore is the default Store: a mutex-guarded state cell owned by one
// table.
type MemoryStore struct {
	mu    sync.Mutex
	state State
}

// NewMemoryStore creates a store seeded with initial.
func NewMemoryStore(initial State) *MemoryStore {
	return &MemoryStore{state: initial}
}

// Get returns the current state.
func (s *MemoryStore) Get() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update replaces the state with u(current).
func (s *MemoryStore) Update(u Updater[State]) {
	if u == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = u(s.state)
}
