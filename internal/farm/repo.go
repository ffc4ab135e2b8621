package farm

import (
	"sync"

	"farmstead/internal/model"
)

// Repo is the interface for farm session storage.
type Repo interface {
	// Load returns the farm state for the given session ID.
	Load(farmID string) (*model.FarmState, error)

	// Save persists the farm state.
	Save(farmID string, state *model.FarmState) error
}

// MemoryRepo is an in-memory implementation of Repo. An unknown session ID
// gets a fresh farm from the factory on first Load.
type MemoryRepo struct {
	mu      sync.RWMutex
	farms   map[string]*model.FarmState
	factory func() *model.FarmState
}

// NewMemoryRepo creates a new in-memory farm repository.
func NewMemoryRepo(factory func() *model.FarmState) *MemoryRepo {
	return &MemoryRepo{
		farms:   make(map[string]*model.FarmState),
		factory: factory,
	}
}

// Load returns the farm state, creating a new session if it doesn't exist.
func (r *MemoryRepo) Load(farmID string) (*model.FarmState, error) {
	r.mu.RLock()
	state, exists := r.farms[farmID]
	r.mu.RUnlock()

	if exists {
		return state, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if state, exists = r.farms[farmID]; exists {
		return state, nil
	}

	state = r.factory()
	r.farms[farmID] = state
	return state, nil
}

// Save persists the farm state.
func (r *MemoryRepo) Save(farmID string, state *model.FarmState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.farms[farmID] = state
	return nil
}
