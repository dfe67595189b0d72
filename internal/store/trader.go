package store

import (
	"sort"
	"sync"

	"github.com/efreitasn/minibourse/internal/domain"
)

// TraderStore is a thread-safe in-memory registry of traders,
// keyed by unique name.
type TraderStore struct {
	mu      sync.RWMutex
	traders map[string]*domain.Trader
}

// NewTraderStore creates an empty TraderStore.
func NewTraderStore() *TraderStore {
	return &TraderStore{
		traders: make(map[string]*domain.Trader),
	}
}

// Create adds a trader to the registry. It returns domain.ErrNameInUse
// if the name is already taken.
func (s *TraderStore) Create(t *domain.Trader) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.traders[t.Name]; exists {
		return domain.ErrNameInUse
	}
	s.traders[t.Name] = t
	return nil
}

// Get retrieves a trader by name. It returns domain.ErrTraderNotFound
// if the trader does not exist.
func (s *TraderStore) Get(name string) (*domain.Trader, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.traders[name]
	if !ok {
		return nil, domain.ErrTraderNotFound
	}
	return t, nil
}

// Exists returns true if a trader with the given name exists.
func (s *TraderStore) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.traders[name]
	return ok
}

// List returns all traders in ascending name order.
func (s *TraderStore) List() []*domain.Trader {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Trader, 0, len(s.traders))
	for _, t := range s.traders {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
