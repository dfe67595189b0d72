package store

import (
	"sort"
	"sync"

	"github.com/efreitasn/minibourse/internal/domain"
)

// ExchangeStore is a thread-safe in-memory registry of exchanges,
// keyed by unique name.
type ExchangeStore struct {
	mu        sync.RWMutex
	exchanges map[string]*domain.Exchange
}

// NewExchangeStore creates an empty ExchangeStore.
func NewExchangeStore() *ExchangeStore {
	return &ExchangeStore{
		exchanges: make(map[string]*domain.Exchange),
	}
}

// Create adds an exchange to the registry. It returns domain.ErrNameInUse
// if the name is already taken.
func (s *ExchangeStore) Create(x *domain.Exchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.exchanges[x.Name]; exists {
		return domain.ErrNameInUse
	}
	s.exchanges[x.Name] = x
	return nil
}

// Get retrieves an exchange by name. It returns domain.ErrExchangeNotFound
// if the exchange does not exist.
func (s *ExchangeStore) Get(name string) (*domain.Exchange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	x, ok := s.exchanges[name]
	if !ok {
		return nil, domain.ErrExchangeNotFound
	}
	return x, nil
}

// Exists returns true if an exchange with the given name exists.
func (s *ExchangeStore) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.exchanges[name]
	return ok
}

// List returns all exchanges in ascending name order.
func (s *ExchangeStore) List() []*domain.Exchange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Exchange, 0, len(s.exchanges))
	for _, x := range s.exchanges {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
