// Package store provides the process-scoped name registries for companies,
// exchanges and traders, plus the append-only trade log. Registries are
// plain injected objects so tests can run against isolated instances.
package store

import (
	"sort"
	"sync"

	"github.com/efreitasn/minibourse/internal/domain"
)

// CompanyStore is a thread-safe in-memory registry of companies,
// keyed by unique name.
type CompanyStore struct {
	mu        sync.RWMutex
	companies map[string]*domain.Company
}

// NewCompanyStore creates an empty CompanyStore.
func NewCompanyStore() *CompanyStore {
	return &CompanyStore{
		companies: make(map[string]*domain.Company),
	}
}

// Create adds a company to the registry. It returns domain.ErrNameInUse
// if the name is already taken.
func (s *CompanyStore) Create(c *domain.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.companies[c.Name]; exists {
		return domain.ErrNameInUse
	}
	s.companies[c.Name] = c
	return nil
}

// Get retrieves a company by name. It returns domain.ErrCompanyNotFound
// if the company does not exist.
func (s *CompanyStore) Get(name string) (*domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.companies[name]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	return c, nil
}

// Exists returns true if a company with the given name exists.
func (s *CompanyStore) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.companies[name]
	return ok
}

// List returns all companies in ascending name order.
func (s *CompanyStore) List() []*domain.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Company, 0, len(s.companies))
	for _, c := range s.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
