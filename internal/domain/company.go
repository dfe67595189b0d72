package domain

import (
	"sort"
	"sync"
)

// Company represents a share-issuing company. A company appears in its
// exchange set iff the exchange carries a listing for it; the List
// transaction keeps the two sides consistent.
type Company struct {
	Name string

	mu        sync.RWMutex
	exchanges map[string]*Exchange // exchange name → exchange
}

// NewCompany creates a company with the given name and no listings.
// Name uniqueness is enforced by the store layer.
func NewCompany(name string) *Company {
	return &Company{
		Name:      name,
		exchanges: make(map[string]*Exchange),
	}
}

// Exchanges returns the names of the exchanges this company is listed on,
// in ascending order.
func (c *Company) Exchanges() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.exchanges))
	for name := range c.exchanges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsListedOn returns true if this company is listed on the named exchange.
func (c *Company) IsListedOn(exchange string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.exchanges[exchange]
	return ok
}

// List issues totalIssued shares at unitPrice on the given exchange. The
// company-side relation is registered first, then the exchange creates the
// authoritative Listing; if exchange-side creation fails the relation is
// rolled back so no dangling entry remains.
func (c *Company) List(x *Exchange, totalIssued, unitPrice int64) (*Listing, error) {
	if x == nil {
		return nil, &ValidationError{Message: "exchange must not be nil"}
	}
	if totalIssued <= 0 || unitPrice <= 0 {
		return nil, &ValidationError{Message: "quantity and unit price must be > 0"}
	}

	c.mu.Lock()
	if _, ok := c.exchanges[x.Name]; ok {
		c.mu.Unlock()
		return nil, ErrAlreadyListed
	}
	c.exchanges[x.Name] = x
	c.mu.Unlock()

	l, err := x.createListing(c, unitPrice, totalIssued)
	if err != nil {
		c.mu.Lock()
		delete(c.exchanges, x.Name)
		c.mu.Unlock()
		return nil, err
	}
	return l, nil
}
