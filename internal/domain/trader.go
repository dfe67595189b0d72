package domain

import (
	"sync"

	"github.com/google/btree"
)

// Position is a single entry of a trader's holdings cache: one listing and
// the cached quantity held.
type Position struct {
	Listing  *Listing
	Quantity int64
}

// positionLess orders positions by (exchange name, company name), the order
// the reporting surface relies on.
func positionLess(a, b Position) bool {
	if a.Listing.ExchangeName != b.Listing.ExchangeName {
		return a.Listing.ExchangeName < b.Listing.ExchangeName
	}
	return a.Listing.Company.Name < b.Listing.Company.Name
}

// Trader holds a cash budget and a read-through cache of its holdings. The
// cache is a projection of the exchanges' ownership ledgers: it is rebuilt
// by resync after every trade and never written directly by client code.
type Trader struct {
	Name string

	mu        sync.Mutex
	budget    int64
	positions *btree.BTreeG[Position]
}

// NewTrader creates a trader with a zero budget and an empty holdings cache.
// Name uniqueness is enforced by the store layer.
func NewTrader(name string) *Trader {
	const degree = 32
	return &Trader{
		Name:      name,
		positions: btree.NewG[Position](degree, positionLess),
	}
}

// Budget returns the trader's current cash budget.
func (t *Trader) Budget() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.budget
}

// Deposit adds amount to the budget.
func (t *Trader) Deposit(amount int64) error {
	if amount <= 0 {
		return &ValidationError{Message: "deposit amount must be > 0"}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.budget += amount
	return nil
}

// Withdraw removes amount from the budget.
func (t *Trader) Withdraw(amount int64) error {
	if amount <= 0 {
		return &ValidationError{Message: "withdrawal amount must be > 0"}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if amount > t.budget {
		return &ValidationError{Message: "withdrawal amount exceeds budget"}
	}
	t.budget -= amount
	return nil
}

// HeldQuantity returns the cached quantity held of the given listing.
// It returns ErrNoHoldings if the trader holds none.
func (t *Trader) HeldQuantity(l *Listing) (int64, error) {
	if l == nil {
		return 0, &ValidationError{Message: "listing must not be nil"}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.positions.Get(Position{Listing: l})
	if !ok {
		return 0, ErrNoHoldings
	}
	return p.Quantity, nil
}

// Positions returns the holdings cache entries in ascending
// (exchange name, company name) order.
func (t *Trader) Positions() []Position {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Position, 0, t.positions.Len())
	t.positions.Ascend(func(p Position) bool {
		out = append(out, p)
		return true
	})
	return out
}

// HoldingsValue returns the total value of all cached holdings at each
// listing's live current price.
func (t *Trader) HoldingsValue() int64 {
	// Snapshot the cache first: listing prices are read outside t.mu to
	// keep the listing-before-trader lock order used by the exchange.
	positions := t.Positions()

	var total int64
	for _, p := range positions {
		total += p.Quantity * p.Listing.UnitPrice()
	}
	return total
}

// resync refreshes the holdings cache against the exchange's authoritative
// ledger: for every listing on the exchange the cached entry is overwritten
// with the ledger quantity, or removed when the trader holds none. It is
// idempotent and never mutates the exchange's ledger.
func (t *Trader) resync(x *Exchange) {
	for _, l := range x.Listings() {
		qty := l.HeldBy(t.Name)

		t.mu.Lock()
		if qty > 0 {
			t.positions.ReplaceOrInsert(Position{Listing: l, Quantity: qty})
		} else {
			t.positions.Delete(Position{Listing: l})
		}
		t.mu.Unlock()
	}
}
