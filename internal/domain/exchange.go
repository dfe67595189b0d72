package domain

import (
	"sort"
	"sync"
	"time"

	"github.com/google/btree"
	"github.com/google/uuid"
)

// listingLess orders listings by company name. Within one exchange the
// exchange name is constant, so this is the (exchange, company) order the
// reporting surface relies on.
func listingLess(a, b *Listing) bool {
	return a.Company.Name < b.Company.Name
}

// Exchange owns the authoritative share ledger: every listing created on it,
// the set of traders that have ever traded here, and the optional pricing
// policy applied after each trade. Listings are kept in a B-tree ordered by
// company name with a secondary by-name index for O(log n) lookup.
type Exchange struct {
	Name string

	mu        sync.RWMutex
	listings  *btree.BTreeG[*Listing]
	byCompany map[string]*Listing // company name → listing
	traders   map[string]*Trader
	policy    PricingPolicy
}

// NewExchange creates an exchange with no listings and no pricing policy.
// Name uniqueness is enforced by the store layer.
func NewExchange(name string) *Exchange {
	const degree = 32
	return &Exchange{
		Name:      name,
		listings:  btree.NewG[*Listing](degree, listingLess),
		byCompany: make(map[string]*Listing),
		traders:   make(map[string]*Trader),
	}
}

// SetPricingPolicy replaces the exchange's pricing policy. A nil policy
// clears it, in which case trades leave unit prices unchanged.
func (x *Exchange) SetPricingPolicy(p PricingPolicy) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.policy = p
}

// PricingPolicy returns the current pricing policy, or nil if unset.
func (x *Exchange) PricingPolicy() PricingPolicy {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.policy
}

// createListing registers a new listing for the company. It is invoked only
// through Company.List, which records the company-side relation first; a
// missing relation here means the caller bypassed that flow.
func (x *Exchange) createListing(c *Company, unitPrice, totalIssued int64) (*Listing, error) {
	if c == nil {
		return nil, &ValidationError{Message: "company must not be nil"}
	}
	if totalIssued <= 0 || unitPrice <= 0 {
		return nil, &ValidationError{Message: "quantity and unit price must be > 0"}
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if _, ok := x.byCompany[c.Name]; ok {
		return nil, ErrAlreadyListed
	}
	if !c.IsListedOn(x.Name) {
		return nil, ErrInvariantViolation
	}

	l := newListing(x.Name, c, unitPrice, totalIssued)
	x.listings.ReplaceOrInsert(l)
	x.byCompany[c.Name] = l
	return l, nil
}

// FindListing looks up the listing for the named company.
func (x *Exchange) FindListing(company string) (*Listing, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	l, ok := x.byCompany[company]
	if !ok {
		return nil, ErrListingNotFound
	}
	return l, nil
}

// Listings returns all listings in ascending company-name order.
func (x *Exchange) Listings() []*Listing {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make([]*Listing, 0, x.listings.Len())
	x.listings.Ascend(func(l *Listing) bool {
		out = append(out, l)
		return true
	})
	return out
}

// Traders returns the traders that have traded on this exchange,
// in ascending name order.
func (x *Exchange) Traders() []*Trader {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make([]*Trader, 0, len(x.traders))
	for _, t := range x.traders {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (x *Exchange) registerTrader(t *Trader) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.traders[t.Name] = t
}

// Buy executes a purchase of the company's shares on behalf of the trader,
// spending at most cashToSpend. The share count is cashToSpend divided by
// the unit price (integer division); the remainder is not charged and stays
// in the trader's budget. The pricing policy, if set, receives the executed
// share count and its result replaces the unit price. The trader's holdings
// cache is resynchronized before returning.
//
// The policy result is computed and validated before any state is mutated,
// so a failed buy leaves budget, ledger and price untouched.
func (x *Exchange) Buy(t *Trader, c *Company, cashToSpend int64) (*Trade, error) {
	if t == nil || c == nil {
		return nil, &ValidationError{Message: "trader and company must not be nil"}
	}
	l, err := x.FindListing(c.Name)
	if err != nil {
		return nil, err
	}
	policy := x.PricingPolicy()

	l.mu.Lock()
	t.mu.Lock()

	if cashToSpend > t.budget {
		t.mu.Unlock()
		l.mu.Unlock()
		return nil, ErrInsufficientFunds
	}
	if cashToSpend < l.unitPrice {
		t.mu.Unlock()
		l.mu.Unlock()
		return nil, ErrInsufficientFunds
	}
	shares := cashToSpend / l.unitPrice
	if shares > l.availableLocked() {
		t.mu.Unlock()
		l.mu.Unlock()
		return nil, ErrInsufficientSupply
	}

	newPrice := l.unitPrice
	if policy != nil {
		newPrice = policy.OnBuy(l.quoteLocked(), shares)
		if newPrice < 1 {
			t.mu.Unlock()
			l.mu.Unlock()
			return nil, ErrInvariantViolation
		}
	}

	execPrice := l.unitPrice
	cost := shares * execPrice
	t.budget -= cost
	l.holdings[t.Name] += shares
	l.unitPrice = newPrice

	t.mu.Unlock()
	l.mu.Unlock()

	x.registerTrader(t)
	t.resync(x)

	return &Trade{
		TradeID:    uuid.New().String(),
		Exchange:   x.Name,
		Company:    c.Name,
		Trader:     t.Name,
		Side:       TradeSideBuy,
		Quantity:   shares,
		UnitPrice:  execPrice,
		Total:      cost,
		ExecutedAt: time.Now(),
	}, nil
}

// Sell executes a sale of the given quantity of the listing's shares on
// behalf of the trader. The trader is credited quantity × unit price at the
// current, pre-adjustment price; the ledger entry is removed entirely when
// it reaches zero. The pricing policy, if set, receives the sold quantity.
// The trader's holdings cache is resynchronized before returning.
func (x *Exchange) Sell(t *Trader, l *Listing, quantity int64) (*Trade, error) {
	if t == nil || l == nil {
		return nil, &ValidationError{Message: "trader and listing must not be nil"}
	}
	if quantity <= 0 {
		return nil, &ValidationError{Message: "quantity must be > 0"}
	}

	// The listing must be this exchange's own.
	x.mu.RLock()
	owned, ok := x.byCompany[l.Company.Name]
	x.mu.RUnlock()
	if !ok || owned != l {
		return nil, ErrListingNotFound
	}
	policy := x.PricingPolicy()

	l.mu.Lock()
	t.mu.Lock()

	held := l.holdings[t.Name]
	if quantity > held {
		t.mu.Unlock()
		l.mu.Unlock()
		return nil, ErrInsufficientHoldings
	}

	newPrice := l.unitPrice
	if policy != nil {
		newPrice = policy.OnSell(l.quoteLocked(), quantity)
		if newPrice < 1 {
			t.mu.Unlock()
			l.mu.Unlock()
			return nil, ErrInvariantViolation
		}
	}

	execPrice := l.unitPrice
	proceeds := quantity * execPrice
	if held-quantity == 0 {
		delete(l.holdings, t.Name)
	} else {
		l.holdings[t.Name] = held - quantity
	}
	t.budget += proceeds
	l.unitPrice = newPrice

	t.mu.Unlock()
	l.mu.Unlock()

	x.registerTrader(t)
	t.resync(x)

	return &Trade{
		TradeID:    uuid.New().String(),
		Exchange:   x.Name,
		Company:    l.Company.Name,
		Trader:     t.Name,
		Side:       TradeSideSell,
		Quantity:   quantity,
		UnitPrice:  execPrice,
		Total:      proceeds,
		ExecutedAt: time.Now(),
	}, nil
}
