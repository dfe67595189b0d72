package domain

import (
	"sort"
	"sync"
)

// Listing represents one company's shares trading on one specific exchange.
// It is owned exclusively by its exchange: all mutations of the ownership
// ledger and the unit price happen inside the exchange's buy/sell
// transactions, under the listing's lock.
type Listing struct {
	ExchangeName string
	Company      *Company
	TotalIssued  int64

	mu        sync.RWMutex
	unitPrice int64
	holdings  map[string]int64 // trader name → quantity (always > 0)
}

// Owner is a single entry of a listing's ownership ledger.
type Owner struct {
	Trader   string
	Quantity int64
}

func newListing(exchangeName string, company *Company, unitPrice, totalIssued int64) *Listing {
	return &Listing{
		ExchangeName: exchangeName,
		Company:      company,
		TotalIssued:  totalIssued,
		unitPrice:    unitPrice,
		holdings:     make(map[string]int64),
	}
}

// UnitPrice returns the current per-share price.
func (l *Listing) UnitPrice() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.unitPrice
}

// HeldBy returns the quantity currently held by the named trader,
// or 0 if the trader holds none.
func (l *Listing) HeldBy(trader string) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.holdings[trader]
}

// AvailableQuantity returns the number of shares still available for
// purchase. It is always recomputed from the ownership ledger as
// totalIssued − Σ holdings, never cached independently.
func (l *Listing) AvailableQuantity() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.availableLocked()
}

// availableLocked computes the available quantity. Caller must hold l.mu.
func (l *Listing) availableLocked() int64 {
	var held int64
	for _, qty := range l.holdings {
		held += qty
	}
	return l.TotalIssued - held
}

// Owners returns the ownership ledger entries in ascending trader-name
// order. Entries always carry a positive quantity.
func (l *Listing) Owners() []Owner {
	l.mu.RLock()
	defer l.mu.RUnlock()

	owners := make([]Owner, 0, len(l.holdings))
	for trader, qty := range l.holdings {
		owners = append(owners, Owner{Trader: trader, Quantity: qty})
	}
	sort.Slice(owners, func(i, j int) bool {
		return owners[i].Trader < owners[j].Trader
	})
	return owners
}

// Quote returns an immutable snapshot of the listing for pricing policies.
func (l *Listing) Quote() Quote {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.quoteLocked()
}

// quoteLocked builds a quote snapshot. Caller must hold l.mu.
func (l *Listing) quoteLocked() Quote {
	return Quote{
		Exchange:  l.ExchangeName,
		Company:   l.Company.Name,
		UnitPrice: l.unitPrice,
	}
}
