package store

import (
	"sync"

	"github.com/efreitasn/minibourse/internal/domain"
)

// listingKey identifies a listing by its (exchange, company) pair.
type listingKey struct {
	exchange string
	company  string
}

// TradeStore is a thread-safe in-memory store for executed trades, keyed
// by listing. Trades are append-only and chronological.
type TradeStore struct {
	mu     sync.RWMutex
	trades map[listingKey][]*domain.Trade
}

// NewTradeStore creates an empty TradeStore.
func NewTradeStore() *TradeStore {
	return &TradeStore{
		trades: make(map[listingKey][]*domain.Trade),
	}
}

// Append adds a trade to its listing's chronological list.
func (s *TradeStore) Append(t *domain.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := listingKey{exchange: t.Exchange, company: t.Company}
	s.trades[key] = append(s.trades[key], t)
}

// GetByListing returns all trades for the (exchange, company) pair in
// chronological order. Returns an empty slice if no trades exist.
func (s *TradeStore) GetByListing(exchange, company string) []*domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trades := s.trades[listingKey{exchange: exchange, company: company}]
	if trades == nil {
		return []*domain.Trade{}
	}

	// Return a copy to avoid callers mutating the internal slice.
	result := make([]*domain.Trade, len(trades))
	copy(result, trades)
	return result
}
