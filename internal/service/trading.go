package service

import (
	"github.com/efreitasn/minibourse/internal/domain"
	"github.com/efreitasn/minibourse/internal/store"
)

// BuyRequest represents the input for a purchase: the trader spends up to
// Spend on the company's shares on the exchange.
type BuyRequest struct {
	Trader   string
	Exchange string
	Company  string
	Spend    int64
}

// SellRequest represents the input for a sale of Quantity shares.
type SellRequest struct {
	Trader   string
	Exchange string
	Company  string
	Quantity int64
}

// TradingService resolves entities through the registries, runs the
// exchange transactions and records executed trades.
type TradingService struct {
	companies  *store.CompanyStore
	exchanges  *store.ExchangeStore
	traders    *store.TraderStore
	tradeStore *store.TradeStore
}

// NewTradingService creates a new TradingService.
func NewTradingService(
	companies *store.CompanyStore,
	exchanges *store.ExchangeStore,
	traders *store.TraderStore,
	tradeStore *store.TradeStore,
) *TradingService {
	return &TradingService{
		companies:  companies,
		exchanges:  exchanges,
		traders:    traders,
		tradeStore: tradeStore,
	}
}

// Buy executes a purchase and records the resulting trade.
func (s *TradingService) Buy(req BuyRequest) (*domain.Trade, error) {
	t, err := s.traders.Get(req.Trader)
	if err != nil {
		return nil, err
	}
	x, err := s.exchanges.Get(req.Exchange)
	if err != nil {
		return nil, err
	}
	c, err := s.companies.Get(req.Company)
	if err != nil {
		return nil, err
	}

	trade, err := x.Buy(t, c, req.Spend)
	if err != nil {
		return nil, err
	}
	s.tradeStore.Append(trade)
	return trade, nil
}

// Sell executes a sale and records the resulting trade.
func (s *TradingService) Sell(req SellRequest) (*domain.Trade, error) {
	t, err := s.traders.Get(req.Trader)
	if err != nil {
		return nil, err
	}
	x, err := s.exchanges.Get(req.Exchange)
	if err != nil {
		return nil, err
	}
	l, err := x.FindListing(req.Company)
	if err != nil {
		return nil, err
	}

	trade, err := x.Sell(t, l, req.Quantity)
	if err != nil {
		return nil, err
	}
	s.tradeStore.Append(trade)
	return trade, nil
}

// Deposit adds amount to the trader's budget.
func (s *TradingService) Deposit(trader string, amount int64) (*domain.Trader, error) {
	t, err := s.traders.Get(trader)
	if err != nil {
		return nil, err
	}
	if err := t.Deposit(amount); err != nil {
		return nil, err
	}
	return t, nil
}

// Withdraw removes amount from the trader's budget.
func (s *TradingService) Withdraw(trader string, amount int64) (*domain.Trader, error) {
	t, err := s.traders.Get(trader)
	if err != nil {
		return nil, err
	}
	if err := t.Withdraw(amount); err != nil {
		return nil, err
	}
	return t, nil
}

// Trades returns the chronological trade history for the listing.
func (s *TradingService) Trades(exchange, company string) ([]*domain.Trade, error) {
	x, err := s.exchanges.Get(exchange)
	if err != nil {
		return nil, err
	}
	if _, err := x.FindListing(company); err != nil {
		return nil, err
	}
	return s.tradeStore.GetByListing(exchange, company), nil
}
