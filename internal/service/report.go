package service

import (
	"github.com/efreitasn/minibourse/internal/domain"
	"github.com/efreitasn/minibourse/internal/store"
)

// OwnerReport is one ownership entry of a listing.
type OwnerReport struct {
	Trader   string
	Quantity int64
}

// ListingReport describes one listing of an exchange, with its owners in
// ascending trader-name order.
type ListingReport struct {
	Company     string
	UnitPrice   int64
	TotalIssued int64
	Available   int64
	Owners      []OwnerReport
}

// ExchangeReport describes an exchange with its listings in ascending
// company-name order.
type ExchangeReport struct {
	Exchange string
	Listings []ListingReport
}

// PositionReport is one entry of a trader's holdings.
type PositionReport struct {
	Exchange  string
	Company   string
	Quantity  int64
	UnitPrice int64
}

// TraderReport describes a trader's budget and holdings, with positions in
// ascending (exchange, company) order. HoldingsValue is computed at each
// listing's live current price.
type TraderReport struct {
	Trader        string
	Budget        int64
	HoldingsValue int64
	Positions     []PositionReport
}

// ReportService builds the read-only reports the CLI and HTTP surfaces
// render. All orderings are ascending lexicographic by name.
type ReportService struct {
	exchanges *store.ExchangeStore
	traders   *store.TraderStore
}

// NewReportService creates a new ReportService.
func NewReportService(exchanges *store.ExchangeStore, traders *store.TraderStore) *ReportService {
	return &ReportService{
		exchanges: exchanges,
		traders:   traders,
	}
}

// Exchange builds the report for a single exchange.
func (s *ReportService) Exchange(name string) (*ExchangeReport, error) {
	x, err := s.exchanges.Get(name)
	if err != nil {
		return nil, err
	}
	return buildExchangeReport(x), nil
}

// AllExchanges builds reports for every exchange, in ascending name order.
func (s *ReportService) AllExchanges() []*ExchangeReport {
	exchanges := s.exchanges.List()
	out := make([]*ExchangeReport, 0, len(exchanges))
	for _, x := range exchanges {
		out = append(out, buildExchangeReport(x))
	}
	return out
}

// Trader builds the report for a single trader.
func (s *ReportService) Trader(name string) (*TraderReport, error) {
	t, err := s.traders.Get(name)
	if err != nil {
		return nil, err
	}
	return buildTraderReport(t), nil
}

// AllTraders builds reports for every trader, in ascending name order.
func (s *ReportService) AllTraders() []*TraderReport {
	traders := s.traders.List()
	out := make([]*TraderReport, 0, len(traders))
	for _, t := range traders {
		out = append(out, buildTraderReport(t))
	}
	return out
}

func buildExchangeReport(x *domain.Exchange) *ExchangeReport {
	listings := x.Listings()
	report := &ExchangeReport{
		Exchange: x.Name,
		Listings: make([]ListingReport, 0, len(listings)),
	}
	for _, l := range listings {
		owners := l.Owners()
		lr := ListingReport{
			Company:     l.Company.Name,
			UnitPrice:   l.UnitPrice(),
			TotalIssued: l.TotalIssued,
			Available:   l.AvailableQuantity(),
			Owners:      make([]OwnerReport, 0, len(owners)),
		}
		for _, o := range owners {
			lr.Owners = append(lr.Owners, OwnerReport{Trader: o.Trader, Quantity: o.Quantity})
		}
		report.Listings = append(report.Listings, lr)
	}
	return report
}

func buildTraderReport(t *domain.Trader) *TraderReport {
	positions := t.Positions()
	report := &TraderReport{
		Trader:        t.Name,
		Budget:        t.Budget(),
		HoldingsValue: t.HoldingsValue(),
		Positions:     make([]PositionReport, 0, len(positions)),
	}
	for _, p := range positions {
		report.Positions = append(report.Positions, PositionReport{
			Exchange:  p.Listing.ExchangeName,
			Company:   p.Listing.Company.Name,
			Quantity:  p.Quantity,
			UnitPrice: p.Listing.UnitPrice(),
		})
	}
	return report
}
