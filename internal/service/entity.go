package service

import (
	"strings"

	"github.com/efreitasn/minibourse/internal/domain"
	"github.com/efreitasn/minibourse/internal/store"
)

// EntityService handles creation of companies, exchanges and traders.
// Each kind has its own name registry; names are unique per kind.
type EntityService struct {
	companies *store.CompanyStore
	exchanges *store.ExchangeStore
	traders   *store.TraderStore
}

// NewEntityService creates a new EntityService.
func NewEntityService(
	companies *store.CompanyStore,
	exchanges *store.ExchangeStore,
	traders *store.TraderStore,
) *EntityService {
	return &EntityService{
		companies: companies,
		exchanges: exchanges,
		traders:   traders,
	}
}

// validateName rejects empty and blank names.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrInvalidName
	}
	return nil
}

// CreateCompany validates the name and registers a new company.
func (s *EntityService) CreateCompany(name string) (*domain.Company, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	c := domain.NewCompany(name)
	if err := s.companies.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CreateExchange validates the name and registers a new exchange.
func (s *EntityService) CreateExchange(name string) (*domain.Exchange, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	x := domain.NewExchange(name)
	if err := s.exchanges.Create(x); err != nil {
		return nil, err
	}
	return x, nil
}

// CreateTrader validates the name and registers a new trader. The trader
// starts with a zero budget and an empty holdings cache.
func (s *EntityService) CreateTrader(name string) (*domain.Trader, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	t := domain.NewTrader(name)
	if err := s.traders.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}
