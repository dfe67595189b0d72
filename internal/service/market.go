package service

import (
	"fmt"
	"unicode/utf8"

	"github.com/efreitasn/minibourse/internal/domain"
	"github.com/efreitasn/minibourse/internal/pricing"
	"github.com/efreitasn/minibourse/internal/store"
)

// Pricing policy types accepted by SetPolicy.
const (
	PolicyConstantIncrement = "constant_increment"
	PolicyConstantDecrement = "constant_decrement"
	PolicySymmetricStep     = "symmetric_step"
	PolicyThreshold         = "threshold"
	PolicyInitialLetter     = "initial_letter"
)

// ListCompanyRequest represents the input for listing a company's shares
// on an exchange.
type ListCompanyRequest struct {
	Company   string
	Exchange  string
	Quantity  int64
	UnitPrice int64
}

// SetPolicyRequest describes a pricing policy to install on an exchange.
// Parameter carries the step or threshold for the numeric policies;
// Letter carries the single letter for the initial-letter policy.
type SetPolicyRequest struct {
	Exchange  string
	Type      string
	Parameter int64
	Letter    string
}

// MarketService handles listing creation and pricing-policy management.
type MarketService struct {
	companies *store.CompanyStore
	exchanges *store.ExchangeStore
}

// NewMarketService creates a new MarketService.
func NewMarketService(companies *store.CompanyStore, exchanges *store.ExchangeStore) *MarketService {
	return &MarketService{
		companies: companies,
		exchanges: exchanges,
	}
}

// ListCompany lists the company's shares on the exchange.
func (s *MarketService) ListCompany(req ListCompanyRequest) (*domain.Listing, error) {
	c, err := s.companies.Get(req.Company)
	if err != nil {
		return nil, err
	}
	x, err := s.exchanges.Get(req.Exchange)
	if err != nil {
		return nil, err
	}
	return c.List(x, req.Quantity, req.UnitPrice)
}

// SetPolicy builds the described pricing policy and installs it on the
// exchange, replacing any previous policy.
func (s *MarketService) SetPolicy(req SetPolicyRequest) error {
	x, err := s.exchanges.Get(req.Exchange)
	if err != nil {
		return err
	}
	policy, err := buildPolicy(req)
	if err != nil {
		return err
	}
	x.SetPricingPolicy(policy)
	return nil
}

// ClearPolicy removes the exchange's pricing policy; subsequent trades
// leave unit prices unchanged.
func (s *MarketService) ClearPolicy(exchange string) error {
	x, err := s.exchanges.Get(exchange)
	if err != nil {
		return err
	}
	x.SetPricingPolicy(nil)
	return nil
}

// Policy returns the exchange's current pricing policy, or nil if unset.
func (s *MarketService) Policy(exchange string) (domain.PricingPolicy, error) {
	x, err := s.exchanges.Get(exchange)
	if err != nil {
		return nil, err
	}
	return x.PricingPolicy(), nil
}

func buildPolicy(req SetPolicyRequest) (domain.PricingPolicy, error) {
	switch req.Type {
	case PolicyConstantIncrement:
		return pricing.NewConstantIncrement(req.Parameter), nil
	case PolicyConstantDecrement:
		return pricing.NewConstantDecrement(req.Parameter), nil
	case PolicySymmetricStep:
		return pricing.NewSymmetricStep(req.Parameter)
	case PolicyThreshold:
		return pricing.NewThreshold(req.Parameter), nil
	case PolicyInitialLetter:
		r, size := utf8.DecodeRuneInString(req.Letter)
		if size == 0 || size != len(req.Letter) || r == utf8.RuneError {
			return nil, &domain.ValidationError{Message: "letter must be a single character"}
		}
		return pricing.NewInitialLetterOrVowel(r)
	default:
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("unknown policy type %q", req.Type),
		}
	}
}
