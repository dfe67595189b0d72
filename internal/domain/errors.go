package domain

import "errors"

// Sentinel errors for domain-level error handling.
// The handler layer maps these to HTTP status codes.
var (
	ErrInvalidName          = errors.New("invalid_name")
	ErrNameInUse            = errors.New("name_in_use")
	ErrAlreadyListed        = errors.New("already_listed")
	ErrCompanyNotFound      = errors.New("company_not_found")
	ErrExchangeNotFound     = errors.New("exchange_not_found")
	ErrTraderNotFound       = errors.New("trader_not_found")
	ErrListingNotFound      = errors.New("listing_not_found")
	ErrNoHoldings           = errors.New("no_holdings")
	ErrInsufficientFunds    = errors.New("insufficient_funds")
	ErrInsufficientSupply   = errors.New("insufficient_supply")
	ErrInsufficientHoldings = errors.New("insufficient_holdings")
	ErrInvariantViolation   = errors.New("invariant_violation")
)

// ValidationError represents an argument validation failure
// (non-positive quantity, price or amount, malformed policy parameter).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
