package domain

// Quote is an immutable snapshot of a listing's identity and current unit
// price. Pricing policies receive a quote rather than the listing itself so
// they stay pure and never touch the exchange's locks.
type Quote struct {
	Exchange  string
	Company   string
	UnitPrice int64
}

// PricingPolicy recomputes a listing's unit price in reaction to a trade.
// OnBuy and OnSell receive the pre-trade quote and the executed share count
// and return the new unit price. Implementations must be total functions of
// their inputs and must never return a price below 1; the exchange rejects
// the whole trade with ErrInvariantViolation if they do.
type PricingPolicy interface {
	OnBuy(q Quote, quantity int64) int64
	OnSell(q Quote, quantity int64) int64
}
