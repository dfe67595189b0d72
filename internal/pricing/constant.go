// Package pricing provides the built-in pricing policies an exchange can
// apply after each trade. Every policy is a pure function of the pre-trade
// quote and the executed quantity and never returns a price below 1.
package pricing

import "github.com/efreitasn/minibourse/internal/domain"

// floor clamps a computed price to the minimum unit price of 1.
func floor(price int64) int64 {
	if price < 1 {
		return 1
	}
	return price
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// ConstantIncrement raises the unit price by a fixed step on every buy and
// leaves sells unchanged. The step is stored as its absolute value.
type ConstantIncrement struct {
	step int64
}

// NewConstantIncrement creates a ConstantIncrement policy with step |step|.
func NewConstantIncrement(step int64) *ConstantIncrement {
	return &ConstantIncrement{step: abs(step)}
}

// OnBuy returns the unit price raised by the step.
func (p *ConstantIncrement) OnBuy(q domain.Quote, quantity int64) int64 {
	return q.UnitPrice + p.step
}

// OnSell leaves the unit price unchanged.
func (p *ConstantIncrement) OnSell(q domain.Quote, quantity int64) int64 {
	return q.UnitPrice
}

// ConstantDecrement lowers the unit price by a fixed step on every sell
// (never below 1) and leaves buys unchanged. The step is stored as its
// absolute value.
type ConstantDecrement struct {
	step int64
}

// NewConstantDecrement creates a ConstantDecrement policy with step |step|.
func NewConstantDecrement(step int64) *ConstantDecrement {
	return &ConstantDecrement{step: abs(step)}
}

// OnBuy leaves the unit price unchanged.
func (p *ConstantDecrement) OnBuy(q domain.Quote, quantity int64) int64 {
	return q.UnitPrice
}

// OnSell returns the unit price lowered by the step, floored at 1.
func (p *ConstantDecrement) OnSell(q domain.Quote, quantity int64) int64 {
	return floor(q.UnitPrice - p.step)
}

// SymmetricStep raises the unit price by a fixed step on every buy and
// lowers it by the same step on every sell (never below 1).
type SymmetricStep struct {
	step int64
}

// NewSymmetricStep creates a SymmetricStep policy. The step must not be
// negative.
func NewSymmetricStep(step int64) (*SymmetricStep, error) {
	if step < 0 {
		return nil, &domain.ValidationError{Message: "step must not be negative"}
	}
	return &SymmetricStep{step: step}, nil
}

// OnBuy returns the unit price raised by the step.
func (p *SymmetricStep) OnBuy(q domain.Quote, quantity int64) int64 {
	return q.UnitPrice + p.step
}

// OnSell returns the unit price lowered by the step, floored at 1.
func (p *SymmetricStep) OnSell(q domain.Quote, quantity int64) int64 {
	return floor(q.UnitPrice - p.step)
}
