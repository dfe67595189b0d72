package pricing

import "github.com/efreitasn/minibourse/internal/domain"

// Threshold doubles the unit price when a buy exceeds the threshold
// quantity and halves it (floored, never below 1) when a sell does;
// trades at or below the threshold leave the price unchanged. The
// threshold is stored as its absolute value.
type Threshold struct {
	threshold int64
}

// NewThreshold creates a Threshold policy with threshold |threshold|.
func NewThreshold(threshold int64) *Threshold {
	return &Threshold{threshold: abs(threshold)}
}

// OnBuy doubles the unit price when quantity exceeds the threshold.
func (p *Threshold) OnBuy(q domain.Quote, quantity int64) int64 {
	if quantity > p.threshold {
		return q.UnitPrice * 2
	}
	return q.UnitPrice
}

// OnSell halves the unit price when quantity exceeds the threshold.
func (p *Threshold) OnSell(q domain.Quote, quantity int64) int64 {
	if quantity > p.threshold {
		return floor(q.UnitPrice / 2)
	}
	return q.UnitPrice
}
