package domain

import "time"

// TradeSide indicates whether a trade was a purchase or a sale.
type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

// Trade records a single executed buy or sell against a listing.
// UnitPrice is the execution price, i.e. the listing price before any
// pricing-policy adjustment; Total is Quantity × UnitPrice.
type Trade struct {
	TradeID    string
	Exchange   string
	Company    string
	Trader     string
	Side       TradeSide
	Quantity   int64
	UnitPrice  int64
	Total      int64
	ExecutedAt time.Time
}
