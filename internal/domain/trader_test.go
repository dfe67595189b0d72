package domain

import (
	"errors"
	"testing"
)

func TestTrader_Deposit(t *testing.T) {
	tr := NewTrader("bob")

	if err := tr.Deposit(100); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := tr.Budget(); got != 100 {
		t.Fatalf("expected budget 100, got %d", got)
	}

	for _, amount := range []int64{0, -10} {
		err := tr.Deposit(amount)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("amount %d: expected ValidationError, got %v", amount, err)
		}
	}
}

func TestTrader_Withdraw(t *testing.T) {
	tr := NewTrader("bob")
	if err := tr.Deposit(100); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if err := tr.Withdraw(40); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := tr.Budget(); got != 60 {
		t.Fatalf("expected budget 60, got %d", got)
	}

	for _, amount := range []int64{0, -1, 61} {
		err := tr.Withdraw(amount)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("amount %d: expected ValidationError, got %v", amount, err)
		}
	}
	if got := tr.Budget(); got != 60 {
		t.Fatalf("failed withdrawals must not change the budget, got %d", got)
	}
}

func TestTrader_HeldQuantity_NoHoldings(t *testing.T) {
	c := NewCompany("acme")
	x := NewExchange("nyse")
	l, err := c.List(x, 100, 10)
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	tr := NewTrader("bob")

	if _, err := tr.HeldQuantity(l); err != ErrNoHoldings {
		t.Fatalf("expected ErrNoHoldings, got %v", err)
	}
}

func TestTrader_HoldingsValue_UsesLivePrice(t *testing.T) {
	c := NewCompany("acme")
	x := NewExchange("nyse")
	if _, err := c.List(x, 100, 10); err != nil {
		t.Fatalf("listing: %v", err)
	}
	tr := NewTrader("bob")
	if err := tr.Deposit(1000); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := x.Buy(tr, c, 50); err != nil {
		t.Fatalf("buy: %v", err)
	}

	if got := tr.HoldingsValue(); got != 50 {
		t.Fatalf("expected value 50, got %d", got)
	}

	// A later price change is reflected immediately, not frozen at
	// purchase time.
	x.SetPricingPolicy(stepPolicy{step: 10})
	other := NewTrader("carol")
	if err := other.Deposit(100); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := x.Buy(other, c, 20); err != nil {
		t.Fatalf("buy: %v", err)
	}

	if got := tr.HoldingsValue(); got != 100 {
		t.Fatalf("expected value 100 at live price 20, got %d", got)
	}
}

func TestTrader_Positions_SortedByExchangeThenCompany(t *testing.T) {
	tr := NewTrader("bob")
	if err := tr.Deposit(10000); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	amex := NewExchange("amex")
	nyse := NewExchange("nyse")
	zeta := NewCompany("zeta")
	acme := NewCompany("acme")
	for _, x := range []*Exchange{amex, nyse} {
		for _, c := range []*Company{zeta, acme} {
			if _, err := c.List(x, 100, 10); err != nil {
				t.Fatalf("listing %s on %s: %v", c.Name, x.Name, err)
			}
			if _, err := x.Buy(tr, c, 10); err != nil {
				t.Fatalf("buy %s on %s: %v", c.Name, x.Name, err)
			}
		}
	}

	positions := tr.Positions()
	want := [][2]string{
		{"amex", "acme"},
		{"amex", "zeta"},
		{"nyse", "acme"},
		{"nyse", "zeta"},
	}
	if len(positions) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(positions))
	}
	for i, p := range positions {
		if p.Listing.ExchangeName != want[i][0] || p.Listing.Company.Name != want[i][1] {
			t.Fatalf("position %d: expected %v, got (%s, %s)",
				i, want[i], p.Listing.ExchangeName, p.Listing.Company.Name)
		}
	}
}

func TestTrader_Resync_Idempotent(t *testing.T) {
	c := NewCompany("acme")
	x := NewExchange("nyse")
	l, err := c.List(x, 100, 10)
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	tr := NewTrader("bob")
	if err := tr.Deposit(1000); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := x.Buy(tr, c, 50); err != nil {
		t.Fatalf("buy: %v", err)
	}

	before := l.HeldBy("bob")
	tr.resync(x)
	tr.resync(x)

	if got := l.HeldBy("bob"); got != before {
		t.Fatalf("resync must not mutate the ledger: %d != %d", got, before)
	}
	qty, err := tr.HeldQuantity(l)
	if err != nil {
		t.Fatalf("expected cached holdings, got %v", err)
	}
	if qty != before {
		t.Fatalf("expected cache %d, got %d", before, qty)
	}
}
