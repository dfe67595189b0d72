package domain

import (
	"errors"
	"testing"
)

func TestCompany_List(t *testing.T) {
	c := NewCompany("acme")
	x := NewExchange("nyse")

	l, err := c.List(x, 100, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if l.TotalIssued != 100 {
		t.Fatalf("expected 100 issued, got %d", l.TotalIssued)
	}
	if l.UnitPrice() != 10 {
		t.Fatalf("expected unit price 10, got %d", l.UnitPrice())
	}
	if !c.IsListedOn("nyse") {
		t.Fatal("company should record the exchange relation")
	}
	if _, err := x.FindListing("acme"); err != nil {
		t.Fatalf("exchange should carry the listing, got %v", err)
	}
}

func TestCompany_List_InvalidArguments(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int64
		unitPrice int64
	}{
		{"zero quantity", 0, 10},
		{"negative quantity", -5, 10},
		{"zero price", 100, 0},
		{"negative price", 100, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCompany("acme")
			x := NewExchange("nyse")

			_, err := c.List(x, tt.quantity, tt.unitPrice)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if c.IsListedOn("nyse") {
				t.Fatal("failed listing must not leave a relation behind")
			}
		})
	}
}

func TestCompany_List_NilExchange(t *testing.T) {
	c := NewCompany("acme")

	_, err := c.List(nil, 100, 10)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCompany_List_AlreadyListed(t *testing.T) {
	c := NewCompany("acme")
	x := NewExchange("nyse")

	if _, err := c.List(x, 100, 10); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_, err := c.List(x, 50, 5)
	if err != ErrAlreadyListed {
		t.Fatalf("expected ErrAlreadyListed, got %v", err)
	}
}

func TestCompany_List_RollbackOnExchangeFailure(t *testing.T) {
	// Two distinct Company values with the same name: the exchange indexes
	// listings by company name, so the second listing fails exchange-side
	// and the second company's relation must be rolled back.
	c1 := NewCompany("acme")
	c2 := NewCompany("acme")
	x := NewExchange("nyse")

	if _, err := c1.List(x, 100, 10); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_, err := c2.List(x, 50, 5)
	if err != ErrAlreadyListed {
		t.Fatalf("expected ErrAlreadyListed, got %v", err)
	}
	if c2.IsListedOn("nyse") {
		t.Fatal("failed listing must roll back the company-side relation")
	}
}

func TestCompany_Exchanges_Sorted(t *testing.T) {
	c := NewCompany("acme")
	for _, name := range []string{"zse", "amex", "nyse"} {
		if _, err := c.List(NewExchange(name), 10, 1); err != nil {
			t.Fatalf("listing on %s: %v", name, err)
		}
	}

	got := c.Exchanges()
	want := []string{"amex", "nyse", "zse"}
	if len(got) != len(want) {
		t.Fatalf("expected %d exchanges, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
