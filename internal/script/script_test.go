package script

import (
	"strings"
	"testing"

	"github.com/efreitasn/minibourse/internal/service"
	"github.com/efreitasn/minibourse/internal/store"
)

func newTestRunner() *Runner {
	companies := store.NewCompanyStore()
	exchanges := store.NewExchangeStore()
	traders := store.NewTraderStore()
	trades := store.NewTradeStore()

	return NewRunner(
		service.NewEntityService(companies, exchanges, traders),
		service.NewMarketService(companies, exchanges),
		service.NewTradingService(companies, exchanges, traders, trades),
		service.NewReportService(exchanges, traders),
	)
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"exchanges", "traders"} {
		if _, err := ParseMode(s); err != nil {
			t.Fatalf("mode %q: expected no error, got %v", s, err)
		}
	}
	if _, err := ParseMode("bogus"); err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}

const scenario = `acme nyse 100 10
zeta nyse 50 5
--
bob 1000
alice 500
--
bob b nyse acme 55
bob s nyse acme 2
alice b nyse zeta 25
bob w 100
`

func TestRun_ExchangesReport(t *testing.T) {
	r := newTestRunner()
	var out strings.Builder

	if err := r.Run(strings.NewReader(scenario), &out, ModeExchanges); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := `nyse
- acme 97
= bob 3
- zeta 45
= alice 5
`
	if out.String() != want {
		t.Fatalf("report mismatch:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRun_TradersReport(t *testing.T) {
	r := newTestRunner()
	var out strings.Builder

	if err := r.Run(strings.NewReader(scenario), &out, ModeTraders); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := `alice, 475, 25
- nyse, zeta, 5
bob, 870, 30
- nyse, acme, 3
`
	if out.String() != want {
		t.Fatalf("report mismatch:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRun_CompanyOnMultipleExchanges(t *testing.T) {
	r := newTestRunner()
	var out strings.Builder

	in := `acme nyse 100 10
acme amex 50 5
--
bob 100
--
bob b amex acme 20
`
	if err := r.Run(strings.NewReader(in), &out, ModeExchanges); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := `amex
- acme 46
= bob 4
nyse
- acme 100
`
	if out.String() != want {
		t.Fatalf("report mismatch:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRun_SkipsBlankLines(t *testing.T) {
	r := newTestRunner()
	var out strings.Builder

	in := `
acme nyse 100 10

--

bob 100
--
`
	if err := r.Run(strings.NewReader(in), &out, ModeTraders); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := out.String(); got != "bob, 100, 0\n" {
		t.Fatalf("unexpected report: %q", got)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"malformed listing", "acme nyse 100\n--\n--\n"},
		{"bad integer", "acme nyse ten 10\n--\n--\n"},
		{"duplicate listing", "acme nyse 100 10\nacme nyse 50 5\n--\n--\n"},
		{"duplicate trader", "--\nbob 100\nbob 200\n--\n"},
		{"unknown operation", "acme nyse 100 10\n--\nbob 100\n--\nbob x nyse acme 10\n"},
		{"buy too few fields", "acme nyse 100 10\n--\nbob 100\n--\nbob b nyse acme\n"},
		{"failed buy", "acme nyse 100 10\n--\nbob 5\n--\nbob b nyse acme 5\n"},
		{"overdraw", "--\nbob 100\n--\nbob w 200\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRunner()
			var out strings.Builder
			if err := r.Run(strings.NewReader(tt.in), &out, ModeExchanges); err == nil {
				t.Fatal("expected an error")
			}
			if out.Len() != 0 {
				t.Fatalf("a failed run must not print a report, got %q", out.String())
			}
		})
	}
}
