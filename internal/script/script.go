// Package script implements the batch driver: it reads a token-delimited
// scenario from an input stream (listings, traders, operations), executes it
// against the market services and prints a report. The report orderings are
// ascending lexicographic by name throughout.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/efreitasn/minibourse/internal/domain"
	"github.com/efreitasn/minibourse/internal/service"
)

// Mode selects the report printed after the scenario has run.
type Mode string

const (
	// ModeExchanges prints each exchange with its listings and owners.
	ModeExchanges Mode = "exchanges"
	// ModeTraders prints each trader with its budget and positions.
	ModeTraders Mode = "traders"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeExchanges, ModeTraders:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown script mode %q, must be one of: exchanges, traders", s)
}

// Runner executes scripted scenarios. The input consists of three blocks
// separated by lines containing only "--":
//
//	company exchange quantity unit_price     (listings)
//	--
//	trader initial_budget                    (traders)
//	--
//	trader b exchange company total_price    (buy)
//	trader s exchange company quantity       (sell)
//	trader d amount                          (deposit)
//	trader w amount                          (withdraw)
//
// Companies and exchanges are created on first mention in the listings
// block. Names must not contain spaces.
type Runner struct {
	entitySvc  *service.EntityService
	marketSvc  *service.MarketService
	tradingSvc *service.TradingService
	reportSvc  *service.ReportService
}

// NewRunner creates a new Runner.
func NewRunner(
	entitySvc *service.EntityService,
	marketSvc *service.MarketService,
	tradingSvc *service.TradingService,
	reportSvc *service.ReportService,
) *Runner {
	return &Runner{
		entitySvc:  entitySvc,
		marketSvc:  marketSvc,
		tradingSvc: tradingSvc,
		reportSvc:  reportSvc,
	}
}

// Run executes the scenario read from in and writes the report for the
// given mode to out. The first failing line aborts the run.
func (r *Runner) Run(in io.Reader, out io.Writer, mode Mode) error {
	sc := bufio.NewScanner(in)

	if err := r.runListings(sc); err != nil {
		return err
	}
	if err := r.runTraders(sc); err != nil {
		return err
	}
	if err := r.runOperations(sc); err != nil {
		return err
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	switch mode {
	case ModeTraders:
		r.writeTradersReport(out)
	default:
		r.writeExchangesReport(out)
	}
	return nil
}

func (r *Runner) runListings(sc *bufio.Scanner) error {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "--" {
			return nil
		}
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 4 {
			return fmt.Errorf("listing line %q: want company exchange quantity unit_price", line)
		}
		quantity, err := parseInt(f[2])
		if err != nil {
			return fmt.Errorf("listing line %q: %w", line, err)
		}
		unitPrice, err := parseInt(f[3])
		if err != nil {
			return fmt.Errorf("listing line %q: %w", line, err)
		}

		if err := r.ensureCompany(f[0]); err != nil {
			return err
		}
		if err := r.ensureExchange(f[1]); err != nil {
			return err
		}
		_, err = r.marketSvc.ListCompany(service.ListCompanyRequest{
			Company:   f[0],
			Exchange:  f[1],
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
		if err != nil {
			return fmt.Errorf("listing %s on %s: %w", f[0], f[1], err)
		}
	}
	return nil
}

func (r *Runner) runTraders(sc *bufio.Scanner) error {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "--" {
			return nil
		}
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return fmt.Errorf("trader line %q: want trader initial_budget", line)
		}
		budget, err := parseInt(f[1])
		if err != nil {
			return fmt.Errorf("trader line %q: %w", line, err)
		}

		if _, err := r.entitySvc.CreateTrader(f[0]); err != nil {
			return fmt.Errorf("creating trader %s: %w", f[0], err)
		}
		if _, err := r.tradingSvc.Deposit(f[0], budget); err != nil {
			return fmt.Errorf("depositing for %s: %w", f[0], err)
		}
	}
	return nil
}

func (r *Runner) runOperations(sc *bufio.Scanner) error {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "--" {
			return nil
		}
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 3 {
			return fmt.Errorf("operation line %q: too few fields", line)
		}

		var err error
		switch f[1] {
		case "b":
			err = r.runBuy(line, f)
		case "s":
			err = r.runSell(line, f)
		case "d":
			err = r.runAmount(line, f, r.tradingSvc.Deposit)
		case "w":
			err = r.runAmount(line, f, r.tradingSvc.Withdraw)
		default:
			err = fmt.Errorf("operation line %q: unknown operation %q", line, f[1])
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runBuy(line string, f []string) error {
	if len(f) != 5 {
		return fmt.Errorf("operation line %q: want trader b exchange company total_price", line)
	}
	spend, err := parseInt(f[4])
	if err != nil {
		return fmt.Errorf("operation line %q: %w", line, err)
	}
	_, err = r.tradingSvc.Buy(service.BuyRequest{
		Trader:   f[0],
		Exchange: f[2],
		Company:  f[3],
		Spend:    spend,
	})
	if err != nil {
		return fmt.Errorf("buy %q: %w", line, err)
	}
	return nil
}

func (r *Runner) runSell(line string, f []string) error {
	if len(f) != 5 {
		return fmt.Errorf("operation line %q: want trader s exchange company quantity", line)
	}
	quantity, err := parseInt(f[4])
	if err != nil {
		return fmt.Errorf("operation line %q: %w", line, err)
	}
	_, err = r.tradingSvc.Sell(service.SellRequest{
		Trader:   f[0],
		Exchange: f[2],
		Company:  f[3],
		Quantity: quantity,
	})
	if err != nil {
		return fmt.Errorf("sell %q: %w", line, err)
	}
	return nil
}

func (r *Runner) runAmount(line string, f []string, op func(string, int64) (*domain.Trader, error)) error {
	if len(f) != 3 {
		return fmt.Errorf("operation line %q: want trader d|w amount", line)
	}
	amount, err := parseInt(f[2])
	if err != nil {
		return fmt.Errorf("operation line %q: %w", line, err)
	}
	if _, err := op(f[0], amount); err != nil {
		return fmt.Errorf("operation %q: %w", line, err)
	}
	return nil
}

func (r *Runner) ensureCompany(name string) error {
	_, err := r.entitySvc.CreateCompany(name)
	if errors.Is(err, domain.ErrNameInUse) {
		return nil
	}
	return err
}

func (r *Runner) ensureExchange(name string) error {
	_, err := r.entitySvc.CreateExchange(name)
	if errors.Is(err, domain.ErrNameInUse) {
		return nil
	}
	return err
}

// writeExchangesReport prints every exchange (alphabetical), each listing
// prefixed by "-" with its available quantity, and each owner prefixed by
// "=" with the quantity held.
func (r *Runner) writeExchangesReport(out io.Writer) {
	for _, xr := range r.reportSvc.AllExchanges() {
		fmt.Fprintln(out, xr.Exchange)
		for _, l := range xr.Listings {
			fmt.Fprintf(out, "- %s %d\n", l.Company, l.Available)
			for _, o := range l.Owners {
				fmt.Fprintf(out, "= %s %d\n", o.Trader, o.Quantity)
			}
		}
	}
}

// writeTradersReport prints every trader (alphabetical) with its final
// budget and total holdings value, followed by its positions.
func (r *Runner) writeTradersReport(out io.Writer) {
	for _, tr := range r.reportSvc.AllTraders() {
		fmt.Fprintf(out, "%s, %d, %d\n", tr.Trader, tr.Budget, tr.HoldingsValue)
		for _, p := range tr.Positions {
			fmt.Fprintf(out, "- %s, %s, %d\n", p.Exchange, p.Company, p.Quantity)
		}
	}
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}
