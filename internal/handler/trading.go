package handler

import (
	"net/http"
	"time"

	"github.com/efreitasn/minibourse/internal/domain"
	"github.com/efreitasn/minibourse/internal/service"
	"github.com/go-chi/chi/v5"
)

// TradingHandler handles HTTP requests for buy/sell transactions and
// budget movements.
type TradingHandler struct {
	tradingSvc *service.TradingService
}

// NewTradingHandler creates a new TradingHandler.
func NewTradingHandler(tradingSvc *service.TradingService) *TradingHandler {
	return &TradingHandler{tradingSvc: tradingSvc}
}

// buyRequest is the JSON request body for POST /exchanges/{exchange}/buy.
type buyRequest struct {
	Trader  string `json:"trader"`
	Company string `json:"company"`
	Spend   int64  `json:"spend"`
}

// sellRequest is the JSON request body for POST /exchanges/{exchange}/sell.
type sellRequest struct {
	Trader   string `json:"trader"`
	Company  string `json:"company"`
	Quantity int64  `json:"quantity"`
}

// tradeResponse is the JSON response for an executed trade.
type tradeResponse struct {
	TradeID    string `json:"trade_id"`
	Exchange   string `json:"exchange"`
	Company    string `json:"company"`
	Trader     string `json:"trader"`
	Side       string `json:"side"`
	Quantity   int64  `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	Total      int64  `json:"total"`
	ExecutedAt string `json:"executed_at"`
}

func buildTradeResponse(t *domain.Trade) tradeResponse {
	return tradeResponse{
		TradeID:    t.TradeID,
		Exchange:   t.Exchange,
		Company:    t.Company,
		Trader:     t.Trader,
		Side:       string(t.Side),
		Quantity:   t.Quantity,
		UnitPrice:  t.UnitPrice,
		Total:      t.Total,
		ExecutedAt: t.ExecutedAt.Format(time.RFC3339),
	}
}

// Buy handles POST /exchanges/{exchange}/buy.
func (h *TradingHandler) Buy(w http.ResponseWriter, r *http.Request) {
	var req buyRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	trade, err := h.tradingSvc.Buy(service.BuyRequest{
		Trader:   req.Trader,
		Exchange: chi.URLParam(r, "exchange"),
		Company:  req.Company,
		Spend:    req.Spend,
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, buildTradeResponse(trade))
}

// Sell handles POST /exchanges/{exchange}/sell.
func (h *TradingHandler) Sell(w http.ResponseWriter, r *http.Request) {
	var req sellRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	trade, err := h.tradingSvc.Sell(service.SellRequest{
		Trader:   req.Trader,
		Exchange: chi.URLParam(r, "exchange"),
		Company:  req.Company,
		Quantity: req.Quantity,
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, buildTradeResponse(trade))
}

// amountRequest is the JSON request body for deposits and withdrawals.
type amountRequest struct {
	Amount int64 `json:"amount"`
}

// budgetResponse is the JSON response for deposits and withdrawals.
type budgetResponse struct {
	Trader string `json:"trader"`
	Budget int64  `json:"budget"`
}

// Deposit handles POST /traders/{trader}/deposit.
func (h *TradingHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	t, err := h.tradingSvc.Deposit(chi.URLParam(r, "trader"), req.Amount)
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, budgetResponse{Trader: t.Name, Budget: t.Budget()})
}

// Withdraw handles POST /traders/{trader}/withdraw.
func (h *TradingHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	t, err := h.tradingSvc.Withdraw(chi.URLParam(r, "trader"), req.Amount)
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, budgetResponse{Trader: t.Name, Budget: t.Budget()})
}

// ListTrades handles GET /exchanges/{exchange}/companies/{company}/trades.
func (h *TradingHandler) ListTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.tradingSvc.Trades(chi.URLParam(r, "exchange"), chi.URLParam(r, "company"))
	if err != nil {
		mapDomainError(w, err)
		return
	}

	out := make([]tradeResponse, 0, len(trades))
	for _, t := range trades {
		out = append(out, buildTradeResponse(t))
	}
	WriteJSON(w, http.StatusOK, out)
}
