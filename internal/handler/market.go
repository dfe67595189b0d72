package handler

import (
	"net/http"

	"github.com/efreitasn/minibourse/internal/service"
	"github.com/go-chi/chi/v5"
)

// MarketHandler handles HTTP requests for listings, pricing policies and
// reports.
type MarketHandler struct {
	marketSvc *service.MarketService
	reportSvc *service.ReportService
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketSvc *service.MarketService, reportSvc *service.ReportService) *MarketHandler {
	return &MarketHandler{marketSvc: marketSvc, reportSvc: reportSvc}
}

// createListingRequest is the JSON request body for listing a company.
type createListingRequest struct {
	Exchange  string `json:"exchange"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// listingResponse is the JSON response for a single listing.
type listingResponse struct {
	Exchange    string `json:"exchange"`
	Company     string `json:"company"`
	TotalIssued int64  `json:"total_issued"`
	UnitPrice   int64  `json:"unit_price"`
	Available   int64  `json:"available"`
}

// CreateListing handles POST /companies/{company}/listings.
func (h *MarketHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	l, err := h.marketSvc.ListCompany(service.ListCompanyRequest{
		Company:   chi.URLParam(r, "company"),
		Exchange:  req.Exchange,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, listingResponse{
		Exchange:    l.ExchangeName,
		Company:     l.Company.Name,
		TotalIssued: l.TotalIssued,
		UnitPrice:   l.UnitPrice(),
		Available:   l.AvailableQuantity(),
	})
}

// setPolicyRequest is the JSON request body for installing a pricing policy.
type setPolicyRequest struct {
	Type      string `json:"type"`
	Parameter int64  `json:"parameter"`
	Letter    string `json:"letter"`
}

// policyResponse is the JSON response for the policy endpoints.
type policyResponse struct {
	Set bool `json:"set"`
}

// SetPolicy handles PUT /exchanges/{exchange}/policy.
func (h *MarketHandler) SetPolicy(w http.ResponseWriter, r *http.Request) {
	var req setPolicyRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	err := h.marketSvc.SetPolicy(service.SetPolicyRequest{
		Exchange:  chi.URLParam(r, "exchange"),
		Type:      req.Type,
		Parameter: req.Parameter,
		Letter:    req.Letter,
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, policyResponse{Set: true})
}

// ClearPolicy handles DELETE /exchanges/{exchange}/policy.
func (h *MarketHandler) ClearPolicy(w http.ResponseWriter, r *http.Request) {
	if err := h.marketSvc.ClearPolicy(chi.URLParam(r, "exchange")); err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, policyResponse{Set: false})
}

// GetPolicy handles GET /exchanges/{exchange}/policy.
func (h *MarketHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	policy, err := h.marketSvc.Policy(chi.URLParam(r, "exchange"))
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, policyResponse{Set: policy != nil})
}

// ownerResponse is one ownership entry in an exchange report.
type ownerResponse struct {
	Trader   string `json:"trader"`
	Quantity int64  `json:"quantity"`
}

// listingReportResponse is one listing in an exchange report.
type listingReportResponse struct {
	Company     string          `json:"company"`
	UnitPrice   int64           `json:"unit_price"`
	TotalIssued int64           `json:"total_issued"`
	Available   int64           `json:"available"`
	Owners      []ownerResponse `json:"owners"`
}

// exchangeReportResponse is the JSON response for an exchange report.
type exchangeReportResponse struct {
	Exchange string                  `json:"exchange"`
	Listings []listingReportResponse `json:"listings"`
}

// GetExchange handles GET /exchanges/{exchange}.
func (h *MarketHandler) GetExchange(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.Exchange(chi.URLParam(r, "exchange"))
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, buildExchangeReportResponse(report))
}

// ListExchanges handles GET /exchanges.
func (h *MarketHandler) ListExchanges(w http.ResponseWriter, r *http.Request) {
	reports := h.reportSvc.AllExchanges()
	out := make([]exchangeReportResponse, 0, len(reports))
	for _, report := range reports {
		out = append(out, buildExchangeReportResponse(report))
	}
	WriteJSON(w, http.StatusOK, out)
}

// positionResponse is one holdings entry in a trader report.
type positionResponse struct {
	Exchange  string `json:"exchange"`
	Company   string `json:"company"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// traderReportResponse is the JSON response for a trader report.
type traderReportResponse struct {
	Trader        string             `json:"trader"`
	Budget        int64              `json:"budget"`
	HoldingsValue int64              `json:"holdings_value"`
	Positions     []positionResponse `json:"positions"`
}

// GetTrader handles GET /traders/{trader}.
func (h *MarketHandler) GetTrader(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.Trader(chi.URLParam(r, "trader"))
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, buildTraderReportResponse(report))
}

// ListTraders handles GET /traders.
func (h *MarketHandler) ListTraders(w http.ResponseWriter, r *http.Request) {
	reports := h.reportSvc.AllTraders()
	out := make([]traderReportResponse, 0, len(reports))
	for _, report := range reports {
		out = append(out, buildTraderReportResponse(report))
	}
	WriteJSON(w, http.StatusOK, out)
}

func buildExchangeReportResponse(report *service.ExchangeReport) exchangeReportResponse {
	resp := exchangeReportResponse{
		Exchange: report.Exchange,
		Listings: make([]listingReportResponse, 0, len(report.Listings)),
	}
	for _, l := range report.Listings {
		lr := listingReportResponse{
			Company:     l.Company,
			UnitPrice:   l.UnitPrice,
			TotalIssued: l.TotalIssued,
			Available:   l.Available,
			Owners:      make([]ownerResponse, 0, len(l.Owners)),
		}
		for _, o := range l.Owners {
			lr.Owners = append(lr.Owners, ownerResponse{Trader: o.Trader, Quantity: o.Quantity})
		}
		resp.Listings = append(resp.Listings, lr)
	}
	return resp
}

func buildTraderReportResponse(report *service.TraderReport) traderReportResponse {
	resp := traderReportResponse{
		Trader:        report.Trader,
		Budget:        report.Budget,
		HoldingsValue: report.HoldingsValue,
		Positions:     make([]positionResponse, 0, len(report.Positions)),
	}
	for _, p := range report.Positions {
		resp.Positions = append(resp.Positions, positionResponse{
			Exchange:  p.Exchange,
			Company:   p.Company,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
		})
	}
	return resp
}
