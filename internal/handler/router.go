package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/efreitasn/minibourse/internal/service"
	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all routes registered, request logging,
// and Content-Type validation middleware.
func NewRouter(
	entitySvc *service.EntityService,
	marketSvc *service.MarketService,
	tradingSvc *service.TradingService,
	reportSvc *service.ReportService,
	logger *slog.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(requestLogging(logger))
	r.Use(contentTypeJSON)

	// Create handlers.
	entityH := NewEntityHandler(entitySvc)
	marketH := NewMarketHandler(marketSvc, reportSvc)
	tradingH := NewTradingHandler(tradingSvc)

	// Health check.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Entity creation.
	r.Post("/companies", entityH.CreateCompany)
	r.Post("/exchanges", entityH.CreateExchange)
	r.Post("/traders", entityH.CreateTrader)

	// Listings.
	r.Post("/companies/{company}/listings", marketH.CreateListing)

	// Pricing policy.
	r.Put("/exchanges/{exchange}/policy", marketH.SetPolicy)
	r.Get("/exchanges/{exchange}/policy", marketH.GetPolicy)
	r.Delete("/exchanges/{exchange}/policy", marketH.ClearPolicy)

	// Trading.
	r.Post("/exchanges/{exchange}/buy", tradingH.Buy)
	r.Post("/exchanges/{exchange}/sell", tradingH.Sell)
	r.Post("/traders/{trader}/deposit", tradingH.Deposit)
	r.Post("/traders/{trader}/withdraw", tradingH.Withdraw)
	r.Get("/exchanges/{exchange}/companies/{company}/trades", tradingH.ListTrades)

	// Reports.
	r.Get("/exchanges", marketH.ListExchanges)
	r.Get("/exchanges/{exchange}", marketH.GetExchange)
	r.Get("/traders", marketH.ListTraders)
	r.Get("/traders/{trader}", marketH.GetTrader)

	return r
}

// requestLogging returns middleware that logs each request's method, path,
// status code, and duration using slog.
func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// contentTypeJSON is middleware that validates Content-Type for POST, PUT, and
// PATCH requests. If the Content-Type header doesn't start with
// "application/json", it returns 400 Bad Request before the handler runs.
func contentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct == "" || !strings.HasPrefix(ct, "application/json") {
				WriteError(w, http.StatusBadRequest, "invalid_request",
					"Content-Type must be application/json")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
