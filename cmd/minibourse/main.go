package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/efreitasn/minibourse/internal/config"
	"github.com/efreitasn/minibourse/internal/handler"
	"github.com/efreitasn/minibourse/internal/script"
	"github.com/efreitasn/minibourse/internal/service"
	"github.com/efreitasn/minibourse/internal/store"
)

func main() {
	healthcheck := flag.Bool("healthcheck", false, "Run health check against running server")
	scriptMode := flag.String("script", "", "Run a scripted scenario from stdin and print the given report (exchanges|traders)")
	flag.Parse()

	// Handle -healthcheck flag: HTTP GET to localhost:PORT/healthz, exit 0/1.
	if *healthcheck {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/healthz", port))
		if err != nil || resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Instantiate stores.
	companyStore := store.NewCompanyStore()
	exchangeStore := store.NewExchangeStore()
	traderStore := store.NewTraderStore()
	tradeStore := store.NewTradeStore()

	// Services.
	entitySvc := service.NewEntityService(companyStore, exchangeStore, traderStore)
	marketSvc := service.NewMarketService(companyStore, exchangeStore)
	tradingSvc := service.NewTradingService(companyStore, exchangeStore, traderStore, tradeStore)
	reportSvc := service.NewReportService(exchangeStore, traderStore)

	// Handle -script flag: run the scenario from stdin, print the report,
	// exit 0/1.
	if *scriptMode != "" {
		mode, err := script.ParseMode(*scriptMode)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		runner := script.NewRunner(entitySvc, marketSvc, tradingSvc, reportSvc)
		if err := runner.Run(os.Stdin, os.Stdout, mode); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up slog logger with configured level.
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Router.
	router := handler.NewRouter(entitySvc, marketSvc, tradingSvc, reportSvc, logger)

	// Configure HTTP server.
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start HTTP server in a goroutine.
	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Graceful shutdown.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}
