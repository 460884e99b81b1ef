package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sarmelo-delivery/internal/config"
	"sarmelo-delivery/internal/database"
	"sarmelo-delivery/internal/freight"
	"sarmelo-delivery/internal/geo"
	"sarmelo-delivery/internal/handler"
	"sarmelo-delivery/internal/repository"
	"sarmelo-delivery/internal/router"
	"sarmelo-delivery/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting sarmelo-delivery API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	itemRepo := repository.NewItemRepository(pool, logger)
	couponRepo := repository.NewCouponRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Initialize the geocoding chain. Positionstack answers first when a key
	// is configured; OpenStreetMap Nominatim is the keyless fallback.
	providers := []geo.Provider{
		geo.NewPositionstack(cfg.Geocoding.PositionstackKey),
		geo.NewNominatim(),
	}
	if cfg.Geocoding.PositionstackKey == "" {
		logger.Warn().Msg("POSITIONSTACK_KEY not set, geocoding will rely on OpenStreetMap only")
	}
	resolver := geo.NewResolver(providers, time.Duration(cfg.Geocoding.TimeoutSeconds)*time.Second, logger)

	calculator := freight.NewCalculator(cfg.Freight.BaseFee, cfg.Freight.PerKmRate)

	// Initialize services
	menuService := service.NewMenuService(itemRepo, logger)
	pricingService := service.NewPricingService(itemRepo, logger)
	couponService := service.NewCouponService(couponRepo, logger)
	freightService := service.NewFreightService(resolver, calculator, logger)
	orderService := service.NewOrderService(orderRepo, pricingService, couponService, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Menu:    handler.NewMenuHandler(menuService, logger),
		CEP:     handler.NewCEPHandler(geo.NewViaCEP(), logger),
		Freight: handler.NewFreightHandler(freightService, logger),
		Coupon:  handler.NewCouponHandler(couponService, logger),
		Order:   handler.NewOrderHandler(orderService, logger),
	}

	// Initialize router
	mux := router.New(handlers, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
