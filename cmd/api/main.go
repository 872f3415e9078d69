package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"boutik/internal/config"
	"boutik/internal/handler"
	"boutik/internal/router"
	"boutik/internal/seed"
	"boutik/internal/service"
	"boutik/internal/session"
	"boutik/internal/store"

	"github.com/rs/zerolog"
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
	logger.Info().Msg("starting boutik API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the state store
	kv, err := newKV(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize state store: %w", err)
	}
	st := store.New(kv, logger)
	defer st.Close()

	// Resolve the seed catalogue, with S3 and local file fallback
	seedCatalogue := seed.Catalogue(ctx, cfg.Seed, newSeedLoader(ctx, cfg, logger), logger)

	// Initialize the session manager (admin PIN gate)
	sessions := session.NewManager(cfg.Shop.AdminPIN, logger)

	// Initialize services
	catalogService, err := service.NewCatalogService(ctx, st, sessions, seedCatalogue, cfg.Shop.DefaultSeller, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize catalog service: %w", err)
	}
	cartService := service.NewCartService(catalogService, logger)
	reservationService, err := service.NewReservationService(ctx, st, catalogService, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize reservation service: %w", err)
	}
	commentService, err := service.NewCommentService(ctx, st, sessions, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize comment service: %w", err)
	}
	checkoutService := service.NewCheckoutService(cartService, cfg.Shop, logger)

	// Initialize HTTP handlers
	sessionHandler := handler.NewSessionHandler(sessions, logger)
	productHandler := handler.NewProductHandler(catalogService, logger)
	cartHandler := handler.NewCartHandler(cartService, sessions, logger)
	reservationHandler := handler.NewReservationHandler(reservationService, logger)
	commentHandler := handler.NewCommentHandler(commentService, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, sessions, logger)

	// Initialize router
	mux := router.New(
		sessionHandler,
		productHandler,
		cartHandler,
		reservationHandler,
		commentHandler,
		checkoutHandler,
		logger,
	)

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

// newKV selects and opens the configured state store backend.
func newKV(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (store.KV, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := store.NewPool(ctx, cfg.Store.Postgres, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create database connection pool: %w", err)
		}
		return store.NewPostgres(ctx, pool, logger)

	default:
		if dir := filepath.Dir(cfg.Store.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create state directory %s: %w", dir, err)
			}
		}
		return store.NewBolt(cfg.Store.Path, logger)
	}
}

// newSeedLoader builds the seed-catalogue loader for this deployment, or nil
// when only the built-in seed is wanted.
func newSeedLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) seed.Loader {
	fileLoader := seed.NewFileLoader(logger)

	if cfg.Seed.S3Config.Enabled {
		s3Loader, err := seed.NewS3Loader(ctx, cfg.Seed.S3Config.Bucket, cfg.Seed.S3Config.Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("S3 seed loader unavailable, using local file loader only")
			if cfg.Seed.File == "" {
				return nil
			}
			return fileLoader
		}
		return seed.NewFallbackLoader(s3Loader, fileLoader, cfg.Seed.File, logger)
	}

	if cfg.Seed.File == "" {
		return nil
	}

	return fileLoader
}
