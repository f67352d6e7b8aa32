package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkcheck/internal/config"
	"checkcheck/internal/database"
	"checkcheck/internal/handler"
	"checkcheck/internal/otp"
	"checkcheck/internal/repository"
	"checkcheck/internal/router"
	"checkcheck/internal/service"
	"checkcheck/internal/sms"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting check-check-city API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Initialize the SMS gateway client; absent credentials are reported
	// at reset-request time, not at startup.
	smsClient := sms.NewClient(cfg.Vonage, logger)
	if !smsClient.Configured() {
		logger.Warn().Msg("Vonage credentials missing, password reset will be unavailable")
	}

	// Initialize the in-process OTP registry
	registry := otp.NewRegistry()

	// Initialize services
	accountService := service.NewAccountService(userRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	resetService := service.NewPasswordResetService(registry, smsClient, userRepo, logger)

	// Initialize cookie sessions and HTTP handlers
	sessions := handler.NewSessions(cfg.Session.Secret, logger)

	handlers := router.Handlers{
		Catalog: handler.NewCatalogHandler(logger),
		Cart:    handler.NewCartHandler(sessions, logger),
		Auth:    handler.NewAuthHandler(accountService, sessions, logger),
		OTP:     handler.NewOTPHandler(resetService, logger),
		Order:   handler.NewOrderHandler(orderService, sessions, logger),
		Admin:   handler.NewAdminHandler(orderService, sessions, cfg.Admin.Password, logger),
	}

	// Initialize router
	mux := router.New(handlers, sessions, logger)

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
