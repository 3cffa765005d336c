// Package cli provides process bootstrap and the interactive command
// handlers shared by cmd/lifedash and cmd/lifedash-worker.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"lifedash/internal/amqp"
	"lifedash/internal/backend"
	"lifedash/internal/config"
	"lifedash/internal/log"
	"lifedash/internal/store"
)

// SetupLogger initializes structured logging with default settings and
// sets the result as the process default.
func SetupLogger(component string) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Component = component
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenMedium opens the configured persistence medium or exits the process
// on failure. The returned cleanup function may be nil.
func OpenMedium(logger *log.Logger, cfg *config.Config) (store.Medium, backend.CleanupFunc) {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", log.FieldError, err)
		os.Exit(1)
	}
	medium, cleanup, err := backend.Open(backendCfg, logger.Logger)
	if err != nil {
		logger.Error("Failed to open persistence medium",
			log.FieldError, err,
			log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	return medium, cleanup
}

// OpenAMQP connects the optional change-notification publisher. An empty
// URL disables notifications; a failing connection logs a warning and
// disables them too, mutations never depend on the broker.
func OpenAMQP(logger *log.Logger, cfg *config.Config) *amqp.Client {
	if cfg.AMQPURL == "" {
		return nil
	}
	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Warn("Failed to initialize AMQP client, continuing without notifications",
			log.FieldError, err)
		return nil
	}
	logger.Info("Initialized AMQP client",
		"exchange", cfg.AMQPExchange,
		"queue", cfg.AMQPQueue)
	return client
}

// OpenStore wires medium and publisher into a loaded store, or exits the
// process when the initial load fails.
func OpenStore(ctx context.Context, logger *log.Logger, medium store.Medium, pub store.Publisher) *store.Store {
	st := store.New(medium, pub)
	if _, err := st.Load(ctx); err != nil {
		logger.Error("Failed to load document", log.FieldError, err)
		os.Exit(1)
	}
	if st.Restored() {
		logger.Warn("Persisted document was unreadable, starting from the seed document")
	}
	return st
}

// GracefulShutdown sets up signal handling for graceful shutdown.
// Returns a context that will be cancelled on shutdown signals,
// and a channel that signals when shutdown is complete.
func GracefulShutdown(logger *log.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		if cleanup != nil {
			cleanup()
		}

		cancel()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("Shutdown timeout reached")
		case <-time.After(2 * time.Second):
			logger.Info("Shutdown complete")
		}
		close(done)
	}()

	return ctx, done
}

// WaitForShutdown blocks until the context is cancelled.
func WaitForShutdown(ctx context.Context, done <-chan struct{}) {
	<-ctx.Done()
	<-done
}
