package main

import (
	"context"
	"os"
	"time"

	"lifedash/internal/amqp"
	"lifedash/internal/cli"
	"lifedash/internal/log"
	"lifedash/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentWorker)

	logger.Info("Starting lifedash-worker")

	cfg := cli.LoadAndValidateConfig(logger)
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the snapshot mirror worker")
		os.Exit(1)
	}

	medium, cleanup := cli.OpenMedium(logger, cfg)
	if cleanup != nil {
		defer cleanup()
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	mirror := worker.NewMirrorWorker(medium, cfg.BackupDir, cfg.BackupKeep)

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, nil)

	// Catch up on anything missed while the worker was down.
	if err := mirror.StartupCheck(ctx); err != nil {
		logger.Error("Startup snapshot check failed", log.FieldError, err)
		// Keep running; the next message or tick retries.
	}

	go func() {
		if err := amqpClient.ConsumeDocumentSaved(ctx, func(msg *amqp.DocumentSavedMessage) error {
			return mirror.HandleDocumentSaved(ctx, msg)
		}); err != nil && err != context.Canceled {
			logger.Error("Message consumption failed", log.FieldError, err)
		}
	}()

	// Periodic safety net for missed messages.
	ticker := time.NewTicker(cfg.MirrorInterval)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := mirror.Snapshot(ctx); err != nil {
					logger.Error("Periodic snapshot failed", log.FieldError, err)
				}
			}
		}
	}()

	logger.Info("Worker running",
		"backup_dir", cfg.BackupDir,
		"keep", cfg.BackupKeep,
		"interval", cfg.MirrorInterval.String())

	cli.WaitForShutdown(ctx, done)
	logger.Info("Worker stopped")
}
