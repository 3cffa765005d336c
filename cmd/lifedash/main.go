package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"lifedash/internal/cli"
	"lifedash/internal/log"
	"lifedash/internal/store"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentCLI)

	// --yes skips confirmation prompts, for scripted use.
	args := os.Args[1:]
	assumeYes := false
	filtered := args[:0:0]
	for _, arg := range args {
		if arg == "--yes" || arg == "-yes" {
			assumeYes = true
			continue
		}
		filtered = append(filtered, arg)
	}

	cfg := cli.LoadAndValidateConfig(logger)
	medium, cleanup := cli.OpenMedium(logger, cfg)
	if cleanup != nil {
		defer cleanup()
	}

	// A nil *amqp.Client must not end up inside the Publisher interface.
	var pub store.Publisher
	if amqpClient := cli.OpenAMQP(logger, cfg); amqpClient != nil {
		defer amqpClient.Close()
		pub = amqpClient
	}

	ctx := context.Background()
	app := &cli.App{
		Store:     cli.OpenStore(ctx, logger, medium, pub),
		Config:    cfg,
		In:        os.Stdin,
		Out:       os.Stdout,
		Now:       time.Now,
		AssumeYes: assumeYes,
	}

	if err := app.Run(ctx, filtered); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
