package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/ckan-client/internal/app"
	"github.com/samvad-hq/ckan-client/internal/config"
	"github.com/samvad-hq/ckan-client/internal/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ckan: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("ckan client starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	invoker, err := app.NewInvoker(cfg, log, stdout, args...)
	if err != nil {
		logger.ErrorObj("failed to initialize invoker", "error", err)
		return err
	}

	if err := invoker.Run(ctx); err != nil {
		return fmt.Errorf("invoker run: %w", err)
	}

	return nil
}
