package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"localekit/internal/adapters/cli"
	"localekit/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "localekit:", err)
		os.Exit(cli.ExitFailure)
	}

	level := zap.NewAtomicLevelAt(cfg.Level())
	zcfg := zap.NewProductionConfig()
	zcfg.Level = level
	logger, err := zcfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "localekit: failed to initialize logger:", err)
		os.Exit(cli.ExitFailure)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = cli.NewApp(cfg, logger, level, os.Stdout).Execute(ctx, os.Args[1:])
	stop()
	_ = logger.Sync()

	if err != nil {
		fmt.Fprintln(os.Stderr, "localekit:", err)
		os.Exit(cli.ExitCode(err))
	}
}
