package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/snip20history/internal/config"
	"github.com/gabapcia/snip20history/internal/handlers/cli"
	"github.com/gabapcia/snip20history/internal/history"
	"github.com/gabapcia/snip20history/internal/infra/blockchain/secret"
	"github.com/gabapcia/snip20history/internal/infra/storage/redis"
	"github.com/gabapcia/snip20history/internal/keyring"
	"github.com/gabapcia/snip20history/internal/pkg/logger"
	"github.com/gabapcia/snip20history/internal/pkg/resilience/retry"
	"github.com/gabapcia/snip20history/internal/pkg/telemetry"
	"github.com/gabapcia/snip20history/internal/pkg/transport/http"
	"github.com/gabapcia/snip20history/internal/pkg/transport/jsonrpc"

	"go.uber.org/zap/zapcore"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx)
	stop()

	if err != nil {
		logger.Error(ctx, "snip20history failed", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	_ = logger.Sync()
}

func run(ctx context.Context) error {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return err
	}

	shutdown := telemetry.NopShutdown
	var logCores []zapcore.Core
	if cfg.Telemetry.Enabled {
		shutdown, err = telemetry.Init(ctx, cfg.Telemetry.ServiceName, version)
		if err != nil {
			return err
		}
		logCores = append(logCores, telemetry.LogCore(cfg.Telemetry.ServiceName))
	}

	if err := logger.Init(cfg.LogLevel, logCores...); err != nil {
		return errors.Join(err, shutdown(ctx))
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	storage, err := redis.NewClient(ctx,
		cfg.Redis.Addr,
		cfg.Redis.Username,
		cfg.Redis.Password,
		cfg.Redis.DB,
		redis.WithTokenInfoTTL(cfg.Redis.TokenInfoTTL),
	)
	if err != nil {
		return err
	}
	defer storage.Close()

	httpClient := http.NewClient(
		http.WithTimeout(cfg.Query.Timeout),
		http.WithRetryMax(cfg.Query.RetryMax),
	)
	conn := jsonrpc.NewClient(httpClient, cfg.Query.Endpoint, jsonrpc.WithHeader("X-API-Key", cfg.Query.APIKey))
	queryClient := secret.NewClient(conn)

	notifier := cli.NewNotifier(os.Stderr)

	keyringService := keyring.New(storage)
	historyService := history.New(cfg.ChainID, keyring.NewWallet(storage), queryClient,
		history.WithTokenInfoCache(storage),
		history.WithNotifier(notifier),
		history.WithPageSize(cfg.History.PageSize),
		history.WithRetry(retry.New(
			retry.WithAttempts(cfg.History.RetryAttempts),
			retry.WithDelay(cfg.History.RetryDelay),
			retry.WithRetryIf(history.Retryable),
		)),
	)

	return cli.Run(ctx, cfg.ChainID, keyringService, historyService, notifier)
}
