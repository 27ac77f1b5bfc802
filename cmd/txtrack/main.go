package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/txtrack/internal/config"
	"github.com/gabapcia/txtrack/internal/handlers/cli"
	"github.com/gabapcia/txtrack/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/txtrack/internal/infra/storage/redis"
	"github.com/gabapcia/txtrack/internal/pkg/logger"
	"github.com/gabapcia/txtrack/internal/pkg/telemetry"
	"github.com/gabapcia/txtrack/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txtrack/internal/txtrack"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newNotifier(chain config.Chain) txtrack.Notifier {
	conn := jsonrpc.NewClient(chain.RPCURL,
		jsonrpc.WithTimeout(chain.RPCTimeout),
		jsonrpc.WithRetryMax(chain.RPCRetryMax),
	)

	return ethereum.NewClient(conn,
		ethereum.WithPollInterval(chain.PollInterval),
		ethereum.WithCommitConfirmations(chain.CommitConfirmations),
		ethereum.WithVerifyConfirmations(chain.VerifyConfirmations),
		ethereum.WithMaxFailedPolls(chain.PollMaxFailures),
	)
}

func run(ctx context.Context, cfg config.Config) error {
	shutdown, err := telemetry.Init(ctx, cfg.ServiceName,
		telemetry.WithEnabled(cfg.TelemetryEnabled),
		telemetry.WithServiceVersion(version),
	)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "error shutting down telemetry", "error", err)
		}
	}()

	policy, err := txtrack.ParseFailurePolicy(cfg.FailurePolicy)
	if err != nil {
		return err
	}

	var (
		storeOpts   []txtrack.StoreOption
		serviceOpts = []txtrack.Option{
			txtrack.WithFailurePolicy(policy),
			txtrack.WithWatchTTL(cfg.WatchTTL),
		}
	)

	if cfg.Redis.Addr != "" {
		rc, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithRetryAttempts(cfg.Redis.RetryAttempts),
			redis.WithRetryDelay(cfg.Redis.RetryDelay),
		)
		if err != nil {
			return err
		}
		defer rc.Close()

		storeOpts = append(storeOpts, txtrack.WithChangePublisher(rc))
		serviceOpts = append(serviceOpts,
			txtrack.WithBalanceRefresher(rc),
			txtrack.WithWatchGuard(rc),
		)
	}

	var (
		source      = newNotifier(cfg.Source)
		destination = newNotifier(cfg.Destination)
		store       = txtrack.NewStore(storeOpts...)
		svc         = txtrack.New(store, destination, serviceOpts...)
	)

	deposits := func(hash string) txtrack.DepositHandle {
		return ethereum.NewDepositHandle(source, destination, hash)
	}

	return cli.Run(ctx, svc, deposits)
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(ctx, cfg); err != nil {
		logger.Fatal(ctx, "txtrack failed", "error", err)
	}
}
