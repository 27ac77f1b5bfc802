package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/gabapcia/txtrack/internal/pkg/logger"
	"github.com/gabapcia/txtrack/internal/txtrack"

	"github.com/urfave/cli/v3"
)

// depositSummary is the last line printed by watch-deposit.
type depositSummary struct {
	Version      uint64                       `json:"version"`
	Deposits     map[string][]txtrack.Deposit `json:"deposits"`
	ActiveTotals map[string]string            `json:"activeTotals"`
}

// writeDepositSummary writes the tracked deposits and the per-token totals of
// those still awaiting verification to w as a JSON line.
func writeDepositSummary(w io.Writer, svc txtrack.Service) error {
	snapshot := svc.Deposits()

	totals := make(map[string]string)
	for token, total := range svc.ActiveDepositTotal() {
		totals[token] = total.String()
	}

	return json.NewEncoder(w).Encode(depositSummary{
		Version:      snapshot.Version,
		Deposits:     snapshot.ByToken,
		ActiveTotals: totals,
	})
}

// watchDepositCommand returns a CLI command that records a deposit and follows
// it until the destination chain verifies it. Once the watch ends it prints a
// summary of the tracked deposits.
//
// Usage example:
//
//	txtrack watch-deposit --hash 0xABC123... --token ETH --amount 1000000000000000000
func watchDepositCommand(svc txtrack.Service, deposits DepositHandleFactory) *cli.Command {
	return &cli.Command{
		Name:        "watch-deposit",
		Description: "Record a deposit and follow it across the source and destination chains.",
		Usage:       "Watches a deposit. Amount is a base-10 integer in the token's smallest unit.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "hash",
				Usage:    "Deposit transaction hash on the source chain",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "token",
				Usage:    "Token symbol (e.g., ETH, USDC)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "Deposited amount in the token's smallest unit",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			w := output(c)
			stop := streamChanges(ctx, svc, w)

			watchCtx, stopSignals := withInterrupt(ctx)
			handle := deposits(c.String("hash"))
			err := svc.WatchDeposit(watchCtx, handle, c.String("token"), c.String("amount"))
			stopSignals()
			stop()

			if err := writeDepositSummary(w, svc); err != nil {
				logger.Warn(ctx, "error writing deposit summary", "error", err)
			}

			return err
		},
	}
}
