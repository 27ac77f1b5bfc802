package cli

import (
	"context"
	"os"

	"github.com/gabapcia/txtrack/internal/txtrack"

	"github.com/urfave/cli/v3"
)

// DepositHandleFactory builds the handle that follows a deposit given its
// source-chain transaction hash.
type DepositHandleFactory func(sourceTxHash string) txtrack.DepositHandle

// Run initializes and executes the txtrack CLI application.
//
// It registers all available commands, including:
//
//   - `watch`: Follows a transaction until it is verified or fails.
//   - `watch-deposit`: Follows a deposit across the source and destination chains.
//
// Both commands print every store change as a JSON line while they run, and
// watch-deposit ends with a summary of the tracked deposits. Withdrawal links
// are not exposed here; they are recorded through txtrack.Store.LinkWithdrawal
// by the process that settles withdrawals.
func Run(ctx context.Context, svc txtrack.Service, deposits DepositHandleFactory) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txtrack",
		Description:           "Command-line interface for tracking wallet transactions and deposits.",
		Usage:                 "txtrack [command] [flags]",
		Commands: []*cli.Command{
			watchTransactionCommand(svc),
			watchDepositCommand(svc, deposits),
		},
	}

	return app.Run(ctx, os.Args)
}
