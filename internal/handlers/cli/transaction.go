package cli

import (
	"context"

	"github.com/gabapcia/txtrack/internal/txtrack"

	"github.com/urfave/cli/v3"
)

// watchTransactionCommand returns a CLI command that follows a transaction
// through its confirmation phases.
//
// Usage example:
//
//	txtrack watch --hash 0xABC123... [--existing]
func watchTransactionCommand(svc txtrack.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Follow a transaction until it is verified or fails.",
		Usage:       "Watches a transaction hash. Use --existing when it is already committed.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "hash",
				Usage:    "Transaction hash to watch",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "existing",
				Usage: "Skip the commit wait for an already committed transaction",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			stop := streamChanges(ctx, svc, output(c))
			defer stop()

			watchCtx, stopSignals := withInterrupt(ctx)
			defer stopSignals()

			return svc.Watch(watchCtx, c.String("hash"), c.Bool("existing"))
		},
	}
}
