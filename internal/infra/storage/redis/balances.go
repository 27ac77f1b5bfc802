package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/gabapcia/txtrack/internal/pkg/logger"
	"github.com/gabapcia/txtrack/internal/pkg/resilience/retry"
	"github.com/gabapcia/txtrack/internal/txtrack"
)

// balancesRefreshChannel returns the Pub/Sub channel read by the balance-fetch
// workflow.
//
// Format: "txtrack:balances:refresh"
func balancesRefreshChannel() string {
	return fmt.Sprintf("%s:balances:refresh", keyPrefix)
}

// balancesRefreshRequest is the message published on balancesRefreshChannel.
type balancesRefreshRequest struct {
	Force       bool      `json:"force"`
	RequestedAt time.Time `json:"requestedAt"`
}

// RequestBalancesUpdate implements txtrack.BalanceRefresher. The publish is
// retried with backoff; the last error is returned once attempts run out.
func (c *client) RequestBalancesUpdate(ctx context.Context, force bool) error {
	payload, err := json.Marshal(balancesRefreshRequest{Force: force, RequestedAt: time.Now().UTC()})
	if err != nil {
		return err
	}

	onRetry := retry.WithOnRetry(func(attempt uint, err error) {
		logger.Debug(ctx, "retrying balances refresh request", "attempt", attempt+1, "error", err)
	})
	r := retry.New(slices.Concat(c.retryOpts, []retry.Option{onRetry})...)

	return r.Execute(ctx, func() error {
		return c.conn.Publish(ctx, balancesRefreshChannel(), payload).Err()
	})
}

var _ txtrack.BalanceRefresher = (*client)(nil)
