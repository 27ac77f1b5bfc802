package txtrack

import (
	"context"
	"errors"
	"time"
)

// ErrAlreadyWatching is returned by Watch when the transaction is already
// being followed, in this process or, with a WatchGuard, in another one.
var ErrAlreadyWatching = errors.New("transaction already being watched")

// Notifier waits for a transaction to reach a confirmation phase.
type Notifier interface {
	// NotifyTransaction blocks until hash reaches phase, and returns an error if
	// the provider reports a failure or ctx is done first.
	NotifyTransaction(ctx context.Context, hash string, phase Phase) error
}

// DepositHandle follows a deposit across the source and destination chains.
// Each Await method blocks until its stage is reached or returns an error.
type DepositHandle interface {
	// SourceTxHash is the deposit transaction hash on the source chain.
	SourceTxHash() string

	// AwaitSourceCommit waits for the deposit to be committed on the source chain.
	AwaitSourceCommit(ctx context.Context) error

	// AwaitReceipt waits for the destination chain to acknowledge the deposit.
	AwaitReceipt(ctx context.Context) error

	// AwaitVerifyReceipt waits for the destination chain to verify the deposit.
	AwaitVerifyReceipt(ctx context.Context) error
}

// BalanceRefresher asks the balance-fetch workflow to reload balances.
//
// Requests are fire-and-forget: a returned error is logged and never changes
// the outcome of the workflow that triggered it.
type BalanceRefresher interface {
	RequestBalancesUpdate(ctx context.Context, force bool) error
}

// WatchGuard coordinates transaction watches across processes sharing a
// wallet, so a hash is polled by a single process at a time.
type WatchGuard interface {
	// ClaimTransactionWatch reserves hash for ttl. It returns ErrAlreadyWatching
	// when another process holds the claim.
	ClaimTransactionWatch(ctx context.Context, hash string, ttl time.Duration) error

	// ReleaseTransactionWatch drops the claim on hash.
	ReleaseTransactionWatch(ctx context.Context, hash string) error
}

// nopBalanceRefresher discards refresh requests.
type nopBalanceRefresher struct{}

var _ BalanceRefresher = nopBalanceRefresher{}

func (nopBalanceRefresher) RequestBalancesUpdate(context.Context, bool) error { return nil }

// nopWatchGuard grants every claim; the in-process check in the Store still applies.
type nopWatchGuard struct{}

var _ WatchGuard = nopWatchGuard{}

func (nopWatchGuard) ClaimTransactionWatch(context.Context, string, time.Duration) error { return nil }

func (nopWatchGuard) ReleaseTransactionWatch(context.Context, string) error { return nil }
