package ethereum

import (
	"context"

	"github.com/gabapcia/txtrack/internal/txtrack"
)

// depositHandle follows a deposit sent on a source chain and acknowledged
// under the same hash on a destination chain.
type depositHandle struct {
	source      txtrack.Notifier
	destination txtrack.Notifier
	hash        string
}

var _ txtrack.DepositHandle = (*depositHandle)(nil)

// NewDepositHandle returns a DepositHandle for the deposit hash. The source
// notifier confirms the deposit itself; the destination notifier confirms its
// receipt and verification.
func NewDepositHandle(source, destination txtrack.Notifier, hash string) *depositHandle {
	return &depositHandle{
		source:      source,
		destination: destination,
		hash:        hash,
	}
}

// SourceTxHash implements txtrack.DepositHandle.
func (d *depositHandle) SourceTxHash() string {
	return d.hash
}

// AwaitSourceCommit implements txtrack.DepositHandle.
func (d *depositHandle) AwaitSourceCommit(ctx context.Context) error {
	return d.source.NotifyTransaction(ctx, d.hash, txtrack.PhaseCommit)
}

// AwaitReceipt implements txtrack.DepositHandle.
func (d *depositHandle) AwaitReceipt(ctx context.Context) error {
	return d.destination.NotifyTransaction(ctx, d.hash, txtrack.PhaseCommit)
}

// AwaitVerifyReceipt implements txtrack.DepositHandle.
func (d *depositHandle) AwaitVerifyReceipt(ctx context.Context) error {
	return d.destination.NotifyTransaction(ctx, d.hash, txtrack.PhaseVerify)
}
