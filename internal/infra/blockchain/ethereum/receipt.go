package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txtrack/internal/pkg/logger"
	"github.com/gabapcia/txtrack/internal/pkg/types"
	"github.com/gabapcia/txtrack/internal/pkg/validator"
	"github.com/gabapcia/txtrack/internal/pkg/x/chflow"
	"github.com/gabapcia/txtrack/internal/txtrack"
)

var (
	// ErrTransactionReverted is returned when the receipt reports a failed execution.
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrUnknownPhase is returned for a phase the client cannot wait for.
	ErrUnknownPhase = errors.New("unknown confirmation phase")

	// ErrInvalidTxHash is returned for a hash that is not 0x followed by 64 hex digits.
	ErrInvalidTxHash = errors.New("invalid transaction hash")
)

// notifyRequest holds the NotifyTransaction input checked before polling.
type notifyRequest struct {
	Hash string `validate:"txhash"`
}

// ReceiptResponse is the subset of an eth_getTransactionReceipt result used to
// follow confirmations.
type ReceiptResponse struct {
	TransactionHash string    `json:"transactionHash"`
	BlockHash       string    `json:"blockHash"`
	BlockNumber     types.Hex `json:"blockNumber"`
	Status          types.Hex `json:"status"`
}

// reverted reports whether the receipt carries the failed execution status.
// Pre-Byzantium receipts have no status and are treated as successful.
func (r *ReceiptResponse) reverted() bool {
	return !r.Status.IsEmpty() && r.Status.Uint64() == 0
}

// getTransactionReceipt returns the receipt of hash, or nil while the
// transaction is still pending.
func (c *client) getTransactionReceipt(ctx context.Context, hash string) (*ReceiptResponse, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionReceipt", hash)
	if err != nil {
		return nil, err
	}

	var receipt *ReceiptResponse
	if err := json.Unmarshal(data, &receipt); err != nil {
		return nil, fmt.Errorf("decoding receipt: %w", err)
	}

	return receipt, nil
}

// getLatestBlockNumber fetches the latest block number from the Ethereum node.
func (c *client) getLatestBlockNumber(ctx context.Context) (types.Hex, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return "", err
	}

	var blockNumber types.Hex
	return blockNumber, json.Unmarshal(data, &blockNumber)
}

// requiredConfirmations maps phase to the confirmations it needs.
func (c *client) requiredConfirmations(phase txtrack.Phase) (uint64, error) {
	switch phase {
	case txtrack.PhaseCommit:
		return c.commitConfirmations, nil
	case txtrack.PhaseVerify:
		return c.verifyConfirmations, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPhase, phase)
	}
}

// confirmations returns how many confirmations hash has. It is zero while the
// transaction is pending.
func (c *client) confirmations(ctx context.Context, hash string) (uint64, error) {
	receipt, err := c.getTransactionReceipt(ctx, hash)
	if err != nil {
		return 0, err
	}

	if receipt == nil || receipt.BlockNumber.IsEmpty() {
		return 0, nil
	}

	if receipt.reverted() {
		return 0, fmt.Errorf("%w: %s in block %s", ErrTransactionReverted, hash, receipt.BlockNumber)
	}

	latest, err := c.getLatestBlockNumber(ctx)
	if err != nil {
		return 0, err
	}

	return receipt.BlockNumber.ConfirmationsAt(latest), nil
}

// poll returns the confirmations of hash, retrying failed requests. A revert
// is returned without retrying.
func (c *client) poll(ctx context.Context, hash string) (uint64, error) {
	var got uint64
	err := c.retrier.Execute(ctx, func() error {
		var err error
		got, err = c.confirmations(ctx, hash)
		return err
	})

	return got, err
}

// NotifyTransaction implements txtrack.Notifier. It polls the receipt of hash
// until the confirmations required by phase are reached, the transaction
// reverts, or ctx is done. A failed poll is retried on the next tick; the
// last error is returned once maxFailedPolls polls in a row have failed.
func (c *client) NotifyTransaction(ctx context.Context, hash string, phase txtrack.Phase) error {
	if err := validator.Validate(notifyRequest{Hash: hash}); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTxHash, hash)
	}

	required, err := c.requiredConfirmations(phase)
	if err != nil {
		return err
	}

	failedPolls := 0
	for {
		got, err := c.poll(ctx, hash)
		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.Is(err, ErrTransactionReverted):
			return err
		case err != nil:
			failedPolls++
			if failedPolls >= c.maxFailedPolls {
				return fmt.Errorf("polling receipt after %d failed attempts: %w", failedPolls, err)
			}

			logger.Warn(ctx, "error polling transaction receipt",
				"tx.phase", phase,
				"poll.failures", failedPolls,
				"error", err,
			)
		case got >= required:
			logger.Debug(ctx, "transaction reached phase",
				"tx.phase", phase,
				"tx.confirmations", got,
			)
			return nil
		default:
			failedPolls = 0
		}

		if _, ok := chflow.Receive(ctx, time.After(c.pollInterval)); !ok {
			return ctx.Err()
		}
	}
}
