package txtrack

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/txtrack/internal/pkg/logger"
	"github.com/gabapcia/txtrack/internal/pkg/validator"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	workflowTransaction = "transaction"
	workflowDeposit     = "deposit"
)

type watchRequest struct {
	Hash string `validate:"required"`
}

type depositRequest struct {
	Hash        string `validate:"required"`
	TokenSymbol string `validate:"required"`
	Amount      string `validate:"amount"`
}

// requestBalancesUpdate forwards a forced refresh and only logs failures.
func (s *service) requestBalancesUpdate(ctx context.Context) {
	if err := s.balances.RequestBalancesUpdate(ctx, true); err != nil {
		logger.Warn(ctx, "error requesting balances update", "error", err)
	}
}

// finish records the workflow outcome on the span and the outcome counter.
func (s *service) finish(ctx context.Context, span trace.Span, workflow string, status Status, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.SetAttributes(attribute.String("txtrack.status", string(status)))
	s.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("workflow", workflow),
		attribute.String("status", string(status)),
	))
}

// watchTransaction walks hash through COMMIT and VERIFY.
func (s *service) watchTransaction(ctx context.Context, hash string, existing bool) error {
	if !existing {
		if err := s.notifier.NotifyTransaction(ctx, hash, PhaseCommit); err != nil {
			return fmt.Errorf("awaiting commit: %w", err)
		}

		s.store.RecordStatus(ctx, hash, StatusCommited)
		s.requestBalancesUpdate(ctx)
	} else {
		s.store.RecordStatus(ctx, hash, StatusCommited)
	}

	if err := s.notifier.NotifyTransaction(ctx, hash, PhaseVerify); err != nil {
		return fmt.Errorf("awaiting verification: %w", err)
	}

	s.store.RecordStatus(ctx, hash, StatusVerified)
	s.requestBalancesUpdate(ctx)
	return nil
}

// Watch implements Service.
func (s *service) Watch(ctx context.Context, hash string, existing bool) error {
	if err := validator.Validate(watchRequest{Hash: hash}); err != nil {
		return err
	}

	if !s.store.claimWatch(hash) {
		return ErrAlreadyWatching
	}
	defer s.store.releaseWatch(hash)

	ctx = logger.Derive(ctx, "tx.hash", hash, "tx.existing", existing)

	if err := s.guard.ClaimTransactionWatch(ctx, hash, s.watchTTL); err != nil {
		return err
	}
	defer func() {
		if err := s.guard.ReleaseTransactionWatch(context.WithoutCancel(ctx), hash); err != nil {
			logger.Warn(ctx, "error releasing transaction watch claim", "error", err)
		}
	}()

	ctx, span := s.tracer.Start(ctx, "txtrack.Watch", trace.WithAttributes(
		attribute.String("tx.hash", hash),
		attribute.Bool("tx.existing", existing),
	))
	defer span.End()

	logger.Debug(ctx, "transaction watch started")

	if err := s.watchTransaction(ctx, hash, existing); err != nil {
		status := s.failurePolicy.terminalStatus()
		s.store.RecordStatus(context.WithoutCancel(ctx), hash, status)

		logger.Error(ctx, "transaction watch failed",
			"tx.status", status,
			"aborted", errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded),
			"error", err,
		)
		s.finish(ctx, span, workflowTransaction, status, err)
		return fmt.Errorf("watch transaction %s: %w", hash, err)
	}

	logger.Info(ctx, "transaction verified")
	s.finish(ctx, span, workflowTransaction, StatusVerified, nil)
	return nil
}

// watchDeposit walks a recorded deposit through the three handle stages.
func (s *service) watchDeposit(ctx context.Context, handle DepositHandle, tokenSymbol, hash string) error {
	if err := handle.AwaitSourceCommit(ctx); err != nil {
		return fmt.Errorf("awaiting source commit: %w", err)
	}
	s.requestBalancesUpdate(ctx)

	if err := handle.AwaitReceipt(ctx); err != nil {
		return fmt.Errorf("awaiting receipt: %w", err)
	}
	s.requestBalancesUpdate(ctx)
	s.store.RecordDeposit(ctx, DepositUpdate{TokenSymbol: tokenSymbol, Hash: hash, Status: StatusCommited})

	if err := handle.AwaitVerifyReceipt(ctx); err != nil {
		return fmt.Errorf("awaiting verified receipt: %w", err)
	}
	s.requestBalancesUpdate(ctx)
	s.store.RecordDeposit(ctx, DepositUpdate{TokenSymbol: tokenSymbol, Hash: hash, Status: StatusVerified})

	return nil
}

// WatchDeposit implements Service.
func (s *service) WatchDeposit(ctx context.Context, handle DepositHandle, tokenSymbol, amount string) error {
	hash := handle.SourceTxHash()
	if err := validator.Validate(depositRequest{Hash: hash, TokenSymbol: tokenSymbol, Amount: amount}); err != nil {
		return err
	}

	ctx = logger.Derive(ctx, "tx.hash", hash, "token.symbol", tokenSymbol)
	ctx, span := s.tracer.Start(ctx, "txtrack.WatchDeposit", trace.WithAttributes(
		attribute.String("tx.hash", hash),
		attribute.String("token.symbol", tokenSymbol),
	))
	defer span.End()

	s.store.RecordDeposit(ctx, DepositUpdate{
		TokenSymbol:   tokenSymbol,
		Hash:          hash,
		Amount:        amount,
		Status:        StatusInitiated,
		Confirmations: 1,
	})

	if err := s.watchDeposit(ctx, handle, tokenSymbol, hash); err != nil {
		status := s.failurePolicy.terminalStatus()
		s.store.RecordDeposit(context.WithoutCancel(ctx), DepositUpdate{TokenSymbol: tokenSymbol, Hash: hash, Status: status})

		logger.Error(ctx, "deposit watch failed", "deposit.status", status, "error", err)
		s.finish(ctx, span, workflowDeposit, status, err)
		return fmt.Errorf("watch deposit %s: %w", hash, err)
	}

	logger.Info(ctx, "deposit verified", "deposit.amount", amount)
	s.finish(ctx, span, workflowDeposit, StatusVerified, nil)
	return nil
}
