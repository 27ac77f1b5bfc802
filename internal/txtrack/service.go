package txtrack

import (
	"context"
	"math/big"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/gabapcia/txtrack/internal/txtrack"

	// defaultWatchTTL bounds a cross-process watch claim; verification on
	// Ethereum mainnet normally finishes well within it.
	defaultWatchTTL = 30 * time.Minute
)

// Service runs the watch workflows on top of a Store.
type Service interface {
	// Watch follows hash until it is verified or fails. With existing set, the
	// transaction is known to be committed and the commit wait is skipped.
	//
	// It returns ErrAlreadyWatching if hash is already being followed, and the
	// provider error once the failure policy has been applied.
	Watch(ctx context.Context, hash string, existing bool) error

	// WatchDeposit records the deposit as initiated and follows it until it is
	// verified on the destination chain or fails.
	WatchDeposit(ctx context.Context, handle DepositHandle, tokenSymbol, amount string) error

	// Subscribe streams store changes until ctx is done.
	Subscribe(ctx context.Context) <-chan Change

	// Deposits returns a copy of the tracked deposits.
	Deposits() DepositsSnapshot

	// ActiveDepositTotal sums the amounts of deposits awaiting verification, per token.
	ActiveDepositTotal() map[string]*big.Int
}

type service struct {
	store         *Store
	notifier      Notifier
	balances      BalanceRefresher
	guard         WatchGuard
	watchTTL      time.Duration
	failurePolicy FailurePolicy

	tracer   trace.Tracer
	outcomes metric.Int64Counter
}

var _ Service = (*service)(nil)

type config struct {
	balances      BalanceRefresher
	guard         WatchGuard
	watchTTL      time.Duration
	failurePolicy FailurePolicy
}

// Option configures New.
type Option func(*config)

// New returns a Service mutating store and waiting on n for transaction phases.
func New(store *Store, n Notifier, opts ...Option) *service {
	cfg := config{
		balances:      nopBalanceRefresher{},
		guard:         nopWatchGuard{},
		watchTTL:      defaultWatchTTL,
		failurePolicy: FailureMarksFailed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	outcomes, err := otel.Meter(instrumentationName).Int64Counter(
		"txtrack.workflow.outcomes",
		metric.WithDescription("Watch workflows finished, by workflow and terminal status."),
	)
	if err != nil {
		outcomes = noop.Int64Counter{}
	}

	return &service{
		store:         store,
		notifier:      n,
		balances:      cfg.balances,
		guard:         cfg.guard,
		watchTTL:      cfg.watchTTL,
		failurePolicy: cfg.failurePolicy,
		tracer:        otel.Tracer(instrumentationName),
		outcomes:      outcomes,
	}
}

// Subscribe implements Service.
func (s *service) Subscribe(ctx context.Context) <-chan Change {
	return s.store.Subscribe(ctx)
}

// Deposits implements Service.
func (s *service) Deposits() DepositsSnapshot {
	return s.store.Deposits()
}

// ActiveDepositTotal implements Service.
func (s *service) ActiveDepositTotal() map[string]*big.Int {
	return s.store.ActiveDepositTotal()
}

// WithBalanceRefresher sets the sink for balance refresh requests.
// Default: requests are discarded.
func WithBalanceRefresher(b BalanceRefresher) Option {
	return func(c *config) {
		c.balances = b
	}
}

// WithWatchGuard sets the cross-process claim used by Watch.
// Default: a guard that grants every claim.
func WithWatchGuard(g WatchGuard) Option {
	return func(c *config) {
		c.guard = g
	}
}

// WithWatchTTL sets how long a WatchGuard claim lives. Default: 30 minutes.
func WithWatchTTL(d time.Duration) Option {
	return func(c *config) {
		c.watchTTL = d
	}
}

// WithFailurePolicy selects the terminal status of failed workflows.
// Default: FailureMarksFailed.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(c *config) {
		c.failurePolicy = p
	}
}

// WithOptimisticFailure is shorthand for WithFailurePolicy(FailureMarksVerified).
func WithOptimisticFailure() Option {
	return WithFailurePolicy(FailureMarksVerified)
}
