// Package ethereum follows transactions on Ethereum-compatible nodes through
// JSON-RPC receipt polling. It provides the txtrack.Notifier and
// txtrack.DepositHandle implementations.
package ethereum

import (
	"errors"
	"time"

	"github.com/gabapcia/txtrack/internal/pkg/resilience/retry"
	"github.com/gabapcia/txtrack/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txtrack/internal/txtrack"
)

const (
	// averageBlockTime is the expected time between blocks in Ethereum.
	averageBlockTime = 12 * time.Second

	// defaultVerifyConfirmations approximates two epochs, after which a block
	// is finalized.
	defaultVerifyConfirmations = 64

	// defaultMaxFailedPolls is how many polls in a row may fail before the
	// watch gives up.
	defaultMaxFailedPolls = 5
)

type client struct {
	conn                jsonrpc.Client
	pollInterval        time.Duration
	commitConfirmations uint64
	verifyConfirmations uint64
	maxFailedPolls      int
	retrier             retry.Retry
}

var _ txtrack.Notifier = (*client)(nil)

type config struct {
	pollInterval        time.Duration
	commitConfirmations uint64
	verifyConfirmations uint64
	maxFailedPolls      int
	retryAttempts       uint
	retryDelay          time.Duration
}

// Option configures NewClient.
type Option func(*config)

// NewClient returns a Notifier polling the node behind conn.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	cfg := config{
		pollInterval:        averageBlockTime,
		commitConfirmations: 1,
		verifyConfirmations: defaultVerifyConfirmations,
		maxFailedPolls:      defaultMaxFailedPolls,
		retryAttempts:       3,
		retryDelay:          time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:                conn,
		pollInterval:        cfg.pollInterval,
		commitConfirmations: max(cfg.commitConfirmations, 1),
		verifyConfirmations: max(cfg.verifyConfirmations, 1),
		maxFailedPolls:      max(cfg.maxFailedPolls, 1),
		retrier: retry.New(
			retry.WithAttempts(max(cfg.retryAttempts, 1)),
			retry.WithDelay(cfg.retryDelay),
			retry.WithMaxDelay(max(cfg.pollInterval, cfg.retryDelay)),
			retry.WithLastErrorOnly(true),
			retry.WithRetryIf(func(err error) bool {
				return !errors.Is(err, ErrTransactionReverted)
			}),
		),
	}
}

// WithPollInterval sets how often receipts are polled.
//
// Default: 12 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithCommitConfirmations sets the confirmations a transaction needs to be
// considered committed. Values below 1 are raised to 1.
//
// Default: 1.
func WithCommitConfirmations(n uint64) Option {
	return func(c *config) {
		c.commitConfirmations = n
	}
}

// WithVerifyConfirmations sets the confirmations a transaction needs to be
// considered verified. Values below 1 are raised to 1.
//
// Default: 64.
func WithVerifyConfirmations(n uint64) Option {
	return func(c *config) {
		c.verifyConfirmations = n
	}
}

// WithRetryAttempts sets how many times a single poll is attempted before it
// counts as failed. Values below 1 are raised to 1.
//
// Default: 3.
func WithRetryAttempts(n uint) Option {
	return func(c *config) {
		c.retryAttempts = n
	}
}

// WithRetryDelay sets the base delay between attempts of a single poll.
//
// Default: 1 second.
func WithRetryDelay(d time.Duration) Option {
	return func(c *config) {
		c.retryDelay = d
	}
}

// WithMaxFailedPolls sets how many polls in a row may fail before
// NotifyTransaction returns the last error. Values below 1 are raised to 1.
//
// Default: 5.
func WithMaxFailedPolls(n int) Option {
	return func(c *config) {
		c.maxFailedPolls = n
	}
}
