// Package redis shares txtrack state with other processes: store changes and
// balance refresh requests are published on Pub/Sub channels, and transaction
// watches are claimed with expiring keys.
package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/txtrack/internal/pkg/resilience/retry"

	redis "github.com/redis/go-redis/v9"
)

// keyPrefix namespaces every key and channel used by this package.
const keyPrefix = "txtrack"

type client struct {
	conn      *redis.Client
	retryOpts []retry.Option

	claimsMu sync.Mutex
	claims   map[string]string // hash -> token of the watch claims held
}

type config struct {
	retryAttempts uint
	retryDelay    time.Duration
}

// Option configures NewClient.
type Option func(*config)

// WithRetryAttempts sets how many times a balance refresh request is
// attempted, including the first one.
//
// Default: 3.
func WithRetryAttempts(n uint) Option {
	return func(c *config) {
		c.retryAttempts = n
	}
}

// WithRetryDelay sets the base delay between balance refresh attempts.
//
// Default: 200 milliseconds.
func WithRetryDelay(d time.Duration) Option {
	return func(c *config) {
		c.retryDelay = d
	}
}

func (c *client) Close() error {
	return c.conn.Close()
}

func newClient(conn *redis.Client, opts ...Option) *client {
	cfg := config{
		retryAttempts: 3,
		retryDelay:    200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:   conn,
		claims: make(map[string]string),
		retryOpts: []retry.Option{
			retry.WithAttempts(cfg.retryAttempts),
			retry.WithDelay(cfg.retryDelay),
			retry.WithMaxDelay(2 * time.Second),
		},
	}
}

// NewClient connects to the Redis server at addr and checks it with a PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}

	return newClient(conn, opts...), nil
}
