// Package config loads txtrack settings from TXTRACK_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/txtrack/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// prefix is prepended to every variable name, e.g. TXTRACK_LOG_LEVEL.
const prefix = "TXTRACK"

// Chain holds the JSON-RPC settings of one chain.
type Chain struct {
	RPCURL              string        `envconfig:"RPC_URL" validate:"required,url"`
	RPCTimeout          time.Duration `envconfig:"RPC_TIMEOUT" default:"5s"`
	RPCRetryMax         int           `envconfig:"RPC_RETRY_MAX" default:"2" validate:"gte=0"`
	PollInterval        time.Duration `envconfig:"POLL_INTERVAL" default:"12s" validate:"gt=0"`
	CommitConfirmations uint64        `envconfig:"COMMIT_CONFIRMATIONS" default:"1" validate:"gte=1"`
	VerifyConfirmations uint64        `envconfig:"VERIFY_CONFIRMATIONS" default:"64" validate:"gte=1"`
	PollMaxFailures     int           `envconfig:"POLL_MAX_FAILURES" default:"5" validate:"gte=1"`
}

// Redis holds the optional Redis connection. An empty Addr disables every
// Redis-backed collaborator.
type Redis struct {
	Addr          string        `envconfig:"ADDR" validate:"omitempty,hostname_port"`
	Username      string        `envconfig:"USERNAME"`
	Password      string        `envconfig:"PASSWORD"`
	DB            int           `envconfig:"DB" default:"0" validate:"gte=0"`
	RetryAttempts uint          `envconfig:"RETRY_ATTEMPTS" default:"3" validate:"gte=1"`
	RetryDelay    time.Duration `envconfig:"RETRY_DELAY" default:"200ms"`
}

// Config is the complete process configuration.
type Config struct {
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string        `envconfig:"SERVICE_NAME" default:"txtrack" validate:"required"`
	TelemetryEnabled bool          `envconfig:"TELEMETRY_ENABLED" default:"false"`
	FailurePolicy    string        `envconfig:"FAILURE_POLICY" default:"failed" validate:"oneof=failed optimistic"`
	WatchTTL         time.Duration `envconfig:"WATCH_TTL" default:"30m" validate:"gt=0"`

	// Source is the chain deposits are sent from.
	Source Chain `envconfig:"SOURCE"`

	// Destination is the chain the wallet lives on. Transaction watches and
	// deposit receipts are followed there.
	Destination Chain `envconfig:"DESTINATION"`

	Redis Redis `envconfig:"REDIS"`
}

// Load reads and validates the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
