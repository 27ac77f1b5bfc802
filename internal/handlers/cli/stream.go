package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/txtrack/internal/pkg/logger"
	"github.com/gabapcia/txtrack/internal/txtrack"

	"github.com/urfave/cli/v3"
)

// output returns the writer configured on the root command.
func output(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}

// withInterrupt returns a context canceled on SIGINT or SIGTERM, so an
// interrupted watch is recorded like any other failure.
func withInterrupt(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}

// streamChanges writes every change published by svc to w as a JSON line.
// The returned function stops the stream and waits for buffered changes to be
// written.
func streamChanges(ctx context.Context, svc txtrack.Service, w io.Writer) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	changes := svc.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)

		enc := json.NewEncoder(w)
		for change := range changes {
			if err := enc.Encode(change); err != nil {
				logger.Warn(ctx, "error writing change", "error", err)
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
