package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/txtrack/internal/txtrack"
)

// changesChannel returns the Pub/Sub channel carrying store changes.
//
// Format: "txtrack:changes"
func changesChannel() string {
	return fmt.Sprintf("%s:changes", keyPrefix)
}

// PublishChange implements txtrack.ChangePublisher. The change is published as
// JSON; subscribers that miss a message resynchronize from its version.
func (c *client) PublishChange(ctx context.Context, change txtrack.Change) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return err
	}

	return c.conn.Publish(ctx, changesChannel(), payload).Err()
}

var _ txtrack.ChangePublisher = (*client)(nil)
