package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/txtrack/internal/txtrack"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

// releaseClaimScript deletes KEYS[1] only while it still holds ARGV[1], so an
// expired claim taken over by another process is left alone.
var releaseClaimScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// watchClaimKey builds the key reserving a transaction watch.
//
// Format: "txtrack:watch:{hash}"
func watchClaimKey(hash string) string {
	return fmt.Sprintf("%s:watch:%s", keyPrefix, hash)
}

// ClaimTransactionWatch implements txtrack.WatchGuard with SETNX, so only one
// process follows hash until the claim is released or ttl expires. The key
// holds a token unique to this claim.
func (c *client) ClaimTransactionWatch(ctx context.Context, hash string, ttl time.Duration) error {
	token := uuid.NewString()

	ok, err := c.conn.SetNX(ctx, watchClaimKey(hash), token, ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return txtrack.ErrAlreadyWatching
	}

	c.claimsMu.Lock()
	c.claims[hash] = token
	c.claimsMu.Unlock()

	return nil
}

// ReleaseTransactionWatch implements txtrack.WatchGuard. Only a claim taken by
// this client is deleted.
func (c *client) ReleaseTransactionWatch(ctx context.Context, hash string) error {
	c.claimsMu.Lock()
	token, ok := c.claims[hash]
	delete(c.claims, hash)
	c.claimsMu.Unlock()

	if !ok {
		return nil
	}

	return releaseClaimScript.Run(ctx, c.conn, []string{watchClaimKey(hash)}, token).Err()
}

var _ txtrack.WatchGuard = (*client)(nil)
