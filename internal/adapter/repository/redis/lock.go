package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sync runs against the same document must not interleave. RunLock serializes
// them across processes with a plain SetNX lease; release is guarded so an
// expired lease taken over by another holder is never deleted.
type RunLock struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// NewRunLock creates a RunLock. The TTL bounds how long a crashed holder can
// block the next run.
func NewRunLock(client *redis.Client, ttl time.Duration) *RunLock {
	return &RunLock{
		client: client,
		key:    "dwh:sync:lock",
		ttl:    ttl,
	}
}

// Acquire takes the lock for holder. Returns false when another holder owns it.
func (l *RunLock) Acquire(ctx context.Context, holder string) (bool, error) {
	return l.client.SetNX(ctx, l.key, holder, l.ttl).Result()
}

// Release frees the lock if holder still owns it.
func (l *RunLock) Release(ctx context.Context, holder string) error {
	return releaseScript.Run(ctx, l.client, []string{l.key}, holder).Err()
}
