package redis

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

const limiterKeyPrefix = "ratelimit:"

// slidingWindowScript atomically evicts entries older than the trailing
// window, then admits the call only when capacity remains. Admitted calls are
// recorded in the sorted set; denied calls leave the set untouched so a
// rejection never spends quota. Runs server-side so concurrent requests from
// many service instances cannot both take the last unit.
//
// KEYS[1] = limiter key
// ARGV[1] = now (unix milliseconds)
// ARGV[2] = window (milliseconds)
// ARGV[3] = max requests per window
// ARGV[4] = unique member for this attempt
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, 0, now - window)
if redis.call('ZCARD', key) >= limit then
  return 0
end
redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window)
return 1
`)

// SlidingWindowLimiter is a Redis-backed rate limiter with true sliding
// window semantics: the eligible count is computed over the trailing window
// from now, not reset at fixed clock boundaries.
type SlidingWindowLimiter struct {
	client *redis.Client
	window time.Duration
	limit  int
}

// NewSlidingWindowLimiter creates a limiter admitting at most limit calls per
// key within any trailing window.
func NewSlidingWindowLimiter(client *redis.Client, window time.Duration, limit int) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{client: client, window: window, limit: limit}
}

// Allow reports whether one more call under key is permitted right now, and
// consumes one unit of quota when it is. Any Redis failure is returned as an
// error so the caller can fail closed.
func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now().UnixMilli()
	member := fmt.Sprintf("%d-%04d", now, rand.Intn(10000))

	res, err := slidingWindowScript.Run(ctx, l.client,
		[]string{limiterKeyPrefix + key},
		now, l.window.Milliseconds(), l.limit, member,
	).Int()
	if err != nil {
		return false, fmt.Errorf("rate limit eval: %w", err)
	}
	return res == 1, nil
}
