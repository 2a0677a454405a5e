package ports

import "context"

// RateLimiter decides whether an action identified by key is permitted right
// now under a sliding time window shared across all service instances.
type RateLimiter interface {
	// Allow atomically checks and consumes one unit of quota for key. A
	// permitted call spends the unit regardless of what the caller does
	// afterward; a denied call spends nothing. A non-nil error means the
	// counter store could not be reached and the caller must fail closed.
	Allow(ctx context.Context, key string) (bool, error)
}
