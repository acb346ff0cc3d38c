package interfaces

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
)

// Limiter throttles the claim endpoints. Allow returns an error when the
// key has exhausted its window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) error
}
