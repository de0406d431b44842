package ratelimit

import "context"

// Limiter decides whether the client identified by key may make another
// request in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
