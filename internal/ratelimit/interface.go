package ratelimit

import "context"

// Limiter decides whether a request from the given client key is admitted.
// A rejected request must not refresh the client's window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
