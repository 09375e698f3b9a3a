package interfaces

import (
	"context"
	"time"
)

// IFileSigner resolves a storage path to a short-lived read URL.
type IFileSigner interface {
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
}
