package usecase

import (
	"context"
	"time"
)

// SearchCache is the slice of the Redis wrapper the search usecase needs.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

// SearchInvalidator drops cached search pages after a catalog mutation.
type SearchInvalidator interface {
	InvalidateJobSearch(ctx context.Context) error
}
