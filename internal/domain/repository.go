package domain

import (
	"context"
	"time"
)

// ChatClient is the LLM collaborator. One call is one completion attempt;
// callers needing resilience retry the whole recommendation.
type ChatClient interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// CatalogSource provides a catalog snapshot.
type CatalogSource interface {
	Products(ctx context.Context) ([]Product, error)
}

// CacheRepository defines the interface for caching recommendation results
type CacheRepository interface {
	Get(ctx context.Context, key string) (*Recommendation, error)
	Set(ctx context.Context, key string, value *Recommendation, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
