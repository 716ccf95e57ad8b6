// internal/cache/cache.go
package cache

import (
	"context"
	"time"
)

// Cache guarda respostas serializadas com expiração. O dashboard usa Redis em
// produção e a implementação em memória nos testes.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
