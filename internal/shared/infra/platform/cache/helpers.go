package cache

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const asyncTimeout = 200 * time.Millisecond

// async ejecuta op en segundo plano con su propio timeout, desligado de la
// petición que la originó. Con una caché nil no hace nada.
func async(cache Cache, key, action string, log *zap.Logger, op func(ctx context.Context) error) {
	if cache == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		if err := op(ctx); err != nil {
			log.Warn("Cache "+action+" failed", zap.String("key", key), zap.Error(err))
		}
	}()
}

func AsyncCacheSet(cache Cache, key string, value interface{}, ttl int, log *zap.Logger) {
	async(cache, key, "update", log, func(ctx context.Context) error {
		return cache.Set(ctx, key, value, ttl)
	})
}

func AsyncCacheDelete(cache Cache, key string, log *zap.Logger) {
	async(cache, key, "deletion", log, func(ctx context.Context) error {
		return cache.Delete(ctx, key)
	})
}
