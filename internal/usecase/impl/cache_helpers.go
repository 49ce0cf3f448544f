package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"catalog/internal/domain/service"

	"github.com/pkg/errors"
)

// Cache keys.
const (
	categoryTreeCacheKey  = "categories_tree"
	productCacheKeyPrefix = "product:"
)

func productCacheKey(slug string) string {
	return productCacheKeyPrefix + slug
}

// readCachedJSON decodes the cached value into dst. Any cache or decode failure
// counts as a miss; only failures other than service.ErrCacheMiss are logged.
func readCachedJSON(ctx context.Context, cache service.Cache, logger *slog.Logger, key string, dst any) bool {
	data, err := cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			logger.WarnContext(ctx, "Cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		logger.WarnContext(ctx, "Discarding undecodable cache entry", slog.String("key", key), slog.Any("error", err))

		return false
	}

	return true
}

// writeCachedJSON stores value under key. Failures are logged and ignored.
func writeCachedJSON(ctx context.Context, cache service.Cache, logger *slog.Logger, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.WarnContext(ctx, "Cache encode failed", slog.String("key", key), slog.Any("error", err))

		return
	}

	if err := cache.Set(ctx, key, data, ttl); err != nil {
		logger.WarnContext(ctx, "Cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

// invalidateCache deletes keys. It runs after the store write has committed, so a
// failure only leaves a stale entry until its TTL expires; it is logged, not returned.
func invalidateCache(ctx context.Context, cache service.Cache, logger *slog.Logger, keys ...string) {
	if err := cache.Del(ctx, keys...); err != nil {
		logger.WarnContext(ctx, "Cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}
