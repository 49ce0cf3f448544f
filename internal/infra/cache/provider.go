package cache

import (
	"context"
	"log/slog"

	"catalog/config"
	"catalog/internal/domain/constants"
	"catalog/internal/domain/lifecycle"
	"catalog/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the cache selected by config.
// The Redis client is pinged on start and closed on stop.
func New(params Params) (service.Cache, error) {
	provider := constants.CacheProviderMemory
	if params.Config.Cache != nil && params.Config.Cache.Provider != "" {
		provider = params.Config.Cache.Provider
	}

	switch provider {
	case constants.CacheProviderMemory:
		params.Logger.Info("Using in-process memory cache")

		return NewMemoryCache(), nil

	case constants.CacheProviderRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis.addr is required for redis cache provider")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
			PoolSize: params.Config.Redis.PoolSize,
		})

		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping Redis")
				}

				params.Logger.Info("Redis cache connected", slog.String("addr", params.Config.Redis.Addr))

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return NewRedisCache(client), nil

	default:
		return nil, errors.Errorf("unknown cache provider: %s", provider)
	}
}
