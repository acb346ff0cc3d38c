package services

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"github.com/jfk9unit/caninecompanionapp/internal/datastore"
	"github.com/jfk9unit/caninecompanionapp/internal/pkg/caching"
)

type ServiceConfig struct {
	container  *do.Injector
	redisDB    redis.UniversalClient
	postgresDB *bun.DB
	cache      caching.Cache
}

func NewServiceConfig(container *do.Injector) (*ServiceConfig, error) {
	db, err := do.InvokeNamed[redis.UniversalClient](container, "redis-cache")
	if err != nil {
		return nil, err
	}

	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	cache, err := do.Invoke[caching.Cache](container)
	if err != nil {
		return nil, err
	}

	return &ServiceConfig{container, db, postgresDB, cache}, nil
}

func (service *ServiceConfig) GetStringConfig(ctx context.Context, key string, defaultValue string) (string, error) {
	callback := func() (string, error) {
		config, err := datastore.GetConfigByKey(ctx, service.postgresDB, key)
		if err != nil {
			return defaultValue, err
		}
		return config.Value, nil
	}

	value, err := caching.UseCache(ctx, service.cache, DBKeyConfig(key), CACHE_TTL_5_MINS, callback)
	if err != nil {
		return defaultValue, err
	}

	return value, nil
}

func (service *ServiceConfig) GetIntConfig(ctx context.Context, key string, defaultValue int) (int, error) {
	callback := func() (int, error) {
		config, err := datastore.GetConfigByKey(ctx, service.postgresDB, key)
		if err != nil {
			return defaultValue, err
		}

		intValue, err := strconv.Atoi(config.Value)
		if err != nil {
			return defaultValue, err
		}

		return intValue, nil
	}

	value, err := caching.UseCache(ctx, service.cache, DBKeyConfig(key), CACHE_TTL_5_MINS, callback)
	if err != nil {
		return defaultValue, err
	}

	return value, nil
}
