package storageprovider

import (
	"context"
	"time"

	"assetdesk/providers"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "assetdesk:session:"

type RedisDbProvider struct {
	client *redis.Client
}

func NewRedisProvider(ctx context.Context, addr string) (providers.StorageProvider, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "redis ping")
	}

	return &RedisDbProvider{client: rdb}, nil
}

func (r *RedisDbProvider) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "redis get %s", key)
	}
	return v, true, nil
}

func (r *RedisDbProvider) Set(ctx context.Context, key, value string) error {
	return errors.Wrapf(r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(), "redis set %s", key)
}

func (r *RedisDbProvider) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = redisKeyPrefix + k
	}
	return errors.Wrap(r.client.Del(ctx, prefixed...).Err(), "redis del")
}

func (r *RedisDbProvider) Close() error {
	return r.client.Close()
}
