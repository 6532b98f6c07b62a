package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/foliocraft/backend/internal/config"
)

const redisKeyPrefix = "foliocraft:collection:"

// RedisMedium keeps each collection under a single key. Fits the
// whole-collection read/write contract without any schema.
type RedisMedium struct {
	client *redis.Client
}

func NewRedisClient(cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}
	return rdb, nil
}

func NewRedisMedium(client *redis.Client) *RedisMedium {
	return &RedisMedium{client: client}
}

func (m *RedisMedium) ReadCollection(ctx context.Context, name string) ([]byte, error) {
	data, err := m.client.Get(ctx, redisKeyPrefix+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", name, err)
	}
	return data, nil
}

func (m *RedisMedium) WriteCollection(ctx context.Context, name string, data []byte) error {
	if err := m.client.Set(ctx, redisKeyPrefix+name, data, 0).Err(); err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	return nil
}
