package redisstore

import (
	"context"
	"errors"
	"fmt"

	"fpdemo/internal/infra/settings"

	"github.com/redis/go-redis/v9"
)

// Store keeps the general settings in Redis. Useful when several demo
// instances should share counters and flags.
type Store struct {
	client *redis.Client
	prefix string
}

func New(addr, password string, db int) (*Store, error) {
	if addr == "" {
		return nil, errors.New("redisstore: addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Store{client: client, prefix: "fpdemo:"}, nil
}

func (s *Store) WriteData(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, s.prefix+key, data, 0).Err()
}

func (s *Store) ReadData(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, settings.ErrValueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redisstore: read %s: %w", key, err)
	}
	return data, nil
}

func (s *Store) RemoveData(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

func (s *Store) ContainsData(ctx context.Context, key string) bool {
	n, err := s.client.Exists(ctx, s.prefix+key).Result()
	return err == nil && n > 0
}

var _ settings.BackingStore = (*Store)(nil)
