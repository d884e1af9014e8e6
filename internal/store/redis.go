package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sandeepnani0902/customer-hostel-booking/config"
)

// RedisStore persists entries as plain redis strings without expiry, and
// doubles as the distributed bed lock (SETNX) used to guard the
// read-modify-write window when several server processes share one store.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, entryKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, entryKey(key), value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, entryKey(key)).Err()
}

func (s *RedisStore) AcquireBedLock(ctx context.Context, hostelID int64, bedID int, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, bedLockKey(hostelID, bedID), "locked", ttl).Result()
}

func (s *RedisStore) ReleaseBedLock(ctx context.Context, hostelID int64, bedID int) error {
	return s.client.Del(ctx, bedLockKey(hostelID, bedID)).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func entryKey(key string) string {
	return fmt.Sprintf("store:%s", key)
}

func bedLockKey(hostelID int64, bedID int) string {
	return fmt.Sprintf("lock:hostel:%d:bed:%d", hostelID, bedID)
}

var _ Store = (*RedisStore)(nil)
