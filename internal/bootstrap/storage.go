package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sandeepnani0902/customer-hostel-booking/config"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/store"
)

// NewStore builds the configured store backend. The returned cleanup
// closes whatever connections the backend holds.
func NewStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return store.NewPGStore(pool), pool.Close, nil
	case "memory":
		return store.NewMemoryStore(), func() {}, nil
	case "redis", "":
		redisStore := store.NewRedisStore(cfg.Redis)
		return redisStore, func() { _ = redisStore.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
