package repository

import (
	"context"
	"fmt"
)

// KeyValueStore persists small string values such as the theme preference.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Close() error
}

// Store backends accepted by Open.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// StoreOptions selects and configures a KeyValueStore backend.
type StoreOptions struct {
	Backend    string
	RedisAddr  string
	SQLitePath string
}

// Open returns the KeyValueStore named by opts.Backend.
func Open(ctx context.Context, opts StoreOptions) (KeyValueStore, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		store, err := NewRedisStore(ctx, opts.RedisAddr)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendSQLite:
		store, err := NewSQLiteStore(ctx, opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
