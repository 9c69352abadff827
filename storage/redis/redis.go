// Package redis provides a Redis-backed storage.Backend.
//
// Each handle maps to one string key under a configurable prefix. A SET
// replaces the whole value atomically.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/arloliu/lencoder/storage"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "lencoder:mapping:"

// Config contains configuration options for the Redis backend.
type Config struct {
	// Client is the Redis client instance. Required.
	Client *redis.Client

	// KeyPrefix is prepended to every handle.
	// Default: "lencoder:mapping:"
	KeyPrefix string
}

// Backend implements storage.Backend on Redis.
type Backend struct {
	client    *redis.Client
	keyPrefix string
}

var _ storage.Backend = (*Backend)(nil)

// New creates a Redis backend around an existing client.
func New(config Config) (*Backend, error) {
	if config.Client == nil {
		return nil, errors.New("redis client is required")
	}
	if config.KeyPrefix == "" {
		config.KeyPrefix = defaultKeyPrefix
	}

	return &Backend{
		client:    config.Client,
		keyPrefix: config.KeyPrefix,
	}, nil
}

// Dial connects to addr, verifies the connection with PING and returns a
// backend owning the client.
func Dial(ctx context.Context, addr, keyPrefix string) (*Backend, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return New(Config{Client: client, KeyPrefix: keyPrefix})
}

// Key returns the Redis key used for handle.
func (b *Backend) Key(handle string) string {
	return b.keyPrefix + handle
}

// Get returns the value stored at handle's key.
func (b *Backend) Get(ctx context.Context, handle string) ([]byte, error) {
	data, err := b.client.Get(ctx, b.Key(handle)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.NotFound(handle)
		}

		return nil, storage.PersistenceError(handle, fmt.Errorf("failed to get key %s: %w", b.Key(handle), err))
	}

	return data, nil
}

// Put sets handle's key to data without expiration.
func (b *Backend) Put(ctx context.Context, handle string, data []byte) error {
	if err := b.client.Set(ctx, b.Key(handle), data, 0).Err(); err != nil {
		return storage.PersistenceError(handle, err)
	}

	return nil
}

// Close closes the Redis client.
func (b *Backend) Close() error {
	return b.client.Close()
}
