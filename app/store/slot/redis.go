package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis keeps the value in a redis string key
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis connects to redis at the given URL, like redis://localhost:6379/0, and pings it
func NewRedis(redisURL, key string) (*Redis, error) {
	if key == "" {
		key = DefaultKey
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Redis{client: client, key: key}, nil
}

// Read returns the key value, ErrEmpty if the key doesn't exist
func (r *Redis) Read(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", r.key, err)
	}
	return data, nil
}

// Write sets the key without expiration
func (r *Redis) Write(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", r.key, err)
	}
	return nil
}

// Close closes the redis connection
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) String() string { return "redis:" + r.key }
