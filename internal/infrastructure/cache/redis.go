package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"jobportal/internal/config"
)

const defaultTTL = 10 * time.Minute

// Redis is a best-effort cache: when the server is unreachable every
// operation degrades to a no-op so the platform keeps serving from the
// document store.
type Redis struct {
	client *redis.Client
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Redis {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
		}
		_ = client.Close()
		return &Redis{client: nil, logger: logger}
	}

	return &Redis{client: client, logger: logger}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
	}
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.isUnavailable() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.isUnavailable() || pattern == "" {
		return nil
	}

	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}
