package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/essentia-tours/internal/config"
)

// Redis wraps a go-redis client. A nil client turns every call into a
// no-op so the API keeps working when Redis is not configured or down.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to cfg.Redis.Addr. An empty address or a failed ping
// returns a disabled cache.
func NewRedis(ctx context.Context, cfg *config.Config) *Redis {
	if cfg.Redis.Addr == "" {
		log.Printf("[Cache] redis not configured, cache disabled")
		return &Redis{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[Cache] redis unavailable at %s: %v", cfg.Redis.Addr, err)
		_ = client.Close()
		return &Redis{}
	}

	log.Printf("[Cache] connected to redis at %s", cfg.Redis.Addr)
	return &Redis{client: client}
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Enabled() bool {
	return r != nil && r.client != nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	if !r.Enabled() {
		return nil, false
	}
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[Cache] get %s: %v", key, err)
		}
		return nil, false
	}
	return data, true
}

func (r *Redis) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if !r.Enabled() {
		return
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("[Cache] set %s: %v", key, err)
	}
}

func (r *Redis) Delete(ctx context.Context, keys ...string) {
	if !r.Enabled() || len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[Cache] del %v: %v", keys, err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}
