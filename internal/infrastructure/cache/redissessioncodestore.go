package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessionCodeStore keeps session codes in Redis so that every
// instance behind a load balancer can redeem them. Expiry is Redis's TTL.
type RedisSessionCodeStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisSessionCodeStore(client *redis.Client, prefix string, ttl time.Duration) *RedisSessionCodeStore {
	if ttl <= 0 {
		ttl = DefaultSessionCodeTTL
	}
	return &RedisSessionCodeStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisSessionCodeStore) Put(ctx context.Context, grant SessionGrant) (string, error) {
	code, err := newSessionCode()
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(grant)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session grant: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+code, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session code in redis: %w", err)
	}
	return code, nil
}

// Take atomically reads and deletes the code with GETDEL.
func (s *RedisSessionCodeStore) Take(ctx context.Context, code string) (*SessionGrant, error) {
	data, err := s.client.GetDel(ctx, s.prefix+code).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve session code from redis: %w", err)
	}

	var grant SessionGrant
	if err := json.Unmarshal([]byte(data), &grant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session grant: %w", err)
	}
	return &grant, nil
}

// Close is a no-op; the Redis client is owned by the caller.
func (s *RedisSessionCodeStore) Close() error {
	return nil
}
