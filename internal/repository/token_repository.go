package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenBlacklistRepository remembers logged-out tokens until they expire.
type TokenBlacklistRepository interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

type redisTokenBlacklistRepository struct {
	redisClient *redis.Client
}

// NewTokenBlacklistRepository creates a Redis-backed blacklist.
func NewTokenBlacklistRepository(redisClient *redis.Client) TokenBlacklistRepository {
	return &redisTokenBlacklistRepository{redisClient: redisClient}
}

func (r *redisTokenBlacklistRepository) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.redisClient.Set(ctx, "blacklist:"+token, "true", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (r *redisTokenBlacklistRepository) Contains(ctx context.Context, token string) (bool, error) {
	n, err := r.redisClient.Exists(ctx, "blacklist:"+token).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return n > 0, nil
}
