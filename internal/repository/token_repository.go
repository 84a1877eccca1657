package repository

import (
	"context"
	"time"

	redisapp "art_studio/internal/storage/redis"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// RedisTokenRepo keeps revoked token IDs in Redis until the token would
// have expired anyway.
type RedisTokenRepo struct {
	Client *redisapp.Client
}

func NewRedisTokenRepo(client *redisapp.Client) *RedisTokenRepo {
	return &RedisTokenRepo{Client: client}
}

func (r *RedisTokenRepo) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.Client.Set(ctx, revokedTokenKey(tokenID), "1", ttl).Err()
}

func (r *RedisTokenRepo) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	val, err := r.Client.Get(ctx, revokedTokenKey(tokenID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == "1", nil
}

func revokedTokenKey(tokenID string) string {
	return "revoked:" + tokenID
}

// MemoryTokenRepo is the in-process denylist used when Redis is not
// configured. Revocations do not survive a restart.
type MemoryTokenRepo struct {
	c *cache.Cache
}

func NewMemoryTokenRepo(cleanup time.Duration) *MemoryTokenRepo {
	return &MemoryTokenRepo{c: cache.New(cache.NoExpiration, cleanup)}
}

func (r *MemoryTokenRepo) RevokeToken(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	r.c.Set(tokenID, struct{}{}, ttl)
	return nil
}

func (r *MemoryTokenRepo) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r.c.Get(tokenID)
	return ok, nil
}
