package persistence

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/api/dto"
)

const usersListKey = "users:all"

// UserListCache is a best-effort Redis cache for the redacted users list.
// Misses and Redis failures fall through to the repository; the TTL bounds
// staleness from signups that bypass invalidation.
type UserListCache struct {
	redis  *Redis
	logger *zap.Logger
	ttl    time.Duration
}

// NewUserListCache builds the cache. Returns nil when redis is unavailable
// so callers can skip caching entirely.
func NewUserListCache(redis *Redis, logger *zap.Logger, ttl time.Duration) *UserListCache {
	if redis == nil || redis.Client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &UserListCache{redis: redis, logger: logger, ttl: ttl}
}

// GetUsers returns the cached list, if present.
func (c *UserListCache) GetUsers(ctx context.Context) ([]dto.UserPayload, bool) {
	raw, err := c.redis.Client.Get(ctx, usersListKey).Bytes()
	if err != nil {
		return nil, false
	}

	var users []dto.UserPayload
	if err := json.Unmarshal(raw, &users); err != nil {
		c.logger.Warn("users list cache corrupt; dropping", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}
	return users, true
}

// SetUsers stores the list with the configured TTL.
func (c *UserListCache) SetUsers(ctx context.Context, users []dto.UserPayload) {
	raw, err := json.Marshal(users)
	if err != nil {
		return
	}
	if err := c.redis.Client.Set(ctx, usersListKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("users list cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached list.
func (c *UserListCache) Invalidate(ctx context.Context) {
	if err := c.redis.Client.Del(ctx, usersListKey).Err(); err != nil {
		c.logger.Warn("users list cache invalidation failed", zap.Error(err))
	}
}
