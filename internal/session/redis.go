package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"blog-gateway/internal/domain/entity"
	"blog-gateway/pkg/helpers"
)

func sessionKey(token string) string { return "session:" + token }

// RedisStore keeps sessions in Redis with a TTL; expiry is enforced by the
// key TTL, so Resolve never has to clean up.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Establish(ctx context.Context, p *entity.Principal) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}
	if err := helpers.RedisSetJSON(ctx, s.rdb, sessionKey(token), p, s.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (*entity.Principal, error) {
	var p entity.Principal
	ok, err := helpers.RedisGetJSON(ctx, s.rdb, sessionKey(token), &p)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if !ok {
		return nil, ErrNoSession
	}
	return &p, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := helpers.RedisDel(ctx, s.rdb, sessionKey(token)); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
