package revocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	id "welfare/pkg/domain"
)

const keyPrefix = "welfare:revoked_session:"

// Redis shares the revocation list between server instances. Each entry is a
// key that expires together with the token.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (s *Redis) Revoke(ctx context.Context, sessionID id.SessionID, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, keyPrefix+sessionID.String(), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *Redis) IsRevoked(ctx context.Context, sessionID id.SessionID) (bool, error) {
	err := s.client.Get(ctx, keyPrefix+sessionID.String()).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check session revocation: %w", err)
	}
	return true, nil
}
