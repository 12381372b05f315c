package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/eventos-app/api/internal/domain/common/errorz"
	"github.com/redis/go-redis/v9"
)

// Storage keeps session token to user id mappings with a TTL.
type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func (s *Storage) Set(ctx context.Context, token, userID string, expiration time.Duration) error {
	return s.redis.Set(ctx, token, userID, expiration).Err()
}

func (s *Storage) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.redis.Get(ctx, token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errorz.ErrNotFound
		}
		return "", err
	}
	return userID, nil
}

func (s *Storage) Clear(ctx context.Context, token string) error {
	return s.redis.Del(ctx, token).Err()
}
