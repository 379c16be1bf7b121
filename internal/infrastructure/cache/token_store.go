package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps issued token ids in Redis so tokens can be revoked before
// their JWT expiry. A token is valid only while its key exists.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func accessKey(userID uint, tokenID string) string {
	return fmt.Sprintf("access_token:%d:%s", userID, tokenID)
}

func refreshKey(userID uint, tokenID string) string {
	return fmt.Sprintf("refresh_token:%d:%s", userID, tokenID)
}

func (s *TokenStore) StoreAccessToken(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, accessKey(userID, tokenID), "1", ttl).Err()
}

func (s *TokenStore) StoreRefreshToken(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKey(userID, tokenID), "1", ttl).Err()
}

func (s *TokenStore) IsAccessTokenValid(ctx context.Context, userID uint, tokenID string) (bool, error) {
	count, err := s.client.Exists(ctx, accessKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *TokenStore) IsRefreshTokenValid(ctx context.Context, userID uint, tokenID string) (bool, error) {
	count, err := s.client.Exists(ctx, refreshKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *TokenStore) RevokeAccessToken(ctx context.Context, userID uint, tokenID string) error {
	return s.client.Del(ctx, accessKey(userID, tokenID)).Err()
}

func (s *TokenStore) RevokeRefreshToken(ctx context.Context, userID uint, tokenID string) error {
	return s.client.Del(ctx, refreshKey(userID, tokenID)).Err()
}

// RevokeAll removes every live token for a user, e.g. after deactivation.
func (s *TokenStore) RevokeAll(ctx context.Context, userID uint) error {
	patterns := []string{
		fmt.Sprintf("access_token:%d:*", userID),
		fmt.Sprintf("refresh_token:%d:*", userID),
	}

	for _, pattern := range patterns {
		iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}

	return nil
}
