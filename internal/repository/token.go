package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/playforge/gridgame-backend/internal/apperror"
)

// TokenRepository stores opaque bearer tokens in redis, keyed token:<value>
// with the owning player id as payload.
type TokenRepository interface {
	Save(ctx context.Context, token, playerID string, ttl time.Duration) error
	Resolve(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type dbToken struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) TokenRepository {
	return &dbToken{
		client: client,
	}
}

func (that *dbToken) Save(ctx context.Context, token, playerID string, ttl time.Duration) error {
	tokenKey := "token:" + token
	if err := that.client.Set(ctx, tokenKey, playerID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}

func (that *dbToken) Resolve(ctx context.Context, token string) (string, error) {
	tokenKey := "token:" + token

	playerID, err := that.client.Get(ctx, tokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperror.ErrInvalidToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve token: %w", err)
	}

	return playerID, nil
}

func (that *dbToken) Delete(ctx context.Context, token string) error {
	tokenKey := "token:" + token
	if err := that.client.Del(ctx, tokenKey).Err(); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	return nil
}
