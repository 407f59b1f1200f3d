package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kambaz-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(token string) string {
	return "kambaz-session:" + token
}

func (s *RedisStore) Save(ctx context.Context, token string, user *models.User) error {
	val, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("error saving session to cache: %s", err)
	}
	return s.client.Set(ctx, sessionKey(token), val, TTL).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (*models.User, error) {
	val, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(val, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}
