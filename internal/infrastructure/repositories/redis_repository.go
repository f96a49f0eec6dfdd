package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/todoflow/todoflow/internal/domain"
)

// RedisStore is an alternative backend for the persistence ports, using the
// same key layout as the sqlite records table. Values are stored without a
// TTL; the collection is authoritative, not a cache.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Ping verifies connectivity before the store is handed to the services.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) LoadCollection(ctx context.Context, userID string) ([]domain.Task, error) {
	key := taskKey(userID)
	payload, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCollectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", key, err)
	}
	return decodeTasks(key, payload)
}

func (s *RedisStore) SaveCollection(ctx context.Context, userID string, tasks []domain.Task) error {
	payload, err := encodeTasks(tasks)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	key := taskKey(userID)
	if err := s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("save collection %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) DeleteCollection(ctx context.Context, userID string) error {
	key := taskKey(userID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete collection %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) CurrentUser(ctx context.Context) (domain.User, error) {
	payload, err := s.client.Get(ctx, sessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.User{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("load session: %w", err)
	}
	return decodeUser(sessionKey, payload)
}

func (s *RedisStore) SaveUser(ctx context.Context, user domain.User) error {
	payload, err := encodeUser(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisStore) ClearUser(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
