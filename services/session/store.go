package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"brandconnect/models"
	"brandconnect/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists session records. Reads must always return the
// freshest stored state; expiry decisions are made against it, never
// against a copy held across a poll tick.
type SessionStore interface {
	Get(id string) (*models.SessionRecord, error)
	Put(record *models.SessionRecord) error
	Delete(id string) error
	// ListIDs returns the IDs of every stored session, for the sweep.
	ListIDs() ([]string, error)
}

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps session records as JSON in Redis. Keys carry
// a TTL past the session expiry so the sweep can still observe an
// expired record and run the forced sign-out before Redis reaps it.
type RedisSessionStore struct {
	Client *redis.Client
	// Grace is how long past expiry a record stays readable.
	Grace time.Duration
}

func (s *RedisSessionStore) grace() time.Duration {
	if s.Grace <= 0 {
		return 5 * time.Minute
	}
	return s.Grace
}

func (s *RedisSessionStore) Get(id string) (*models.SessionRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	data, err := s.Client.Get(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch session %s: %w", id, err)
	}
	var record models.SessionRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
	}
	return &record, nil
}

func (s *RedisSessionStore) Put(record *models.SessionRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", record.ID, err)
	}
	ttl := time.Until(record.ExpiresAt) + s.grace()
	if ttl <= 0 {
		ttl = s.grace()
	}
	if err := s.Client.Set(ctx, sessionKeyPrefix+record.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", record.ID, err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.Client.Del(ctx, sessionKeyPrefix+id).Err()
}

func (s *RedisSessionStore) ListIDs() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var ids []string
	iter := s.Client.Scan(ctx, 0, sessionKeyPrefix+"*", 200).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, iter.Val()[len(sessionKeyPrefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan sessions: %w", err)
	}
	return ids, nil
}
