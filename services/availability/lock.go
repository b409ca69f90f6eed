package availability

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// SaveLocker serializes overlapping saves for the same creative. A
// second save while one is in flight is refused, not queued.
type SaveLocker interface {
	Acquire(creativeID string) (bool, error)
	Release(creativeID string)
}

const saveLockPrefix = "availabilitySave:"

// RedisSaveLocker implements SaveLocker with a short-lived SETNX key,
// so a crashed instance cannot wedge a creative's schedule.
type RedisSaveLocker struct {
	Client *redis.Client
	TTL    time.Duration
}

func (l *RedisSaveLocker) ttl() time.Duration {
	if l.TTL <= 0 {
		return 5 * time.Second
	}
	return l.TTL
}

func (l *RedisSaveLocker) Acquire(creativeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return l.Client.SetNX(ctx, saveLockPrefix+creativeID, 1, l.ttl()).Result()
}

func (l *RedisSaveLocker) Release(creativeID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	l.Client.Del(ctx, saveLockPrefix+creativeID)
}
