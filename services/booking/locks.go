package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrLockBusy is returned when a reservation lock cannot be acquired in time.
var ErrLockBusy = errors.New("reservation in progress, try again")

// SlotLocker serializes critical sections per (provider, date) key.
type SlotLocker interface {
	// Acquire blocks briefly for the key's lock and returns its release
	// function. The lock expires after ttl even if never released.
	Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error)
}

// RedisSlotLocker implements SlotLocker with SET NX tokens, so the lock holds
// across all server instances sharing the Redis.
type RedisSlotLocker struct {
	Client *redis.Client
}

// releaseScript deletes the lock only when still owned by our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

func (l *RedisSlotLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := uuid.New().String()
	deadline := time.Now().Add(ttl)

	for {
		ok, err := l.Client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("lock %s: %w", key, err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, ErrLockBusy
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(25 * time.Millisecond):
		}
	}

	release := func() {
		rctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(rctx, l.Client, []string{key}, token).Err()
	}
	return release, nil
}

// LocalSlotLocker is an in-process SlotLocker for tests and single-instance
// deployments.
type LocalSlotLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLocalSlotLocker() *LocalSlotLocker {
	return &LocalSlotLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *LocalSlotLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}
