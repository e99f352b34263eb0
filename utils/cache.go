package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/odacaict/domee.ro/config"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// LockClient is the dedicated client for reservation locks.
	LockClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients used by the application.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	LockClient = newRedisClient(config.AppConfig.RedisLockDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetLockClient returns the Redis client backing reservation locks.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		LockClient = newRedisClient(config.AppConfig.RedisLockDB)
	}
	return LockClient
}

func sessionKey(subjectID string) string {
	return "session:" + subjectID
}

// CacheSession stores a session token hash so auth middleware can verify
// tokens without hitting Mongo. Failures are non-fatal; the middleware falls
// back to the persisted hash.
func CacheSession(subjectID, tokenHash string, ttl time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := GetAuthCacheClient().Set(ctx, sessionKey(subjectID), tokenHash, ttl).Err(); err != nil {
		log.Printf("failed to cache session for %s: %v", subjectID, err)
	}
}

// GetCachedSession returns the cached token hash for a subject, or "" when
// none is cached.
func GetCachedSession(subjectID string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	hash, err := GetAuthCacheClient().Get(ctx, sessionKey(subjectID)).Result()
	if err != nil {
		return ""
	}
	return hash
}

// ClearSession drops the cached session for a subject.
func ClearSession(subjectID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := GetAuthCacheClient().Del(ctx, sessionKey(subjectID)).Err(); err != nil {
		log.Printf("failed to clear session for %s: %v", subjectID, err)
	}
}
