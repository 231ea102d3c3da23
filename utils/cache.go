// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"befixed/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// ChatSessionCacheClient is the dedicated client for chat session storage.
	ChatSessionCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitChatSessionCache initializes the Redis client for chat session storage.
func InitChatSessionCache() {
	ChatSessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ChatSessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Chat Sessions): %v", err)
	}
}

// GetChatSessionCacheClient returns the Redis client for chat session storage.
func GetChatSessionCacheClient() *redis.Client {
	if ChatSessionCacheClient == nil {
		InitChatSessionCache()
	}
	return ChatSessionCacheClient
}

// InitRedis eagerly connects every Redis client used by the service.
func InitRedis() {
	InitCache()
	InitChatSessionCache()
}
