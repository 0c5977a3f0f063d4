package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedis returns nil when addr is empty or unreachable; callers treat a nil
// client as "feature disabled".
func NewRedis(ctx context.Context, addr string) *redis.Client {
	if addr == "" {
		log.Println("⚠️ REDIS_URI not set. Redis features disabled.")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Println("⚠️ Failed to connect Redis, features disabled:", err)
		_ = client.Close()
		return nil
	}

	log.Println("✅ Redis connected successfully")
	return client
}
