package database

import (
	"log"

	"github.com/hibiken/asynq"
)

// NewAsynqClient initializes the task client only if Redis is available.
func NewAsynqClient(redisAvailable bool, addr string) *asynq.Client {
	if !redisAvailable || addr == "" {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return nil
	}

	client := asynq.NewClient(asynq.RedisClientOpt{Addr: addr})
	log.Println("✅ Asynq Client initialized successfully")
	return client
}
