package middleware

import (
	"log"
	"strings"
	"time"

	"Backend-Questionnaire/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const HeaderIdempotencyKey = "Idempotency-Key"

const maxIdempotencyKeyLength = 200

// Idempotency rejects a repeated Idempotency-Key with 409 while the key is
// remembered. Requests without the header, or without redis, pass straight
// through. A failed request releases its key so the client can retry.
func Idempotency(client *redis.Client, scope string, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := strings.TrimSpace(c.Get(HeaderIdempotencyKey))
		if key == "" {
			return c.Next()
		}
		if len(key) > maxIdempotencyKeyLength {
			return utils.HandleError(c, fiber.StatusBadRequest, "Idempotency-Key is too long")
		}
		if client == nil {
			return c.Next()
		}

		claimed, err := utils.ClaimIdempotencyKey(c.UserContext(), client, scope, key, ttl)
		if err != nil {
			log.Printf("⚠️ [idempotency] %v, continuing without it", err)
			return c.Next()
		}
		if !claimed {
			return utils.HandleError(c, fiber.StatusConflict, "duplicate submission")
		}

		err = c.Next()
		if err != nil || c.Response().StatusCode() >= fiber.StatusBadRequest {
			if relErr := utils.ReleaseIdempotencyKey(c.UserContext(), client, scope, key); relErr != nil {
				log.Printf("⚠️ [idempotency] %v", relErr)
			}
		}
		return err
	}
}
