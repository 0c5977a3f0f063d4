package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func idempotencyKey(scope, key string) string {
	return fmt.Sprintf("idempotency:%s:%s", scope, key)
}

// ClaimIdempotencyKey records key for ttl. It reports false when the key was
// already claimed. A nil client claims nothing and always succeeds.
func ClaimIdempotencyKey(ctx context.Context, client *redis.Client, scope, key string, ttl time.Duration) (bool, error) {
	if client == nil {
		return true, nil
	}

	ok, err := client.SetNX(ctx, idempotencyKey(scope, key), time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim idempotency key: %v", err)
	}
	return ok, nil
}

// ReleaseIdempotencyKey forgets key so the request can be retried.
func ReleaseIdempotencyKey(ctx context.Context, client *redis.Client, scope, key string) error {
	if client == nil {
		return nil
	}

	if err := client.Del(ctx, idempotencyKey(scope, key)).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %v", err)
	}
	return nil
}
