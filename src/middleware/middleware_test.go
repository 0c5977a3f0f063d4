package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerCredential(t *testing.T) {
	app := fiber.New()
	app.Get("/", BearerCredential, func(c *fiber.Ctx) error {
		return c.SendString(Credential(c))
	})

	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc123", "abc123"},
		{"bearer   spaced  ", "spaced"},
		{"Basic abc", ""},
		{"Bearer ", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, tt.want, string(body), tt.header)
	}
}

func TestIdempotencyWithoutRedis(t *testing.T) {
	app := fiber.New()
	calls := 0
	app.Post("/", Idempotency(nil, "test", time.Minute), func(c *fiber.Ctx) error {
		calls++
		return c.SendStatus(fiber.StatusCreated)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/", nil)
		req.Header.Set(HeaderIdempotencyKey, "k")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}
	assert.Equal(t, 2, calls)
}

func TestIdempotencyKeyTooLong(t *testing.T) {
	app := fiber.New()
	app.Post("/", Idempotency(nil, "test", time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set(HeaderIdempotencyKey, strings.Repeat("k", maxIdempotencyKeyLength+1))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func post(t *testing.T, app *fiber.App, key, query string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/"+query, nil)
	req.Header.Set(HeaderIdempotencyKey, key)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestIdempotencyRejectsRepeatedKey(t *testing.T) {
	mr, client := newRedis(t)
	app := fiber.New()
	calls := 0
	app.Post("/", Idempotency(client, "submission", time.Minute), func(c *fiber.Ctx) error {
		calls++
		return c.SendStatus(fiber.StatusCreated)
	})

	status, _ := post(t, app, "order-1", "")
	assert.Equal(t, fiber.StatusCreated, status)

	status, body := post(t, app, "order-1", "")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Contains(t, body, "duplicate submission")
	assert.Equal(t, 1, calls)

	status, _ = post(t, app, "order-2", "")
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, 2, calls)

	assert.True(t, mr.Exists("idempotency:submission:order-1"))
	assert.Equal(t, time.Minute, mr.TTL("idempotency:submission:order-1"))
}

func TestIdempotencyReleasesFailedRequest(t *testing.T) {
	mr, client := newRedis(t)
	app := fiber.New()
	app.Post("/", Idempotency(client, "submission", time.Minute), func(c *fiber.Ctx) error {
		switch c.Query("fail") {
		case "status":
			return c.Status(fiber.StatusBadRequest).SendString("bad answers")
		case "error":
			return fiber.NewError(fiber.StatusInternalServerError, "store down")
		}
		return c.SendStatus(fiber.StatusCreated)
	})

	status, _ := post(t, app, "retry-me", "?fail=status")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, mr.Exists("idempotency:submission:retry-me"))

	status, _ = post(t, app, "retry-me", "?fail=error")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.False(t, mr.Exists("idempotency:submission:retry-me"))

	status, _ = post(t, app, "retry-me", "")
	assert.Equal(t, fiber.StatusCreated, status)

	status, _ = post(t, app, "retry-me", "")
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestIdempotencyRedisDown(t *testing.T) {
	mr, client := newRedis(t)
	mr.Close()

	app := fiber.New()
	app.Post("/", Idempotency(client, "submission", time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	for i := 0; i < 2; i++ {
		status, _ := post(t, app, "k", "")
		assert.Equal(t, fiber.StatusCreated, status)
	}
}
