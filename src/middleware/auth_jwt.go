package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const credentialKey = "credential"

// BearerCredential copies the Authorization bearer value into Locals. The
// value may be a plaintext password, the operator secret, or a scoped access
// token; services decide which one they accept, so a missing header is not
// rejected here.
func BearerCredential(c *fiber.Ctx) error {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(authHeader) > len("Bearer ") && strings.EqualFold(authHeader[:len("Bearer ")], "Bearer ") {
		c.Locals(credentialKey, strings.TrimSpace(authHeader[len("Bearer "):]))
	}
	return c.Next()
}

// Credential returns what BearerCredential stored, or "".
func Credential(c *fiber.Ctx) string {
	v, _ := c.Locals(credentialKey).(string)
	return v
}
