// error_utils.go
package utils

import (
	"log"

	"Backend-Questionnaire/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Success: false,
		Status:  status,
		Message: message,
	})
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind models.ErrorKind) int {
	switch kind {
	case models.KindValidation, models.KindInvalidIdentifier:
		return fiber.StatusBadRequest
	case models.KindNotFound:
		return fiber.StatusNotFound
	case models.KindUnauthorized:
		return fiber.StatusUnauthorized
	case models.KindForbidden:
		return fiber.StatusForbidden
	case models.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleAppError writes err using the standard envelope. Internal errors are
// logged with op and the request id and reach the caller only as a generic message.
func HandleAppError(c *fiber.Ctx, op string, err error) error {
	kind := models.KindOf(err)
	if kind == models.KindInternal {
		log.Printf("❌ [%s] request=%v: %v", op, c.Locals("requestid"), err)
	}
	return HandleError(c, StatusFor(kind), models.PublicMessage(err))
}
