package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes a success envelope.
func JsonResponse(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  true,
		"message": message,
		"data":    data,
	})
}

// ErrorResponse writes a failure body of the form {"error": message}.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// ValidationErrorResponse reports field-level validation failures.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed!",
		"fields": errors,
	})
}
