package api

import (
	"github.com/gofiber/fiber/v3"
)

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// jsonStatus writes v with the given HTTP status code.
func jsonStatus(c fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}
