// Package response shapes the API responses: a success payload passed
// through as-is, and the error triple {description, message, statusCode}.
package response

import (
	"github.com/gofiber/fiber/v2"
)

// Respond writes a success payload.
func Respond(c *fiber.Ctx, payload interface{}) error {
	return c.JSON(payload)
}

// RespondWithError writes the error triple. The status code appears both
// as the HTTP status and inside the body.
func RespondWithError(c *fiber.Ctx, description, message string, statusCode int) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"description": description,
		"message":     message,
		"statusCode":  statusCode,
	})
}

// RespondWithValidationErrors writes the field error map collected by the
// validation schema.
func RespondWithValidationErrors(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"description": "The given data was invalid.",
		"message":     fields,
		"statusCode":  fiber.StatusUnprocessableEntity,
	})
}

// RespondUnspecified is the generic failure answer when nothing better is
// known.
func RespondUnspecified(c *fiber.Ctx) error {
	return RespondWithError(c, "Error!", "Something went wrong, please try again later!", fiber.StatusInternalServerError)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return RespondWithError(c, "Unauthorized", message, fiber.StatusUnauthorized)
}

func BadRequest(c *fiber.Ctx, message string) error {
	return RespondWithError(c, "Bad request", message, fiber.StatusBadRequest)
}
