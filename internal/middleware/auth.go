// Package middleware provides the request processing middleware for the
// fiber app.
package middleware

import (
	"log"
	"strings"

	"pullapi/internal/utils"
	"pullapi/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the bearer token and stores the user claims in
// the request locals for the handlers.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return response.Unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	_, claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("token validation error: %v", err)
		return response.Unauthorized(c, "invalid or expired token")
	}

	c.Locals("claims", claims)
	return c.Next()
}
