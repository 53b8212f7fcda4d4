package handlers

import (
	"pullapi/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles everything SetupRoutes wires into the app.
type Handlers struct {
	Auth        *AuthHandler
	SelfService *SelfServiceHandler
}

func SetupRoutes(app *fiber.App, h Handlers) {
	app.Get("/health", HealthCheck)

	api := app.Group("/api")
	api.Post("/register", h.Auth.Register)
	api.Post("/login", h.Auth.Login)
	api.Post("/refresh", h.Auth.Refresh)

	authenticated := api.Group("/", middleware.AuthMiddleware)
	authenticated.Post("/logout", h.Auth.Logout)

	selfService := authenticated.Group("/selfservice")
	selfService.Post("/deposit", h.SelfService.CreateDeposit)
	selfService.Post("/pickup", h.SelfService.CreatePickup)
}
