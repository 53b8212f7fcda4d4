package handlers

import (
	"pullapi/internal/models"
	"pullapi/internal/services/auth"
	"pullapi/internal/services/user"
	"pullapi/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
	userService user.Service
}

func NewAuthHandler(authService auth.Service, userService user.Service) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input user.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	created, err := h.userService.Register(input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       created.ID,
		"username": created.Username,
		"email":    created.Email,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	usr, accessToken, refreshToken, err := h.authService.Login(req.Username, req.Email, req.Password)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user": fiber.Map{
			"id":       usr.ID,
			"username": usr.Username,
			"name":     usr.Name,
		},
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	accessToken, refreshToken, err := h.authService.RefreshTokens(req.RefreshToken)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)
	if err := h.authService.Logout(claims.UserID); err != nil {
		return response.RespondUnspecified(c)
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}
