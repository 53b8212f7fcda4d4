package handlers

import (
	"errors"
	"log"

	apierrors "pullapi/internal/errors"
	"pullapi/internal/models"
	"pullapi/internal/repositories"
	"pullapi/internal/services/selfservice"
	"pullapi/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// SelfServiceHandler exposes the deposit and pickup submission endpoints.
type SelfServiceHandler struct {
	service selfservice.Service
	users   repositories.UserRepository
}

func NewSelfServiceHandler(s selfservice.Service, users repositories.UserRepository) *SelfServiceHandler {
	return &SelfServiceHandler{service: s, users: users}
}

// CreateDeposit handles POST /api/selfservice/deposit.
func (h *SelfServiceHandler) CreateDeposit(c *fiber.Ctx) error {
	return h.submit(c, models.KindDeposit)
}

// CreatePickup handles POST /api/selfservice/pickup.
func (h *SelfServiceHandler) CreatePickup(c *fiber.Ctx) error {
	return h.submit(c, models.KindPickup)
}

func (h *SelfServiceHandler) submit(c *fiber.Ctx, kind models.TransferKind) error {
	claims := c.Locals("claims").(*models.UserClaims)

	user, err := h.users.GetByID(claims.UserID)
	if err != nil {
		return response.Unauthorized(c, "unknown user")
	}

	var sub models.Submission
	if err := c.BodyParser(&sub); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	result, err := h.service.Submit(c.Context(), user, kind, &sub)
	if err != nil {
		var valErr *apierrors.ValidationError
		if errors.As(err, &valErr) {
			return response.RespondWithValidationErrors(c, valErr.Fields)
		}
		var apiErr *apierrors.APIError
		if errors.As(err, &apiErr) {
			return response.RespondWithError(c, apiErr.Description, apiErr.Message, apiErr.StatusCode)
		}
		log.Printf("%s submission failed: %v", kind, err)
		return response.RespondUnspecified(c)
	}

	return response.Respond(c, result)
}
