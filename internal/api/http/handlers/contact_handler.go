package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sokobo/storefront/internal/api/dto"
	"github.com/sokobo/storefront/internal/service"
	apperrors "github.com/sokobo/storefront/pkg/util"
)

// ContactHandler accepts public contact-form submissions.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{service: contactService}
}

// Submit POST /api/contact.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	err := h.service.Submit(c.Context(), service.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Service:   req.Service,
		Message:   req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Contact form submitted successfully"})
}
