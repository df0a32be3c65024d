package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sokobo/storefront/internal/api/dto"
	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/service"
	apperrors "github.com/sokobo/storefront/pkg/util"
)

// PortfolioHandler exposes the public showcase and its admin management.
type PortfolioHandler struct {
	service *service.PortfolioService
}

// NewPortfolioHandler constructs handler.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: portfolioService}
}

// List GET /api/portfolio.
func (h *PortfolioHandler) List(c *fiber.Ctx) error {
	items, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	out := make([]dto.PortfolioResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.PortfolioResponseFrom(item))
	}
	return c.JSON(out)
}

// Create POST /api/portfolio.
func (h *PortfolioHandler) Create(c *fiber.Ctx) error {
	var req dto.PortfolioCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item, err := h.service.Create(c.Context(), service.PortfolioCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
		Category:    domain.PortfolioCategory(req.Category),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.PortfolioResponseFrom(item))
}

// Delete DELETE /api/portfolio/:id.
func (h *PortfolioHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
