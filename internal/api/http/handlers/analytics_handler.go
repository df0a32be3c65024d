package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sokobo/storefront/internal/api/dto"
	"github.com/sokobo/storefront/internal/service"
)

// AnalyticsHandler serves the admin dashboard summary.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: analyticsService}
}

// Summary GET /api/analytics.
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.AnalyticsResponse{
		TotalSales:     summary.TotalSales,
		TotalProducts:  summary.TotalProducts,
		TotalOrders:    summary.TotalOrders,
		TotalCustomers: summary.TotalCustomers,
	})
}
