package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sokobo/storefront/internal/api/dto"
	"github.com/sokobo/storefront/internal/auth"
	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/service"
	apperrors "github.com/sokobo/storefront/pkg/util"
)

// OrdersHandler exposes checkout and order-tracking endpoints.
type OrdersHandler struct {
	service *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{service: orderService}
}

// List GET /api/orders. Admins see every order, customers their own.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var (
		orders []domain.Order
		err    error
	)
	if principal.IsAdmin() {
		orders, err = h.service.All(c.Context())
	} else {
		orders, err = h.service.ByUser(c.Context(), principal.User.ID)
	}
	if err != nil {
		return err
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.OrderResponseFrom(o))
	}
	return c.JSON(items)
}

// Get GET /api/orders/:id. Owner or admin only.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	order, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if !principal.IsAdmin() && order.UserID != principal.User.ID {
		return apperrors.NewForbidden("not your order")
	}
	return c.JSON(dto.OrderResponseFrom(order))
}

// Create POST /api/orders. The owning user is always the caller; any
// userId in the payload is ignored.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	order, err := h.service.Create(c.Context(), principal.User.ID, service.OrderCreateInput{
		Items: dto.OrderItemsToDomain(req.Items),
		Total: req.Total,
		ShippingAddress: domain.ShippingAddress{
			Name:       req.ShippingAddress.Name,
			Street:     req.ShippingAddress.Street,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Phone:      req.ShippingAddress.Phone,
		},
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OrderResponseFrom(order))
}

// UpdateStatus PUT /api/orders/:id/status.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.OrderStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status is required", map[string]any{"status": "required"})
	}

	order, err := h.service.SetStatus(c.Context(), c.Params("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(dto.OrderResponseFrom(order))
}
