package service

import (
	"context"
	"fmt"

	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/events"
	"github.com/sokobo/storefront/internal/repository"
	apperrors "github.com/sokobo/storefront/pkg/util"
)

// OrderService coordinates checkout and order tracking.
type OrderService struct {
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
}

// OrderCreateInput describes the checkout payload. Total is trusted
// as supplied by the caller and is not recomputed from Items; see the
// open-question note in DESIGN.md.
type OrderCreateInput struct {
	Items           []domain.OrderItem
	Total           string
	ShippingAddress domain.ShippingAddress
}

// NewOrderService constructs the service.
func NewOrderService(orders repository.OrderRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, dispatcher: dispatcher}
}

// Create validates the order shape and records it for the given user.
// Line items are snapshots; referential integrity against the catalog is
// deliberately not checked.
func (s *OrderService) Create(ctx context.Context, userID string, input OrderCreateInput) (domain.Order, error) {
	details := map[string]any{}
	if len(input.Items) == 0 {
		details["items"] = "at least one item required"
	}
	for i, item := range input.Items {
		if item.ProductID == "" {
			details[fmt.Sprintf("items[%d].productId", i)] = "required"
		}
		if item.Quantity < 1 {
			details[fmt.Sprintf("items[%d].quantity", i)] = "must be at least 1"
		}
		if _, err := domain.ParseAmount(item.Price); err != nil {
			details[fmt.Sprintf("items[%d].price", i)] = "must be a decimal string"
		}
	}
	if _, err := domain.ParseAmount(input.Total); err != nil {
		details["total"] = "must be a decimal string"
	}
	addr := input.ShippingAddress
	if addr.Name == "" || addr.Street == "" || addr.City == "" || addr.PostalCode == "" || addr.Phone == "" {
		details["shippingAddress"] = "name, street, city, postalCode, phone required"
	}
	if len(details) > 0 {
		return domain.Order{}, apperrors.NewValidationError("invalid order", details)
	}

	order := domain.Order{
		UserID:          userID,
		Items:           input.Items,
		Total:           input.Total,
		Status:          domain.OrderStatusPending,
		ShippingAddress: input.ShippingAddress,
	}
	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventOrderCreated,
		SubjectID: created.ID,
		Payload: events.OrderCreatedPayload{
			UserID:    created.UserID,
			Total:     created.Total,
			ItemCount: len(created.Items),
		},
	})
	return created, nil
}

// ByUser returns the orders placed by one user.
func (s *OrderService) ByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ByUser(ctx, userID)
}

// All returns every order. Privileged; the admin gate runs before this.
func (s *OrderService) All(ctx context.Context) ([]domain.Order, error) {
	return s.orders.All(ctx)
}

// Get returns one order.
func (s *OrderService) Get(ctx context.Context, id string) (domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return domain.Order{}, apperrors.NewNotFound("order", nil)
	}
	return order, nil
}

// SetStatus replaces the order status. Any of the five values is
// accepted from any current status; there is no transition graph.
func (s *OrderService) SetStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, apperrors.NewValidationError("invalid order", map[string]any{
			"status": "must be one of pending, processing, shipped, delivered, cancelled",
		})
	}

	previous, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return domain.Order{}, apperrors.NewNotFound("order", nil)
	}

	updated, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Order{}, apperrors.NewNotFound("order", nil)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventOrderStatusChanged,
		SubjectID: updated.ID,
		Payload: events.OrderStatusChangedPayload{
			OldStatus: previous.Status,
			NewStatus: updated.Status,
		},
	})
	return updated, nil
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
