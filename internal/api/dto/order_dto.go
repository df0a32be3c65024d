package dto

import (
	"time"

	"github.com/sokobo/storefront/internal/domain"
)

// OrderItemPayload is one order line, snapshotted at checkout.
type OrderItemPayload struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Price     string `json:"price"`
	Name      string `json:"name"`
	Image     string `json:"image"`
}

// ShippingAddressPayload is the delivery destination.
type ShippingAddressPayload struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

// OrderCreateRequest payload for checkout. The total is supplied by the
// client and stored as-is.
type OrderCreateRequest struct {
	Items           []OrderItemPayload     `json:"items"`
	Total           string                 `json:"total"`
	ShippingAddress ShippingAddressPayload `json:"shippingAddress"`
}

// OrderStatusUpdateRequest payload for admin status changes.
type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

// OrderResponse shapes an order.
type OrderResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	Items           []OrderItemPayload     `json:"items"`
	Total           string                 `json:"total"`
	Status          string                 `json:"status"`
	ShippingAddress ShippingAddressPayload `json:"shipping_address"`
	CreatedAt       time.Time              `json:"created_at"`
}

// OrderResponseFrom maps the domain model.
func OrderResponseFrom(o domain.Order) OrderResponse {
	items := make([]OrderItemPayload, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Price:     item.Price,
			Name:      item.Name,
			Image:     item.Image,
		})
	}
	return OrderResponse{
		ID:     o.ID,
		UserID: o.UserID,
		Items:  items,
		Total:  o.Total,
		Status: string(o.Status),
		ShippingAddress: ShippingAddressPayload{
			Name:       o.ShippingAddress.Name,
			Street:     o.ShippingAddress.Street,
			City:       o.ShippingAddress.City,
			PostalCode: o.ShippingAddress.PostalCode,
			Phone:      o.ShippingAddress.Phone,
		},
		CreatedAt: o.CreatedAt,
	}
}

// OrderItemsToDomain maps request lines to domain snapshots.
func OrderItemsToDomain(items []OrderItemPayload) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Price:     item.Price,
			Name:      item.Name,
			Image:     item.Image,
		})
	}
	return out
}
