package domain

import "time"

// OrderStatus enumerates order lifecycle states. No transition graph is
// enforced; any status may replace any other.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a historical snapshot of a product line at purchase time.
// Name, Image and Price are captured by value so later product edits never
// alter past orders.
type OrderItem struct {
	ProductID string
	Quantity  int
	Size      string
	Price     string
	Name      string
	Image     string
}

// ShippingAddress is the delivery destination captured with the order.
type ShippingAddress struct {
	Name       string
	Street     string
	City       string
	PostalCode string
	Phone      string
}

// Order records a checkout. UserID is a weak reference: deleting the user
// leaves the order orphaned. Total is supplied by the caller at checkout
// and stored as-is, never recomputed from Items.
type Order struct {
	ID              string
	UserID          string
	Items           []OrderItem
	Total           string
	Status          OrderStatus
	ShippingAddress ShippingAddress
	CreatedAt       time.Time
}
