package repository

import (
	"context"
	"time"

	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/store"
)

// OrderRepository defines persistence access for orders.
type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	GetByID(ctx context.Context, id string) (domain.Order, error)
	All(ctx context.Context) ([]domain.Order, error)
	ByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error)

	Export() []domain.Order
	Import(orders []domain.Order)
}

type orderRepository struct {
	orders *store.Collection[domain.Order]
}

// NewOrderRepository returns a memory-backed implementation.
func NewOrderRepository() OrderRepository {
	return &orderRepository{
		orders: store.NewCollection(func(o domain.Order) string { return o.ID }),
	}
}

func (r *orderRepository) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	created := r.orders.Create(func(id string, createdAt time.Time) domain.Order {
		order.ID = id
		order.CreatedAt = createdAt
		if order.Status == "" {
			order.Status = domain.OrderStatusPending
		}
		if order.Items == nil {
			order.Items = []domain.OrderItem{}
		}
		return order
	})
	return created, nil
}

func (r *orderRepository) GetByID(_ context.Context, id string) (domain.Order, error) {
	order, ok := r.orders.Get(id)
	if !ok {
		return domain.Order{}, store.ErrNotFound
	}
	return order, nil
}

func (r *orderRepository) All(_ context.Context) ([]domain.Order, error) {
	return r.orders.All(), nil
}

func (r *orderRepository) ByUser(_ context.Context, userID string) ([]domain.Order, error) {
	return r.orders.Find(func(o domain.Order) bool { return o.UserID == userID }), nil
}

func (r *orderRepository) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	return r.orders.Update(id, func(o domain.Order) domain.Order {
		o.Status = status
		return o
	})
}

func (r *orderRepository) Export() []domain.Order {
	return r.orders.Export()
}

func (r *orderRepository) Import(orders []domain.Order) {
	r.orders.Import(orders)
}
