package service

import (
	"context"

	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/repository"
)

// AnalyticsSummary aggregates headline numbers for the admin dashboard.
type AnalyticsSummary struct {
	TotalSales     string
	TotalProducts  int
	TotalOrders    int
	TotalCustomers int
}

// AnalyticsService derives dashboard figures from the live collections.
type AnalyticsService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(products repository.ProductRepository, orders repository.OrderRepository, users repository.UserRepository) *AnalyticsService {
	return &AnalyticsService{products: products, orders: orders, users: users}
}

// Summary computes the dashboard snapshot. Total sales sums stored order
// totals; unparseable totals contribute nothing.
func (s *AnalyticsService) Summary(ctx context.Context) (AnalyticsSummary, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return AnalyticsSummary{}, err
	}
	orders, err := s.orders.All(ctx)
	if err != nil {
		return AnalyticsSummary{}, err
	}
	users, err := s.users.All(ctx)
	if err != nil {
		return AnalyticsSummary{}, err
	}

	var salesCents int64
	for _, order := range orders {
		cents, err := domain.ParseAmount(order.Total)
		if err != nil {
			continue
		}
		salesCents += cents
	}

	customers := 0
	for _, user := range users {
		if user.Role == domain.RoleCustomer {
			customers++
		}
	}

	return AnalyticsSummary{
		TotalSales:     domain.FormatAmount(salesCents),
		TotalProducts:  len(products),
		TotalOrders:    len(orders),
		TotalCustomers: customers,
	}, nil
}
