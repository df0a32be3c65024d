package repository

import (
	"context"
	"time"

	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/store"
)

// PortfolioRepository defines persistence access for showcase items.
type PortfolioRepository interface {
	Create(ctx context.Context, item domain.PortfolioItem) (domain.PortfolioItem, error)
	GetByID(ctx context.Context, id string) (domain.PortfolioItem, error)
	All(ctx context.Context) ([]domain.PortfolioItem, error)
	Delete(ctx context.Context, id string) (bool, error)

	Export() []domain.PortfolioItem
	Import(items []domain.PortfolioItem)
}

type portfolioRepository struct {
	items *store.Collection[domain.PortfolioItem]
}

// NewPortfolioRepository returns a memory-backed implementation.
func NewPortfolioRepository() PortfolioRepository {
	return &portfolioRepository{
		items: store.NewCollection(func(i domain.PortfolioItem) string { return i.ID }),
	}
}

func (r *portfolioRepository) Create(_ context.Context, item domain.PortfolioItem) (domain.PortfolioItem, error) {
	created := r.items.Create(func(id string, createdAt time.Time) domain.PortfolioItem {
		item.ID = id
		item.CreatedAt = createdAt
		if item.Images == nil {
			item.Images = []string{}
		}
		return item
	})
	return created, nil
}

func (r *portfolioRepository) GetByID(_ context.Context, id string) (domain.PortfolioItem, error) {
	item, ok := r.items.Get(id)
	if !ok {
		return domain.PortfolioItem{}, store.ErrNotFound
	}
	return item, nil
}

func (r *portfolioRepository) All(_ context.Context) ([]domain.PortfolioItem, error) {
	return r.items.All(), nil
}

func (r *portfolioRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.items.Delete(id), nil
}

func (r *portfolioRepository) Export() []domain.PortfolioItem {
	return r.items.Export()
}

func (r *portfolioRepository) Import(items []domain.PortfolioItem) {
	r.items.Import(items)
}
