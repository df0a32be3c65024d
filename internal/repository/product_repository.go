package repository

import (
	"context"
	"time"

	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/store"
)

// ProductRepository defines persistence access for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	GetByID(ctx context.Context, id string) (domain.Product, error)
	All(ctx context.Context) ([]domain.Product, error)
	ByCategory(ctx context.Context, category domain.ProductCategory) ([]domain.Product, error)
	Featured(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id string, mutate func(domain.Product) domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id string) (bool, error)

	Export() []domain.Product
	Import(products []domain.Product)
}

type productRepository struct {
	products *store.Collection[domain.Product]
}

// NewProductRepository returns a memory-backed implementation.
func NewProductRepository() ProductRepository {
	return &productRepository{
		products: store.NewCollection(func(p domain.Product) string { return p.ID }),
	}
}

func (r *productRepository) Create(_ context.Context, product domain.Product) (domain.Product, error) {
	created := r.products.Create(func(id string, createdAt time.Time) domain.Product {
		product.ID = id
		product.CreatedAt = createdAt
		if product.Sizes == nil {
			product.Sizes = []string{}
		}
		if product.Images == nil {
			product.Images = []string{}
		}
		return product
	})
	return created, nil
}

func (r *productRepository) GetByID(_ context.Context, id string) (domain.Product, error) {
	product, ok := r.products.Get(id)
	if !ok {
		return domain.Product{}, store.ErrNotFound
	}
	return product, nil
}

func (r *productRepository) All(_ context.Context) ([]domain.Product, error) {
	return r.products.All(), nil
}

func (r *productRepository) ByCategory(_ context.Context, category domain.ProductCategory) ([]domain.Product, error) {
	return r.products.Find(func(p domain.Product) bool { return p.Category == category }), nil
}

func (r *productRepository) Featured(_ context.Context) ([]domain.Product, error) {
	return r.products.Find(func(p domain.Product) bool { return p.Featured }), nil
}

func (r *productRepository) Update(_ context.Context, id string, mutate func(domain.Product) domain.Product) (domain.Product, error) {
	return r.products.Update(id, mutate)
}

func (r *productRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.products.Delete(id), nil
}

func (r *productRepository) Export() []domain.Product {
	return r.products.Export()
}

func (r *productRepository) Import(products []domain.Product) {
	r.products.Import(products)
}
