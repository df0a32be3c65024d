package service

import (
	"context"

	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/persistence"
	"github.com/sokobo/storefront/internal/repository"
	apperrors "github.com/sokobo/storefront/pkg/util"
)

// Cache keys for product listings. Category listings append the
// category value.
const (
	cacheKeyAll      = "products:all"
	cacheKeyFeatured = "products:featured"
	cacheKeyCategory = "products:category:"
)

// ProductService coordinates catalog reads and privileged writes.
type ProductService struct {
	products repository.ProductRepository
	cache    *persistence.ProductCache
}

// ProductCreateInput describes the product creation payload.
type ProductCreateInput struct {
	Name        string
	Category    domain.ProductCategory
	Description string
	Price       string
	Stock       int
	Sizes       []string
	Images      []string
	Featured    bool
}

// ProductPatch carries a partial update. Nil fields retain their prior
// value; non-nil list fields replace the stored list wholesale.
type ProductPatch struct {
	Name        *string
	Category    *domain.ProductCategory
	Description *string
	Price       *string
	Stock       *int
	Sizes       []string
	Images      []string
	Featured    *bool
}

// NewProductService constructs the service.
func NewProductService(products repository.ProductRepository, cache *persistence.ProductCache) *ProductService {
	return &ProductService{products: products, cache: cache}
}

// List returns the full catalog.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	if cached, ok := s.cache.Get(ctx, cacheKeyAll); ok {
		return cached, nil
	}
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyAll, products)
	return products, nil
}

// ByCategory returns products in the given category. Unknown categories
// yield an empty list rather than an error.
func (s *ProductService) ByCategory(ctx context.Context, category domain.ProductCategory) ([]domain.Product, error) {
	key := cacheKeyCategory + string(category)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached, nil
	}
	products, err := s.products.ByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, products)
	return products, nil
}

// Featured returns products flagged for the home page.
func (s *ProductService) Featured(ctx context.Context) ([]domain.Product, error) {
	if cached, ok := s.cache.Get(ctx, cacheKeyFeatured); ok {
		return cached, nil
	}
	products, err := s.products.Featured(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyFeatured, products)
	return products, nil
}

// Get returns one product.
func (s *ProductService) Get(ctx context.Context, id string) (domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return domain.Product{}, apperrors.NewNotFound("product", nil)
	}
	return product, nil
}

// Create validates and inserts a catalog entry. Prices are normalized to
// two decimal places.
func (s *ProductService) Create(ctx context.Context, input ProductCreateInput) (domain.Product, error) {
	details := map[string]any{}
	if input.Name == "" {
		details["name"] = "required"
	}
	if !input.Category.Valid() {
		details["category"] = "must be one of tshirts, hoodies, hats"
	}
	if input.Description == "" {
		details["description"] = "required"
	}
	cents, err := domain.ParseAmount(input.Price)
	if err != nil {
		details["price"] = "must be a decimal string"
	} else if cents < 0 {
		details["price"] = "must not be negative"
	}
	if input.Stock < 0 {
		details["stock"] = "must not be negative"
	}
	if len(details) > 0 {
		return domain.Product{}, apperrors.NewValidationError("invalid product", details)
	}

	product := domain.Product{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Price:       domain.FormatAmount(cents),
		Stock:       input.Stock,
		Sizes:       input.Sizes,
		Images:      input.Images,
		Featured:    input.Featured,
	}
	created, err := s.products.Create(ctx, product)
	if err != nil {
		return domain.Product{}, err
	}
	s.cache.Invalidate(ctx)
	return created, nil
}

// Patch merges a partial update into an existing product. Omitted fields
// retain their prior values exactly; id and createdAt are preserved.
func (s *ProductService) Patch(ctx context.Context, id string, patch ProductPatch) (domain.Product, error) {
	details := map[string]any{}
	if patch.Category != nil && !patch.Category.Valid() {
		details["category"] = "must be one of tshirts, hoodies, hats"
	}
	var priceCents int64
	if patch.Price != nil {
		cents, err := domain.ParseAmount(*patch.Price)
		if err != nil {
			details["price"] = "must be a decimal string"
		} else if cents < 0 {
			details["price"] = "must not be negative"
		} else {
			priceCents = cents
		}
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		details["stock"] = "must not be negative"
	}
	if len(details) > 0 {
		return domain.Product{}, apperrors.NewValidationError("invalid product", details)
	}

	updated, err := s.products.Update(ctx, id, func(p domain.Product) domain.Product {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = domain.FormatAmount(priceCents)
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.Featured != nil {
			p.Featured = *patch.Featured
		}
		p.Sizes = patchList(p.Sizes, patch.Sizes)
		p.Images = patchList(p.Images, patch.Images)
		return p
	})
	if err != nil {
		return domain.Product{}, apperrors.NewNotFound("product", nil)
	}
	s.cache.Invalidate(ctx)
	return updated, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	deleted, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("product", nil)
	}
	s.cache.Invalidate(ctx)
	return nil
}

// patchList replaces the current list only when the patch carries one.
// The replacement is copied so callers cannot alias stored state.
func patchList[T any](current, update []T) []T {
	if update == nil {
		return current
	}
	return append([]T(nil), update...)
}
