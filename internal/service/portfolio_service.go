package service

import (
	"context"

	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/repository"
	apperrors "github.com/sokobo/storefront/pkg/util"
)

// PortfolioService manages the public design-work showcase.
type PortfolioService struct {
	items repository.PortfolioRepository
}

// PortfolioCreateInput describes the creation payload.
type PortfolioCreateInput struct {
	Title       string
	Description string
	Images      []string
	Category    domain.PortfolioCategory
}

// NewPortfolioService constructs the service.
func NewPortfolioService(items repository.PortfolioRepository) *PortfolioService {
	return &PortfolioService{items: items}
}

// List returns every showcase item. Reads are public.
func (s *PortfolioService) List(ctx context.Context) ([]domain.PortfolioItem, error) {
	return s.items.All(ctx)
}

// Get returns one item.
func (s *PortfolioService) Get(ctx context.Context, id string) (domain.PortfolioItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return domain.PortfolioItem{}, apperrors.NewNotFound("portfolio item", nil)
	}
	return item, nil
}

// Create validates and inserts a showcase item.
func (s *PortfolioService) Create(ctx context.Context, input PortfolioCreateInput) (domain.PortfolioItem, error) {
	details := map[string]any{}
	if input.Title == "" {
		details["title"] = "required"
	}
	if input.Description == "" {
		details["description"] = "required"
	}
	if !input.Category.Valid() {
		details["category"] = "must be one of branding, print, digital, apparel"
	}
	if len(details) > 0 {
		return domain.PortfolioItem{}, apperrors.NewValidationError("invalid portfolio item", details)
	}

	return s.items.Create(ctx, domain.PortfolioItem{
		Title:       input.Title,
		Description: input.Description,
		Images:      input.Images,
		Category:    input.Category,
	})
}

// Delete removes a showcase item.
func (s *PortfolioService) Delete(ctx context.Context, id string) error {
	deleted, err := s.items.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("portfolio item", nil)
	}
	return nil
}
