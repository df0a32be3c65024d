package dto

import (
	"time"

	"github.com/sokobo/storefront/internal/domain"
)

// PortfolioCreateRequest payload for new showcase items.
type PortfolioCreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
}

// PortfolioResponse shapes a showcase item.
type PortfolioResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// PortfolioResponseFrom maps the domain model.
func PortfolioResponseFrom(i domain.PortfolioItem) PortfolioResponse {
	return PortfolioResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Images:      i.Images,
		Category:    string(i.Category),
		CreatedAt:   i.CreatedAt,
	}
}
