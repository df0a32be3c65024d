package dto

import (
	"time"

	"github.com/sokobo/storefront/internal/domain"
)

// ProductCreateRequest payload for new catalog entries.
type ProductCreateRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Stock       int      `json:"stock"`
	Sizes       []string `json:"sizes"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
}

// ProductUpdateRequest carries a partial update; absent fields are left
// untouched, present list fields replace the stored list.
type ProductUpdateRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Price       *string  `json:"price"`
	Stock       *int     `json:"stock"`
	Sizes       []string `json:"sizes"`
	Images      []string `json:"images"`
	Featured    *bool    `json:"featured"`
}

// ProductResponse shapes a catalog entry.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
	Sizes       []string  `json:"sizes"`
	Images      []string  `json:"images"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductResponseFrom maps the domain model.
func ProductResponseFrom(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Sizes:       p.Sizes,
		Images:      p.Images,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
	}
}
