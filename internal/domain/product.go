package domain

import "time"

// ProductCategory enumerates catalog sections. New categories are added
// here; storage places no constraint beyond non-emptiness.
type ProductCategory string

const (
	CategoryTShirts ProductCategory = "tshirts"
	CategoryHoodies ProductCategory = "hoodies"
	CategoryHats    ProductCategory = "hats"
)

// Valid reports whether the category is one of the known values.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryTShirts, CategoryHoodies, CategoryHats:
		return true
	}
	return false
}

// Product is a catalog entry. Price is a decimal string with two decimal
// places so money never rides on floats. Sizes and Images are ordered;
// the first image is the primary one.
type Product struct {
	ID          string
	Name        string
	Category    ProductCategory
	Description string
	Price       string
	Stock       int
	Sizes       []string
	Images      []string
	Featured    bool
	CreatedAt   time.Time
}

// PrimaryImage returns the first image reference, or "" when none exist.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// InStock reports whether any units remain. A zero stock only affects
// display semantics; it does not block further stock mutation.
func (p Product) InStock() bool {
	return p.Stock > 0
}
