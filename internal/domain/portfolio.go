package domain

import "time"

// PortfolioCategory enumerates showcase sections.
type PortfolioCategory string

const (
	PortfolioBranding PortfolioCategory = "branding"
	PortfolioPrint    PortfolioCategory = "print"
	PortfolioDigital  PortfolioCategory = "digital"
	PortfolioApparel  PortfolioCategory = "apparel"
)

// Valid reports whether the category is one of the known values.
func (c PortfolioCategory) Valid() bool {
	switch c {
	case PortfolioBranding, PortfolioPrint, PortfolioDigital, PortfolioApparel:
		return true
	}
	return false
}

// PortfolioItem is a design-work showcase entry. All items are public.
type PortfolioItem struct {
	ID          string
	Title       string
	Description string
	Images      []string
	Category    PortfolioCategory
	CreatedAt   time.Time
}
