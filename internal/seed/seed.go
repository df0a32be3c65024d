// Package seed bootstraps demo data for development deployments: one
// admin account, a handful of catalog entries and portfolio pieces.
package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/sokobo/storefront/internal/auth"
	"github.com/sokobo/storefront/internal/config"
	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/repository"
	"github.com/sokobo/storefront/internal/service"
)

// Dependencies bundles what seeding needs.
type Dependencies struct {
	Users     repository.UserRepository
	Products  *service.ProductService
	Portfolio *service.PortfolioService
}

// Run inserts demo data unless the catalog already has entries, so a
// snapshot-restored deployment is never double-seeded.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger, deps Dependencies) error {
	existing, err := deps.Products.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("catalog already populated; skipping demo seed")
		return nil
	}

	if cfg.Seed.AdminPassword == "" {
		logger.Warn("SEED_ADMIN_PASSWORD not set; skipping admin account seed")
	} else {
		hash, err := auth.HashPassword(cfg.Seed.AdminPassword, cfg.Auth.BcryptCost)
		if err != nil {
			return err
		}
		if _, err := deps.Users.Create(ctx, domain.User{
			Name:         "Admin User",
			Email:        cfg.Seed.AdminEmail,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
		}); err != nil {
			return err
		}
	}

	for _, input := range demoProducts() {
		if _, err := deps.Products.Create(ctx, input); err != nil {
			return err
		}
	}
	for _, input := range demoPortfolio() {
		if _, err := deps.Portfolio.Create(ctx, input); err != nil {
			return err
		}
	}

	logger.Info("demo data seeded")
	return nil
}

func demoProducts() []service.ProductCreateInput {
	return []service.ProductCreateInput{
		{
			Name:        "Sokobo Classic Tee",
			Category:    domain.CategoryTShirts,
			Description: "Premium cotton streetwear with signature graphics. Comfortable fit with bold Sokobo branding.",
			Price:       "350.00",
			Stock:       50,
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Images:      []string{"/images/classic-tee-front.jpg", "/images/classic-tee-back.jpg"},
			Featured:    true,
		},
		{
			Name:        "Sokobo Street Hoodie",
			Category:    domain.CategoryHoodies,
			Description: "Oversized fit with bold graphics and premium comfort. Perfect for the urban lifestyle.",
			Price:       "650.00",
			Stock:       30,
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Images:      []string{"/images/street-hoodie-front.jpg", "/images/street-hoodie-detail.jpg"},
			Featured:    true,
		},
		{
			Name:        "Sokobo Signature Cap",
			Category:    domain.CategoryHats,
			Description: "Embroidered logo with adjustable strap. Classic streetwear essential.",
			Price:       "250.00",
			Stock:       75,
			Sizes:       []string{"One Size"},
			Images:      []string{"/images/signature-cap.jpg"},
			Featured:    true,
		},
		{
			Name:        "Urban Flow Tee",
			Category:    domain.CategoryTShirts,
			Description: "Minimalist design with contemporary graphics. Essential streetwear piece.",
			Price:       "320.00",
			Stock:       40,
			Sizes:       []string{"S", "M", "L", "XL"},
			Images:      []string{"/images/urban-flow-tee.jpg"},
			Featured:    false,
		},
		{
			Name:        "Midnight Hoodie",
			Category:    domain.CategoryHoodies,
			Description: "All-black premium hoodie with subtle branding. Perfect for any occasion.",
			Price:       "720.00",
			Stock:       25,
			Sizes:       []string{"M", "L", "XL", "XXL"},
			Images:      []string{"/images/midnight-hoodie.jpg"},
			Featured:    false,
		},
	}
}

func demoPortfolio() []service.PortfolioCreateInput {
	return []service.PortfolioCreateInput{
		{
			Title:       "Kasi Culture Brand Identity",
			Description: "Full identity system for a township lifestyle brand: logo, palette and packaging.",
			Images:      []string{"/images/portfolio/kasi-identity.jpg"},
			Category:    domain.PortfolioBranding,
		},
		{
			Title:       "Festival Poster Series",
			Description: "Limited print run of screen-printed posters for a summer music festival.",
			Images:      []string{"/images/portfolio/festival-posters.jpg"},
			Category:    domain.PortfolioPrint,
		},
		{
			Title:       "Heritage Capsule Collection",
			Description: "Graphic direction and garment prints for a heritage month apparel drop.",
			Images:      []string{"/images/portfolio/heritage-capsule.jpg"},
			Category:    domain.PortfolioApparel,
		},
	}
}
