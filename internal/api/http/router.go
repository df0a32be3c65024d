package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sokobo/storefront/internal/api/http/handlers"
	"github.com/sokobo/storefront/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Products       *handlers.ProductsHandler
	Orders         *handlers.OrdersHandler
	Portfolio      *handlers.PortfolioHandler
	Users          *handlers.UsersHandler
	Contact        *handlers.ContactHandler
	Analytics      *handlers.AnalyticsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Capability gates are composed here,
// once per route, rather than checked inside handler bodies.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authed := cfg.AuthMiddleware.Handle
	requireAuth := auth.RequireAuthenticated()
	requireAdmin := auth.RequireAdministrator()

	api.Post("/auth/register", cfg.Users.Register)
	api.Post("/auth/login", cfg.Users.Login)

	api.Get("/products", cfg.Products.List)
	api.Get("/products/:id", cfg.Products.Get)
	api.Post("/products", authed, requireAdmin, cfg.Products.Create)
	api.Put("/products/:id", authed, requireAdmin, cfg.Products.Update)
	api.Delete("/products/:id", authed, requireAdmin, cfg.Products.Delete)

	api.Get("/orders", authed, requireAuth, cfg.Orders.List)
	api.Post("/orders", authed, requireAuth, cfg.Orders.Create)
	api.Get("/orders/:id", authed, requireAuth, cfg.Orders.Get)
	api.Put("/orders/:id/status", authed, requireAdmin, cfg.Orders.UpdateStatus)

	api.Get("/portfolio", cfg.Portfolio.List)
	api.Post("/portfolio", authed, requireAdmin, cfg.Portfolio.Create)
	api.Delete("/portfolio/:id", authed, requireAdmin, cfg.Portfolio.Delete)

	api.Get("/users", authed, requireAdmin, cfg.Users.List)
	api.Put("/users/:id/role", authed, requireAdmin, cfg.Users.UpdateRole)
	api.Delete("/users/:id", authed, requireAdmin, cfg.Users.Delete)

	api.Post("/contact", cfg.Contact.Submit)
	api.Get("/analytics", authed, requireAdmin, cfg.Analytics.Summary)
}
