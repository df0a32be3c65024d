package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/sokobo/storefront/internal/api/http"
	"github.com/sokobo/storefront/internal/api/http/handlers"
	"github.com/sokobo/storefront/internal/auth"
	"github.com/sokobo/storefront/internal/config"
	"github.com/sokobo/storefront/internal/events"
	"github.com/sokobo/storefront/internal/observability"
	"github.com/sokobo/storefront/internal/persistence"
	"github.com/sokobo/storefront/internal/repository"
	"github.com/sokobo/storefront/internal/seed"
	"github.com/sokobo/storefront/internal/service"
	"github.com/sokobo/storefront/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	userRepo := repository.NewUserRepository()
	productRepo := repository.NewProductRepository()
	orderRepo := repository.NewOrderRepository()
	portfolioRepo := repository.NewPortfolioRepository()
	repos := persistence.Repositories{
		Users:     userRepo,
		Products:  productRepo,
		Orders:    orderRepo,
		Portfolio: portfolioRepo,
	}

	snapshots := persistence.NewSnapshotStore(pg, logger)
	if err := snapshots.EnsureSchema(ctx); err != nil {
		logger.Fatal("failed to prepare snapshot store", zap.Error(err))
	}
	if err := snapshots.RestoreAll(ctx, repos); err != nil {
		logger.Fatal("failed to restore snapshots", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	cache := persistence.NewProductCache(redis, cfg.Redis.CacheTTL(), logger)

	authService := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, cache)
	orderService := service.NewOrderService(orderRepo, dispatcher)
	portfolioService := service.NewPortfolioService(portfolioRepo)
	analyticsService := service.NewAnalyticsService(productRepo, orderRepo, userRepo)
	contactService := service.NewContactService(dispatcher, logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	if cfg.Seed.DemoData {
		err := seed.Run(ctx, *cfg, logger, seed.Dependencies{
			Users:     userRepo,
			Products:  productService,
			Portfolio: portfolioService,
		})
		if err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Products:       handlers.NewProductsHandler(productService),
		Orders:         handlers.NewOrdersHandler(orderService),
		Portfolio:      handlers.NewPortfolioHandler(portfolioService),
		Users:          handlers.NewUsersHandler(authService, userService),
		Contact:        handlers.NewContactHandler(contactService),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	stopSnapshots := startSnapshotLoop(ctx, cfg.Postgres.SnapshotInterval(), snapshots, repos, logger)

	waitForShutdown(logger)
	stopSnapshots()

	if err := snapshots.SaveAll(context.Background(), repos); err != nil {
		logger.Error("failed to save final snapshot", zap.Error(err))
	}
	_ = app.Shutdown()
}

// startSnapshotLoop flushes collections to postgres on a fixed interval.
// Returns a stop function; a nil pool or zero interval disables the loop.
func startSnapshotLoop(ctx context.Context, interval time.Duration, snapshots *persistence.SnapshotStore, repos persistence.Repositories, logger *zap.Logger) func() {
	if !snapshots.Enabled() || interval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := snapshots.SaveAll(ctx, repos); err != nil {
					logger.Error("periodic snapshot failed", zap.Error(err))
				}
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	return func() { close(done) }
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
