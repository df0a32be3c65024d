package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sokobo/storefront/internal/api/http/handlers"
	"github.com/sokobo/storefront/internal/auth"
	"github.com/sokobo/storefront/internal/config"
	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/events"
	"github.com/sokobo/storefront/internal/observability"
	"github.com/sokobo/storefront/internal/repository"
	"github.com/sokobo/storefront/internal/service"
)

// testEnv holds a fully wired app backed by empty in-memory stores.
type testEnv struct {
	app        *fiber.App
	users      repository.UserRepository
	products   repository.ProductRepository
	orders     repository.OrderRepository
	tokens     *auth.TokenManager
	productSvc *service.ProductService
	orderSvc   *service.OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	users := repository.NewUserRepository()
	products := repository.NewProductRepository()
	orders := repository.NewOrderRepository()
	portfolio := repository.NewPortfolioRepository()

	authCfg := config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5, BcryptCost: 4}
	authSvc := service.NewAuthService(authCfg, users, dispatcher)
	productSvc := service.NewProductService(products, nil)
	orderSvc := service.NewOrderService(orders, dispatcher)

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("sokobo-storefront", "test", nil, nil),
		Products:       handlers.NewProductsHandler(productSvc),
		Orders:         handlers.NewOrdersHandler(orderSvc),
		Portfolio:      handlers.NewPortfolioHandler(service.NewPortfolioService(portfolio)),
		Users:          handlers.NewUsersHandler(authSvc, service.NewUserService(users)),
		Contact:        handlers.NewContactHandler(service.NewContactService(dispatcher, logger)),
		Analytics:      handlers.NewAnalyticsHandler(service.NewAnalyticsService(products, orders, users)),
		AuthMiddleware: auth.NewMiddleware(authSvc.TokenManager(), users),
	})

	return &testEnv{
		app:        app,
		users:      users,
		products:   products,
		orders:     orders,
		tokens:     authSvc.TokenManager(),
		productSvc: productSvc,
		orderSvc:   orderSvc,
	}
}

// userToken seeds an account directly and mints a token for it.
func (e *testEnv) userToken(t *testing.T, name, email string, role domain.Role) (domain.User, string) {
	t.Helper()
	user, err := e.users.Create(context.Background(), domain.User{
		Name: name, Email: email, PasswordHash: "irrelevant", Role: role,
	})
	require.NoError(t, err)
	token, _, err := e.tokens.GenerateToken(user)
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) seedProduct(t *testing.T, name string, price string) domain.Product {
	t.Helper()
	product, err := e.productSvc.Create(context.Background(), service.ProductCreateInput{
		Name:        name,
		Category:    domain.CategoryTShirts,
		Description: "Heavyweight cotton tee",
		Price:       price,
		Stock:       10,
		Sizes:       []string{"S", "M", "L"},
		Images:      []string{"/images/" + name + ".jpg"},
	})
	require.NoError(t, err)
	return product
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

type errorEnvelope struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func requireErrorCode(t *testing.T, resp *http.Response, status int, code string) errorEnvelope {
	t.Helper()
	require.Equal(t, status, resp.StatusCode)
	envelope := decodeBody[errorEnvelope](t, resp)
	require.Equal(t, code, envelope.Error.Code)
	return envelope
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/health/live", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	live := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "alive", live["status"])

	// Neither postgres nor redis is configured; readiness still passes.
	resp = env.request(t, http.MethodGet, "/health/ready", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ready := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "ready", ready["status"])
}

func TestContactSubmit(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/api/contact", "", map[string]any{
		"firstName": "Thabo",
		"lastName":  "Mokoena",
		"email":     "thabo@example.com",
		"message":   "Do you ship to Durban?",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "Contact form submitted successfully", body["message"])

	resp = env.request(t, http.MethodPost, "/api/contact", "", map[string]any{
		"firstName": "Thabo",
	})
	envelope := requireErrorCode(t, resp, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, envelope.Error.Details, "email")
	assert.Contains(t, envelope.Error.Details, "message")
}

func TestAnalyticsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	_, customerToken := env.userToken(t, "Thabo", "thabo@example.com", domain.RoleCustomer)
	admin, adminToken := env.userToken(t, "Zanele", "zanele@example.com", domain.RoleAdmin)

	resp := env.request(t, http.MethodGet, "/api/analytics", "", nil)
	requireErrorCode(t, resp, http.StatusUnauthorized, "UNAUTHORIZED")

	resp = env.request(t, http.MethodGet, "/api/analytics", customerToken, nil)
	requireErrorCode(t, resp, http.StatusForbidden, "FORBIDDEN")

	env.seedProduct(t, "Org Tee", "350.00")
	_, err := env.orderSvc.Create(context.Background(), admin.ID, service.OrderCreateInput{
		Items: []domain.OrderItem{{ProductID: "p1", Quantity: 1, Size: "M", Price: "350.00", Name: "Org Tee"}},
		Total: "350.00",
		ShippingAddress: domain.ShippingAddress{
			Name: "Zanele", Street: "1 Long St", City: "Cape Town", PostalCode: "8001", Phone: "0211234567",
		},
	})
	require.NoError(t, err)

	resp = env.request(t, http.MethodGet, "/api/analytics", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "350.00", summary["totalSales"])
	assert.EqualValues(t, 1, summary["totalProducts"])
	assert.EqualValues(t, 1, summary["totalOrders"])
	assert.EqualValues(t, 1, summary["totalCustomers"])
}
