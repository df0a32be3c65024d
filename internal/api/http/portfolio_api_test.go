package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokobo/storefront/internal/api/dto"
	"github.com/sokobo/storefront/internal/domain"
)

func TestPortfolioRoutes(t *testing.T) {
	env := newTestEnv(t)
	_, customerToken := env.userToken(t, "Thabo", "thabo@example.com", domain.RoleCustomer)
	_, adminToken := env.userToken(t, "Zanele", "zanele@example.com", domain.RoleAdmin)

	resp := env.request(t, http.MethodPost, "/api/portfolio", customerToken, map[string]any{
		"title": "Rebrand", "description": "Full identity refresh", "category": "branding",
	})
	requireErrorCode(t, resp, http.StatusForbidden, "FORBIDDEN")

	resp = env.request(t, http.MethodPost, "/api/portfolio", adminToken, map[string]any{
		"title":       "Rebrand",
		"description": "Full identity refresh",
		"images":      []string{"/images/rebrand.jpg"},
		"category":    "branding",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.PortfolioResponse](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "branding", created.Category)

	resp = env.request(t, http.MethodPost, "/api/portfolio", adminToken, map[string]any{
		"title": "", "category": "murals",
	})
	envelope := requireErrorCode(t, resp, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, envelope.Error.Details, "title")
	assert.Contains(t, envelope.Error.Details, "category")

	// Reads are public.
	resp = env.request(t, http.MethodGet, "/api/portfolio", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decodeBody[[]dto.PortfolioResponse](t, resp)
	require.Len(t, items, 1)

	resp = env.request(t, http.MethodDelete, "/api/portfolio/"+created.ID, adminToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.request(t, http.MethodDelete, "/api/portfolio/"+created.ID, adminToken, nil)
	requireErrorCode(t, resp, http.StatusNotFound, "NOT_FOUND")
}
