package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/repository"
	apperrors "github.com/sokobo/storefront/pkg/util"
)

func newProductService() (*ProductService, repository.ProductRepository) {
	repo := repository.NewProductRepository()
	return NewProductService(repo, nil), repo
}

func validProduct() ProductCreateInput {
	return ProductCreateInput{
		Name:        "Tee",
		Category:    domain.CategoryTShirts,
		Description: "Plain tee",
		Price:       "100.00",
		Stock:       2,
		Sizes:       []string{"M"},
		Images:      []string{"x.png"},
	}
}

func requireDomainErr(t *testing.T, err error, code string) *apperrors.DomainError {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %v", err)
	require.Equal(t, code, domainErr.Code)
	return domainErr
}

func TestProductService_CreateRoundTrip(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validProduct())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestProductService_CreateAppliesDefaults(t *testing.T) {
	svc, _ := newProductService()

	input := validProduct()
	input.Sizes = nil
	input.Images = nil
	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, []string{}, created.Sizes)
	assert.Equal(t, []string{}, created.Images)
	assert.False(t, created.Featured)
}

func TestProductService_CreateValidation(t *testing.T) {
	svc, _ := newProductService()

	input := ProductCreateInput{
		Category: "socks",
		Price:    "abc",
		Stock:    -1,
	}
	_, err := svc.Create(context.Background(), input)
	domainErr := requireDomainErr(t, err, "VALIDATION_FAILED")

	for _, field := range []string{"name", "category", "description", "price", "stock"} {
		assert.Contains(t, domainErr.Details, field)
	}
}

func TestProductService_CreateRejectsNegativePrice(t *testing.T) {
	svc, _ := newProductService()

	input := validProduct()
	input.Price = "-5.00"
	_, err := svc.Create(context.Background(), input)
	domainErr := requireDomainErr(t, err, "VALIDATION_FAILED")
	assert.Contains(t, domainErr.Details, "price")
}

func TestProductService_ByCategoryAndFeatured(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	tee := validProduct()
	hoodie := validProduct()
	hoodie.Name = "Hoodie"
	hoodie.Category = domain.CategoryHoodies
	hoodie.Featured = true

	_, err := svc.Create(ctx, tee)
	require.NoError(t, err)
	created, err := svc.Create(ctx, hoodie)
	require.NoError(t, err)

	hoodies, err := svc.ByCategory(ctx, domain.CategoryHoodies)
	require.NoError(t, err)
	require.Len(t, hoodies, 1)
	assert.Equal(t, created.ID, hoodies[0].ID)

	featured, err := svc.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, created.ID, featured[0].ID)

	none, err := svc.ByCategory(ctx, "socks")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductService_PatchMergesPartialFields(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validProduct())
	require.NoError(t, err)

	price := "120.00"
	featured := true
	updated, err := svc.Patch(ctx, created.ID, ProductPatch{
		Price:    &price,
		Featured: &featured,
		Sizes:    []string{"S", "M", "L"},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "120.00", updated.Price)
	assert.True(t, updated.Featured)
	assert.Equal(t, []string{"S", "M", "L"}, updated.Sizes)

	// untouched fields retain prior values
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Stock, updated.Stock)
	assert.Equal(t, created.Images, updated.Images)
}

func TestProductService_PatchMissingProduct(t *testing.T) {
	svc, _ := newProductService()

	name := "x"
	_, err := svc.Patch(context.Background(), "nope", ProductPatch{Name: &name})
	requireDomainErr(t, err, "NOT_FOUND")
}

func TestProductService_Delete(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validProduct())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	requireDomainErr(t, err, "NOT_FOUND")

	err = svc.Delete(ctx, created.ID)
	requireDomainErr(t, err, "NOT_FOUND")
}
