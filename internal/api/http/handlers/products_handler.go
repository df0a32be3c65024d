package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sokobo/storefront/internal/api/dto"
	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/service"
	apperrors "github.com/sokobo/storefront/pkg/util"
)

// ProductsHandler exposes catalog endpoints. Reads are public; writes
// sit behind the admin gate at route registration.
type ProductsHandler struct {
	service *service.ProductService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(productService *service.ProductService) *ProductsHandler {
	return &ProductsHandler{service: productService}
}

// List GET /api/products. Supports ?category= and ?featured=true.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	var (
		products []domain.Product
		err      error
	)
	switch {
	case c.Query("category") != "":
		products, err = h.service.ByCategory(c.Context(), domain.ProductCategory(c.Query("category")))
	case c.Query("featured") == "true":
		products, err = h.service.Featured(c.Context())
	default:
		products, err = h.service.List(c.Context())
	}
	if err != nil {
		return err
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductResponseFrom(p))
	}
	return c.JSON(items)
}

// Get GET /api/products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ProductResponseFrom(product))
}

// Create POST /api/products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	product, err := h.service.Create(c.Context(), service.ProductCreateInput{
		Name:        req.Name,
		Category:    domain.ProductCategory(req.Category),
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Images:      req.Images,
		Featured:    req.Featured,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.ProductResponseFrom(product))
}

// Update PUT /api/products/:id. Partial payload; absent fields keep
// their stored values.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	var req dto.ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	patch := service.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Images:      req.Images,
		Featured:    req.Featured,
	}
	if req.Category != nil {
		category := domain.ProductCategory(*req.Category)
		patch.Category = &category
	}

	product, err := h.service.Patch(c.Context(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(dto.ProductResponseFrom(product))
}

// Delete DELETE /api/products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
