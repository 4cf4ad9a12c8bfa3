package handler

import (
	"errors"
	"net/http"
	"strings"

	"snack-store/internal/core/logger"
	"snack-store/internal/features/catalog/domain"
	"snack-store/internal/features/catalog/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	service ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// ListProducts handles GET /products.
// @Summary List products
// @Description Returns a filtered, sorted, paginated product listing.
// @Tags Catalog
// @Produce json
// @Param search query string false "Search over name, descriptions and tags"
// @Param categories query string false "Comma-separated category ids"
// @Param discount query bool false "Only discounted products"
// @Param sort query string false "Sort option" Enums(name-asc,name-desc,price-asc,price-desc,newest,oldest)
// @Param page query int false "Page (1-based)"
// @Param per_page query int false "Items per page"
// @Success 200 {object} domain.ProductPage
// @Failure 500 {object} map[string]string
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	filter := domain.Filter{
		Search:      c.Query("search"),
		HasDiscount: c.QueryBool("discount"),
	}
	if raw := c.Query("categories"); raw != "" {
		filter.CategoryIDs = strings.Split(raw, ",")
	}

	page, err := h.service.ListProducts(
		c.Context(),
		filter,
		domain.SortOption(c.Query("sort")),
		c.QueryInt("page", 1),
		c.QueryInt("per_page", 0),
	)
	if err != nil {
		logger.Get().Error("Failed to list products", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(page)
}

// GetProduct handles GET /products/:slug.
// @Summary Get product by slug
// @Description Returns the full product for a product detail page.
// @Tags Catalog
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /products/{slug} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	slug := c.Params("slug")

	product, err := h.service.GetProductBySlug(c.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		logger.Get().Error("Failed to get product", zap.String("slug", slug), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(product)
}

// ListCategories handles GET /categories.
// @Summary List categories
// @Description Returns the category tree used by the listing filters.
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 500 {object} map[string]string
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list categories", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(categories)
}
