package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"go-coffee-store/internal/catalog"
	"go-coffee-store/internal/service"
)

// CatalogHandler serves the public storefront: product search, product
// detail, categories, and approved reviews. No authentication.
type CatalogHandler struct {
	catalogService service.CatalogService
	reviewService  service.ReviewService
}

func NewCatalogHandler(catalogService service.CatalogService, reviewService service.ReviewService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		reviewService:  reviewService,
	}
}

// GET /api/v1/catalog/products
//
// Query params: q, category (slug), categoryId, featured, inStock,
// minPrice, maxPrice, sort, dir, page, pageSize. Unknown sort values
// fall back to the default ordering; bad numbers are ignored.
func (h *CatalogHandler) SearchProducts(c *fiber.Ctx) error {
	spec := catalog.SearchSpec{
		Query:         c.Query("q"),
		CategorySlug:  c.Query("category"),
		FeaturedOnly:  c.QueryBool("featured"),
		InStockOnly:   c.QueryBool("inStock"),
		SortBy:        c.Query("sort"),
		SortDirection: c.Query("dir"),
		Page:          c.QueryInt("page", 1),
		PageSize:      c.QueryInt("pageSize", catalog.DefaultPageSize),
	}

	if raw := c.Query("categoryId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID := uint(id)
			spec.CategoryID = &categoryID
		}
	}
	if raw := c.Query("minPrice"); raw != "" {
		if min, err := decimal.NewFromString(raw); err == nil {
			spec.MinPrice = &min
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if max, err := decimal.NewFromString(raw); err == nil {
			spec.MaxPrice = &max
		}
	}

	page, err := h.catalogService.ListProducts(spec)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(page)
}

// GET /api/v1/catalog/products/:id
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	detail, err := h.catalogService.GetProduct(uint(id))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(detail)
}

// GET /api/v1/catalog/products/sku/:sku
func (h *CatalogHandler) GetProductBySKU(c *fiber.Ctx) error {
	sku := c.Params("sku")
	if sku == "" {
		return c.Status(400).JSON(fiber.Map{"error": "SKU is required"})
	}

	detail, err := h.catalogService.GetProductBySKU(sku)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(detail)
}

// GET /api/v1/catalog/featured
func (h *CatalogHandler) FeaturedProducts(c *fiber.Ctx) error {
	count := c.QueryInt("count", 8)
	products, err := h.catalogService.FeaturedProducts(count)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"items": products})
}

// GET /api/v1/catalog/categories
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	var (
		err        error
		categories interface{}
	)
	if c.QueryBool("homepage") {
		categories, err = h.catalogService.HomepageCategories()
	} else {
		categories, err = h.catalogService.ListCategories()
	}
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"items": categories})
}

// GET /api/v1/catalog/categories/:slug
func (h *CatalogHandler) GetCategoryBySlug(c *fiber.Ctx) error {
	category, err := h.catalogService.GetCategoryBySlug(c.Params("slug"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(category)
}

// GET /api/v1/catalog/products/:id/reviews
func (h *CatalogHandler) ProductReviews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", catalog.DefaultPageSize)

	reviews, total, err := h.reviewService.ApprovedReviews(uint(id), page, pageSize)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"items":      reviews,
		"totalItems": total,
	})
}
