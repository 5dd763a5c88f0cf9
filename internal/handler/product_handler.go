package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-coffee-store/internal/model"
	"go-coffee-store/internal/service"
)

// ProductHandler covers the admin side of the catalog: product and
// variant CRUD plus stock adjustments.
type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /api/v1/admin/products
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.productService.ListProducts()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"items": products})
}

// POST /api/v1/admin/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req model.Product
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.productService.CreateProduct(&req, currentUserID(c)); err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(req)
}

// PUT /api/v1/admin/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req model.Product
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.productService.UpdateProduct(uint(id), &req, currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(updated)
}

// DELETE /api/v1/admin/products/:id
//
// Refused with 409 while any variant still holds stock.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.productService.DeleteProduct(uint(id)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// POST /api/v1/admin/products/:id/toggle-active
func (h *ProductHandler) ToggleActive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.productService.ToggleActive(uint(id))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(product)
}

// POST /api/v1/admin/products/:id/toggle-featured
func (h *ProductHandler) ToggleFeatured(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.productService.ToggleFeatured(uint(id))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(product)
}

// POST /api/v1/admin/products/:id/variants
func (h *ProductHandler) CreateVariant(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req model.Variant
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.productService.CreateVariant(uint(productID), &req); err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(req)
}

// PUT /api/v1/admin/variants/:id
func (h *ProductHandler) UpdateVariant(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid variant ID"})
	}

	var req model.Variant
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.productService.UpdateVariant(uint(id), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(updated)
}

// DELETE /api/v1/admin/variants/:id
func (h *ProductHandler) DeleteVariant(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid variant ID"})
	}

	if err := h.productService.DeleteVariant(uint(id)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Variant deleted"})
}

type AdjustStockRequest struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}

// POST /api/v1/admin/variants/:id/adjust-stock
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid variant ID"})
	}

	var req AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Delta == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "delta must be non-zero"})
	}
	if req.Reason == "" {
		return c.Status(400).JSON(fiber.Map{"error": "reason is required"})
	}

	variant, err := h.productService.AdjustStock(uint(id), req.Delta, req.Reason, currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(variant)
}
