package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-coffee-store/internal/model"
	"go-coffee-store/internal/service"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GET /api/v1/admin/categories
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"items": categories})
}

// GET /api/v1/admin/categories/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	category, err := h.categoryService.GetCategory(uint(id))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(category)
}

// POST /api/v1/admin/categories
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.categoryService.CreateCategory(&req); err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(req)
}

// PUT /api/v1/admin/categories/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.categoryService.UpdateCategory(uint(id), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(updated)
}

// DELETE /api/v1/admin/categories/:id
//
// Refused with 409 while products are still assigned to the category.
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	if err := h.categoryService.DeleteCategory(uint(id)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Category deleted"})
}
