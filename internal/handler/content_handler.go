package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-coffee-store/internal/model"
	"go-coffee-store/internal/service"
)

// ContentHandler serves slides, FAQs and settings. Public reads return
// only active/public entries; the admin routes see everything.
type ContentHandler struct {
	contentService service.ContentService
}

func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// GET /api/v1/content/slides
func (h *ContentHandler) ActiveSlides(c *fiber.Ctx) error {
	slides, err := h.contentService.ActiveSlides()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"items": slides})
}

// GET /api/v1/content/faqs
func (h *ContentHandler) ActiveFAQs(c *fiber.Ctx) error {
	faqs, err := h.contentService.ActiveFAQs()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"items": faqs})
}

// GET /api/v1/content/faq-categories
func (h *ContentHandler) FAQCategories(c *fiber.Ctx) error {
	categories, err := h.contentService.FAQCategories()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"items": categories})
}

// GET /api/v1/content/settings
func (h *ContentHandler) PublicSettings(c *fiber.Ctx) error {
	settings, err := h.contentService.PublicSettings()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(settings)
}

// GET /api/v1/admin/slides
func (h *ContentHandler) AllSlides(c *fiber.Ctx) error {
	slides, err := h.contentService.AllSlides()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"items": slides})
}

// POST /api/v1/admin/slides
func (h *ContentHandler) CreateSlide(c *fiber.Ctx) error {
	var req model.Slide
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	slide, err := h.contentService.CreateSlide(&req, currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(slide)
}

// PUT /api/v1/admin/slides/:id
func (h *ContentHandler) UpdateSlide(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid slide ID"})
	}

	var req model.Slide
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	slide, err := h.contentService.UpdateSlide(uint(id), &req, currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(slide)
}

// DELETE /api/v1/admin/slides/:id
func (h *ContentHandler) DeleteSlide(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid slide ID"})
	}

	if err := h.contentService.DeleteSlide(uint(id)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Slide deleted"})
}

// GET /api/v1/admin/faqs
func (h *ContentHandler) AllFAQs(c *fiber.Ctx) error {
	faqs, err := h.contentService.AllFAQs()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"items": faqs})
}

// POST /api/v1/admin/faqs
func (h *ContentHandler) CreateFAQ(c *fiber.Ctx) error {
	var req model.FAQ
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	faq, err := h.contentService.CreateFAQ(&req, currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(faq)
}

// PUT /api/v1/admin/faqs/:id
func (h *ContentHandler) UpdateFAQ(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid FAQ ID"})
	}

	var req model.FAQ
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	faq, err := h.contentService.UpdateFAQ(uint(id), &req, currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(faq)
}

// DELETE /api/v1/admin/faqs/:id
func (h *ContentHandler) DeleteFAQ(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid FAQ ID"})
	}

	if err := h.contentService.DeleteFAQ(uint(id)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "FAQ deleted"})
}

// POST /api/v1/admin/faq-categories
func (h *ContentHandler) CreateFAQCategory(c *fiber.Ctx) error {
	var req model.FAQCategory
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.contentService.CreateFAQCategory(&req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(category)
}

// GET /api/v1/admin/settings
func (h *ContentHandler) AllSettings(c *fiber.Ctx) error {
	settings, err := h.contentService.AllSettings()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"items": settings})
}

type UpdateSettingRequest struct {
	Value string `json:"value"`
}

// PUT /api/v1/admin/settings/:key
func (h *ContentHandler) UpdateSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Setting key is required"})
	}

	var req UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	setting, err := h.contentService.UpdateSetting(key, req.Value)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(setting)
}
