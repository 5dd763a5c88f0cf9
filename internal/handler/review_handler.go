package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-coffee-store/internal/model"
	"go-coffee-store/internal/service"
)

// ReviewHandler splits into a customer side (submit) and a moderation
// side (pending queue, approve, reject).
type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// POST /api/v1/catalog/products/:id/reviews
//
// Open to anonymous customers. When a logged-in user submits, their name
// and email fill in blanks in the body. The review stays hidden until a
// moderator approves it.
func (h *ReviewHandler) SubmitReview(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req model.Review
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if name, ok := c.Locals("user_name").(string); ok && req.CustomerName == "" {
		req.CustomerName = name
	}
	if email, ok := c.Locals("user_email").(string); ok && req.CustomerEmail == "" {
		req.CustomerEmail = email
	}

	if err := h.reviewService.SubmitReview(uint(productID), &req); err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Review submitted and awaiting moderation",
		"review":  req,
	})
}

// GET /api/v1/admin/reviews/pending
func (h *ReviewHandler) PendingReviews(c *fiber.Ctx) error {
	reviews, err := h.reviewService.PendingReviews()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"items": reviews})
}

// POST /api/v1/admin/reviews/:id/approve
func (h *ReviewHandler) ApproveReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid review ID"})
	}

	review, err := h.reviewService.ApproveReview(uint(id), currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(review)
}

type RejectReviewRequest struct {
	Notes string `json:"notes"`
}

// POST /api/v1/admin/reviews/:id/reject
func (h *ReviewHandler) RejectReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid review ID"})
	}

	var req RejectReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.reviewService.RejectReview(uint(id), req.Notes, currentUserID(c)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Review rejected"})
}

// POST /api/v1/admin/reviews/:id/toggle-featured
func (h *ReviewHandler) ToggleFeatured(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid review ID"})
	}

	review, err := h.reviewService.ToggleFeatured(uint(id))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(review)
}
