package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-coffee-store/internal/service"
)

// CartHandler operates on the authenticated user's own cart.
type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) userID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(currentUserID(c))
}

// GET /api/v1/cart
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	cart, err := h.cartService.GetCart(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(cart)
}

type AddCartItemRequest struct {
	VariantID uint `json:"variant_id"`
	Quantity  int  `json:"quantity"`
}

// POST /api/v1/cart/items
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.VariantID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "variant_id is required"})
	}

	cart, err := h.cartService.AddItem(userID, req.VariantID, req.Quantity)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(cart)
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// PUT /api/v1/cart/items/:id
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	itemID, err := c.ParamsInt("id")
	if err != nil || itemID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var req UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	cart, err := h.cartService.UpdateItemQuantity(userID, uint(itemID), req.Quantity)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(cart)
}

// DELETE /api/v1/cart/items/:id
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	itemID, err := c.ParamsInt("id")
	if err != nil || itemID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	cart, err := h.cartService.RemoveItem(userID, uint(itemID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(cart)
}

// DELETE /api/v1/cart
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := h.cartService.ClearCart(userID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Cart cleared"})
}
