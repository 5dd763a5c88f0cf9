package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"go-coffee-store/internal/model"
	"go-coffee-store/internal/repository"
)

type CartService interface {
	GetCart(userID uuid.UUID) (*CartView, error)
	AddItem(userID uuid.UUID, variantID uint, quantity int) (*CartView, error)
	UpdateItemQuantity(userID uuid.UUID, itemID uint, quantity int) (*CartView, error)
	RemoveItem(userID uuid.UUID, itemID uint) (*CartView, error)
	ClearCart(userID uuid.UUID) error
}

// CartView is the cart with its derived totals, so clients never have to
// recompute money amounts.
type CartView struct {
	*model.Cart
	TotalQuantity int             `json:"total_quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

type cartService struct {
	cartRepo    repository.CartRepository
	variantRepo repository.VariantRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, variantRepo repository.VariantRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		variantRepo: variantRepo,
		productRepo: productRepo,
	}
}

func (s *cartService) GetCart(userID uuid.UUID) (*CartView, error) {
	cart, err := s.cartRepo.FindOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

// AddItem merges into an existing line for the same variant. The
// resulting quantity is clamped to the variant's stock, and the unit
// price snapshot is refreshed to the current effective price.
func (s *cartService) AddItem(userID uuid.UUID, variantID uint, quantity int) (*CartView, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	variant, _, err := s.sellableVariant(variantID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.FindOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.FindItem(cart.ID, variantID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	wanted := quantity
	if existing != nil {
		wanted += existing.Quantity
	}
	clamped := clampToStock(wanted, variant.StockQuantity)
	if clamped == 0 {
		return nil, fmt.Errorf("%w: variant %s is out of stock", ErrConflict, variant.VariantSKU)
	}

	if existing != nil {
		existing.Quantity = clamped
		existing.UnitPrice = variant.EffectivePrice()
		if err := s.cartRepo.UpdateItem(existing); err != nil {
			return nil, err
		}
	} else {
		item := &model.CartItem{
			CartID:    cart.ID,
			VariantID: variantID,
			Quantity:  clamped,
			UnitPrice: variant.EffectivePrice(),
		}
		if err := s.cartRepo.CreateItem(item); err != nil {
			return nil, err
		}
	}

	return s.reload(userID)
}

// UpdateItemQuantity sets the line to the given quantity; zero or less
// removes the line.
func (s *cartService) UpdateItemQuantity(userID uuid.UUID, itemID uint, quantity int) (*CartView, error) {
	cart, err := s.cartRepo.FindOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.FindItemByID(cart.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if quantity <= 0 {
		if err := s.cartRepo.DeleteItem(cart.ID, itemID); err != nil {
			return nil, err
		}
		return s.reload(userID)
	}

	variant, _, err := s.sellableVariant(item.VariantID)
	if err != nil {
		return nil, err
	}

	item.Quantity = clampToStock(quantity, variant.StockQuantity)
	item.UnitPrice = variant.EffectivePrice()
	if err := s.cartRepo.UpdateItem(item); err != nil {
		return nil, err
	}

	return s.reload(userID)
}

func (s *cartService) RemoveItem(userID uuid.UUID, itemID uint) (*CartView, error) {
	cart, err := s.cartRepo.FindOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.cartRepo.FindItemByID(cart.ID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(cart.ID, itemID); err != nil {
		return nil, err
	}

	return s.reload(userID)
}

func (s *cartService) ClearCart(userID uuid.UUID) error {
	cart, err := s.cartRepo.FindOrCreateByUser(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.Clear(cart.ID)
}

// sellableVariant loads the variant and checks both the variant and its
// product are active.
func (s *cartService) sellableVariant(variantID uint) (*model.Variant, *model.Product, error) {
	variant, err := s.variantRepo.FindByID(variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if !variant.IsActive {
		return nil, nil, fmt.Errorf("%w: variant %s is not available", ErrConflict, variant.VariantSKU)
	}

	product, err := s.productRepo.FindByID(variant.ProductID)
	if err != nil {
		return nil, nil, err
	}
	if !product.IsActive {
		return nil, nil, fmt.Errorf("%w: product %s is not available", ErrConflict, product.SKU)
	}

	return variant, product, nil
}

func (s *cartService) reload(userID uuid.UUID) (*CartView, error) {
	cart, err := s.cartRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

func (s *cartService) view(cart *model.Cart) *CartView {
	return &CartView{
		Cart:          cart,
		TotalQuantity: cart.TotalQuantity(),
		TotalPrice:    cart.TotalPrice(),
	}
}

func clampToStock(wanted, stock int) int {
	if stock < 0 {
		stock = 0
	}
	if wanted > stock {
		return stock
	}
	return wanted
}
