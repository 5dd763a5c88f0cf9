package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-coffee-store/internal/model"
	"go-coffee-store/internal/repository"
	"go-coffee-store/internal/ws"
	"go-coffee-store/pkg/logger"
	"go-coffee-store/pkg/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductService is the admin write surface for products and variants.
type ProductService interface {
	ListProducts() ([]model.Product, error)
	CreateProduct(req *model.Product, userID string) error
	UpdateProduct(id uint, req *model.Product, userID string) (*model.Product, error)
	DeleteProduct(id uint) error
	ToggleActive(id uint) (*model.Product, error)
	ToggleFeatured(id uint) (*model.Product, error)

	CreateVariant(productID uint, req *model.Variant) error
	UpdateVariant(id uint, req *model.Variant) (*model.Variant, error)
	DeleteVariant(id uint) error
	AdjustStock(variantID uint, delta int, reason, userID string) (*model.Variant, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	variantRepo  repository.VariantRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.StockMovementRepository
	db           *gorm.DB
	wsHub        *ws.Hub
	log          *logger.Logger
}

func NewProductService(
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.StockMovementRepository,
	db *gorm.DB,
	hub *ws.Hub,
	log *logger.Logger,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
		db:           db,
		wsHub:        hub,
		log:          log,
	}
}

func (s *productService) ListProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) CreateProduct(req *model.Product, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}

	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d", ErrNotFound, req.CategoryID)
		}
		return err
	}

	exists, err := s.productRepo.SKUExists(req.SKU, 0)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSKU, req.SKU)
	}

	for i := range req.Variants {
		if errs := validator.ValidateStruct(&req.Variants[i]); len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("%w: variant field '%s' failed on tag '%s'", ErrInvalidInput, first.FailedField, first.Tag)
		}
		dup, err := s.variantRepo.SKUExists(req.Variants[i].VariantSKU, 0)
		if err != nil {
			return err
		}
		if dup {
			return fmt.Errorf("%w: %s", ErrDuplicateSKU, req.Variants[i].VariantSKU)
		}
	}

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.log.WithFields(map[string]interface{}{
		"product_id": req.ID,
		"sku":        req.SKU,
		"user_id":    userID,
	}).Info("product created")

	return nil
}

func (s *productService) UpdateProduct(id uint, req *model.Product, userID string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", ErrNotFound, req.CategoryID)
		}
		return nil, err
	}

	dup, err := s.productRepo.SKUExists(req.SKU, id)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, req.SKU)
	}

	existing.SKU = req.SKU
	existing.Name = req.Name
	existing.NameAr = req.NameAr
	existing.Description = req.Description
	existing.DescriptionAr = req.DescriptionAr
	existing.Origin = req.Origin
	existing.RoastLevel = req.RoastLevel
	existing.RoastLevelAr = req.RoastLevelAr
	existing.Process = req.Process
	existing.ProcessAr = req.ProcessAr
	existing.TastingNotes = req.TastingNotes
	existing.TastingNotesAr = req.TastingNotesAr
	existing.Intensity = req.Intensity
	existing.CategoryID = req.CategoryID
	existing.IsActive = req.IsActive
	existing.IsFeatured = req.IsFeatured
	existing.IsDigital = req.IsDigital
	existing.DisplayOrder = req.DisplayOrder

	// Avoid Save touching associations loaded by FindByID.
	existing.Category = nil
	existing.Variants = nil
	existing.Images = nil
	existing.Reviews = nil

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"product_id": id,
		"user_id":    userID,
	}).Info("product updated")

	return s.productRepo.FindByID(id)
}

// DeleteProduct removes a product together with its reviews, variants, and
// images. Deletion is blocked while ANY variant still carries stock — the
// active flag is deliberately ignored here, unlike the storefront's in-stock
// filter which only counts active variants.
func (s *productService) DeleteProduct(id uint) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	variants, err := s.variantRepo.FindByProduct(id)
	if err != nil {
		return err
	}
	for i := range variants {
		if variants[i].StockQuantity > 0 {
			return fmt.Errorf("%w: cannot delete product that has variants with stock, clear stock first", ErrConflict)
		}
	}

	if err := s.productRepo.DeleteWithChildren(id); err != nil {
		return err
	}

	s.log.WithFields(map[string]interface{}{
		"product_id": id,
		"sku":        product.SKU,
	}).Info("product deleted with children")

	return nil
}

func (s *productService) ToggleActive(id uint) (*model.Product, error) {
	return s.toggle(id, func(p *model.Product) { p.IsActive = !p.IsActive })
}

func (s *productService) ToggleFeatured(id uint) (*model.Product, error) {
	return s.toggle(id, func(p *model.Product) { p.IsFeatured = !p.IsFeatured })
}

func (s *productService) toggle(id uint, flip func(*model.Product)) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	flip(product)
	product.Category = nil
	product.Variants = nil
	product.Images = nil
	product.Reviews = nil

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return s.productRepo.FindByID(id)
}

func (s *productService) CreateVariant(productID uint, req *model.Variant) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}

	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	dup, err := s.variantRepo.SKUExists(req.VariantSKU, 0)
	if err != nil {
		return err
	}
	if dup {
		return fmt.Errorf("%w: %s", ErrDuplicateSKU, req.VariantSKU)
	}

	req.ProductID = productID
	return s.variantRepo.Create(req)
}

func (s *productService) UpdateVariant(id uint, req *model.Variant) (*model.Variant, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}

	existing, err := s.variantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	dup, err := s.variantRepo.SKUExists(req.VariantSKU, id)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, req.VariantSKU)
	}

	existing.VariantSKU = req.VariantSKU
	existing.Weight = req.Weight
	existing.WeightUnit = req.WeightUnit
	existing.Price = req.Price
	existing.DiscountPrice = req.DiscountPrice
	existing.StockQuantity = req.StockQuantity
	existing.LowStockThreshold = req.LowStockThreshold
	existing.IsActive = req.IsActive
	existing.IsDefault = req.IsDefault
	existing.DisplayOrder = req.DisplayOrder

	if err := s.variantRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *productService) DeleteVariant(id uint) error {
	variant, err := s.variantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if variant.StockQuantity > 0 {
		return fmt.Errorf("%w: cannot delete variant with stock, clear stock first", ErrConflict)
	}
	return s.variantRepo.Delete(id)
}

// AdjustStock applies a delta to a variant's stock under a row lock, records
// a StockMovement in the same transaction, and broadcasts the new quantity
// to connected admin dashboards.
func (s *productService) AdjustStock(variantID uint, delta int, reason, userID string) (*model.Variant, error) {
	var updated *model.Variant

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var variant model.Variant
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&variant, "id = ?", variantID).Error; err != nil {
			return ErrNotFound
		}

		newQty := variant.StockQuantity + delta
		if newQty < 0 {
			return fmt.Errorf("%w: insufficient stock remaining", ErrConflict)
		}

		if err := s.variantRepo.UpdateStock(tx, variant.ID, newQty); err != nil {
			return err
		}

		movement := &model.StockMovement{
			VariantID:        variant.ID,
			Delta:            delta,
			ResultingQty:     newQty,
			Reason:           reason,
			AdjustedByUserID: &userID,
		}
		if err := s.movementRepo.Create(tx, movement); err != nil {
			return err
		}

		variant.StockQuantity = newQty
		updated = &variant
		return nil
	})
	if err != nil {
		return nil, err
	}

	go func(v model.Variant) {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": "stock_adjusted",
			"variant": map[string]interface{}{
				"id":          v.ID,
				"variant_sku": v.VariantSKU,
				"product_id":  v.ProductID,
				"new_stock":   v.StockQuantity,
				"is_low":      v.IsLowStock(),
			},
			"user_id": userID,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}(*updated)

	return updated, nil
}
