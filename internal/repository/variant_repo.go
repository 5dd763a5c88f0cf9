package repository

import (
	"go-coffee-store/internal/model"

	"gorm.io/gorm"
)

type VariantRepository interface {
	Create(variant *model.Variant) error
	FindByID(id uint) (*model.Variant, error)
	FindByProduct(productID uint) ([]model.Variant, error)
	SKUExists(sku string, excludeID uint) (bool, error)
	Update(variant *model.Variant) error
	Delete(id uint) error
	UpdateStock(tx *gorm.DB, id uint, newQty int) error
	FindLowStock() ([]model.Variant, error)
}

type variantRepo struct {
	db *gorm.DB
}

func NewVariantRepo(db *gorm.DB) VariantRepository {
	return &variantRepo{db}
}

func (r *variantRepo) Create(variant *model.Variant) error {
	return r.db.Create(variant).Error
}

func (r *variantRepo) FindByID(id uint) (*model.Variant, error) {
	var variant model.Variant
	if err := r.db.First(&variant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *variantRepo) FindByProduct(productID uint) ([]model.Variant, error) {
	var variants []model.Variant
	err := r.db.Where("product_id = ?", productID).
		Order("display_order ASC, id ASC").
		Find(&variants).Error
	return variants, err
}

func (r *variantRepo) SKUExists(sku string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Variant{}).
		Where("variant_sku = ? AND id <> ?", sku, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *variantRepo) Update(variant *model.Variant) error {
	return r.db.Save(variant).Error
}

func (r *variantRepo) Delete(id uint) error {
	return r.db.Delete(&model.Variant{}, "id = ?", id).Error
}

// UpdateStock runs on the caller's transaction so the movement log and the
// quantity change commit together.
func (r *variantRepo) UpdateStock(tx *gorm.DB, id uint, newQty int) error {
	return tx.Model(&model.Variant{}).
		Where("id = ?", id).
		Update("stock_quantity", newQty).Error
}

func (r *variantRepo) FindLowStock() ([]model.Variant, error) {
	var variants []model.Variant
	err := r.db.Where("is_active = ? AND stock_quantity > 0 AND stock_quantity <= low_stock_threshold", true).
		Order("stock_quantity ASC").
		Find(&variants).Error
	return variants, err
}
