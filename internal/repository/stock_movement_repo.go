package repository

import (
	"go-coffee-store/internal/model"

	"gorm.io/gorm"
)

type StockMovementRepository interface {
	Create(tx *gorm.DB, movement *model.StockMovement) error
	FindRecent(limit int) ([]model.StockMovement, error)
	FindByVariant(variantID uint) ([]model.StockMovement, error)
}

type stockMovementRepo struct {
	db *gorm.DB
}

func NewStockMovementRepo(db *gorm.DB) StockMovementRepository {
	return &stockMovementRepo{db}
}

// Create takes the caller's transaction so the log entry commits with the
// stock change it records.
func (r *stockMovementRepo) Create(tx *gorm.DB, movement *model.StockMovement) error {
	return tx.Create(movement).Error
}

func (r *stockMovementRepo) FindRecent(limit int) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.Preload("Variant").
		Order("created_at DESC").
		Limit(limit).
		Find(&movements).Error
	return movements, err
}

func (r *stockMovementRepo) FindByVariant(variantID uint) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.Where("variant_id = ?", variantID).
		Order("created_at DESC").
		Find(&movements).Error
	return movements, err
}
