package repository

import (
	"go-coffee-store/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartRepository interface {
	FindByUser(userID uuid.UUID) (*model.Cart, error)
	FindOrCreateByUser(userID uuid.UUID) (*model.Cart, error)
	FindItem(cartID, variantID uint) (*model.CartItem, error)
	FindItemByID(cartID, itemID uint) (*model.CartItem, error)
	CreateItem(item *model.CartItem) error
	UpdateItem(item *model.CartItem) error
	DeleteItem(cartID, itemID uint) error
	Clear(cartID uint) error
}

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) CartRepository {
	return &cartRepo{db}
}

func (r *cartRepo) FindByUser(userID uuid.UUID) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Preload("Items.Variant").
		First(&cart, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepo) FindOrCreateByUser(userID uuid.UUID) (*model.Cart, error) {
	cart, err := r.FindByUser(userID)
	if err == gorm.ErrRecordNotFound {
		cart = &model.Cart{UserID: userID}
		if err := r.db.Create(cart).Error; err != nil {
			return nil, err
		}
		return cart, nil
	}
	return cart, err
}

func (r *cartRepo) FindItem(cartID, variantID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.First(&item, "cart_id = ? AND variant_id = ?", cartID, variantID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) FindItemByID(cartID, itemID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.First(&item, "cart_id = ? AND id = ?", cartID, itemID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) CreateItem(item *model.CartItem) error {
	return r.db.Create(item).Error
}

func (r *cartRepo) UpdateItem(item *model.CartItem) error {
	return r.db.Save(item).Error
}

func (r *cartRepo) DeleteItem(cartID, itemID uint) error {
	return r.db.Delete(&model.CartItem{}, "cart_id = ? AND id = ?", cartID, itemID).Error
}

func (r *cartRepo) Clear(cartID uint) error {
	return r.db.Delete(&model.CartItem{}, "cart_id = ?", cartID).Error
}
