package repository

import (
	"go-coffee-store/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByID(id uint) (*model.Review, error)
	FindApprovedByProduct(productID uint, limit, offset int) ([]model.Review, int64, error)
	FindPending() ([]model.Review, error)
	ExistsForProductAndEmail(productID uint, email string) (bool, error)
	Update(review *model.Review) error
	Delete(id uint) error
	CountPending() (int64, error)
}

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) ReviewRepository {
	return &reviewRepo{db}
}

func (r *reviewRepo) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepo) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepo) FindApprovedByProduct(productID uint, limit, offset int) ([]model.Review, int64, error) {
	var total int64
	q := r.db.Model(&model.Review{}).Where("product_id = ? AND is_approved = ?", productID, true)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []model.Review
	err := r.db.Where("product_id = ? AND is_approved = ?", productID, true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	return reviews, total, err
}

// ExistsForProductAndEmail reports whether the email already reviewed the
// product, approved or not. Matching is case-insensitive.
func (r *reviewRepo) ExistsForProductAndEmail(productID uint, email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Review{}).
		Where("product_id = ? AND LOWER(customer_email) = LOWER(?)", productID, email).
		Count(&count).Error
	return count > 0, err
}

func (r *reviewRepo) FindPending() ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) Update(review *model.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepo) Delete(id uint) error {
	return r.db.Delete(&model.Review{}, "id = ?", id).Error
}

func (r *reviewRepo) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&model.Review{}).Where("is_approved = ?", false).Count(&count).Error
	return count, err
}
