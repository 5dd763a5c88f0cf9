package repository

import (
	"go-coffee-store/internal/model"

	"gorm.io/gorm"
)

type FAQRepository interface {
	Create(faq *model.FAQ) error
	FindAll() ([]model.FAQ, error)
	FindActive() ([]model.FAQ, error)
	FindByID(id uint) (*model.FAQ, error)
	Update(faq *model.FAQ) error
	Delete(id uint) error

	CreateCategory(category *model.FAQCategory) error
	FindCategories() ([]model.FAQCategory, error)
	FindCategoryByID(id uint) (*model.FAQCategory, error)
}

type faqRepo struct {
	db *gorm.DB
}

func NewFAQRepo(db *gorm.DB) FAQRepository {
	return &faqRepo{db}
}

func (r *faqRepo) Create(faq *model.FAQ) error {
	return r.db.Create(faq).Error
}

func (r *faqRepo) FindAll() ([]model.FAQ, error) {
	var faqs []model.FAQ
	err := r.db.Preload("Category").Order("display_order ASC, id ASC").Find(&faqs).Error
	return faqs, err
}

func (r *faqRepo) FindActive() ([]model.FAQ, error) {
	var faqs []model.FAQ
	err := r.db.Preload("Category").
		Where("is_active = ?", true).
		Order("display_order ASC, id ASC").
		Find(&faqs).Error
	return faqs, err
}

func (r *faqRepo) FindByID(id uint) (*model.FAQ, error) {
	var faq model.FAQ
	if err := r.db.Preload("Category").First(&faq, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

func (r *faqRepo) Update(faq *model.FAQ) error {
	return r.db.Save(faq).Error
}

func (r *faqRepo) Delete(id uint) error {
	return r.db.Delete(&model.FAQ{}, "id = ?", id).Error
}

func (r *faqRepo) CreateCategory(category *model.FAQCategory) error {
	return r.db.Create(category).Error
}

func (r *faqRepo) FindCategories() ([]model.FAQCategory, error) {
	var categories []model.FAQCategory
	err := r.db.Preload("FAQs", func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true).Order("display_order ASC, id ASC")
	}).Where("is_active = ?", true).
		Order("display_order ASC, id ASC").
		Find(&categories).Error
	return categories, err
}

func (r *faqRepo) FindCategoryByID(id uint) (*model.FAQCategory, error) {
	var category model.FAQCategory
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
