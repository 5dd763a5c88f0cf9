package repository

import (
	"go-coffee-store/internal/model"

	"gorm.io/gorm"
)

type SlideRepository interface {
	Create(slide *model.Slide) error
	FindAll() ([]model.Slide, error)
	FindActive() ([]model.Slide, error)
	FindByID(id uint) (*model.Slide, error)
	Update(slide *model.Slide) error
	Delete(id uint) error
}

type slideRepo struct {
	db *gorm.DB
}

func NewSlideRepo(db *gorm.DB) SlideRepository {
	return &slideRepo{db}
}

func (r *slideRepo) Create(slide *model.Slide) error {
	return r.db.Create(slide).Error
}

func (r *slideRepo) FindAll() ([]model.Slide, error) {
	var slides []model.Slide
	err := r.db.Order("display_order ASC, id ASC").Find(&slides).Error
	return slides, err
}

func (r *slideRepo) FindActive() ([]model.Slide, error) {
	var slides []model.Slide
	err := r.db.Where("is_active = ?", true).
		Order("display_order ASC, id ASC").
		Find(&slides).Error
	return slides, err
}

func (r *slideRepo) FindByID(id uint) (*model.Slide, error) {
	var slide model.Slide
	if err := r.db.First(&slide, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &slide, nil
}

func (r *slideRepo) Update(slide *model.Slide) error {
	return r.db.Save(slide).Error
}

func (r *slideRepo) Delete(id uint) error {
	return r.db.Delete(&model.Slide{}, "id = ?", id).Error
}
