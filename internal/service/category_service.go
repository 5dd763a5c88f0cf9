package service

import (
	"errors"
	"fmt"

	"go-coffee-store/internal/model"
	"go-coffee-store/internal/repository"
	"go-coffee-store/pkg/logger"
	"go-coffee-store/pkg/validator"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// CategoryService is the admin write surface for categories.
type CategoryService interface {
	ListCategories() ([]model.Category, error)
	GetCategory(id uint) (*model.Category, error)
	CreateCategory(req *model.Category) error
	UpdateCategory(id uint, req *model.Category) (*model.Category, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	log          *logger.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, log *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		log:          log,
	}
}

func (s *categoryService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryService) GetCategory(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) CreateCategory(req *model.Category) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Name)
	}

	exists, err := s.categoryRepo.SlugExists(req.Slug, 0)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSlug, req.Slug)
	}

	return s.categoryRepo.Create(req)
}

func (s *categoryService) UpdateCategory(id uint, req *model.Category) (*model.Category, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}

	existing, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Name)
	}

	dup, err := s.categoryRepo.SlugExists(req.Slug, id)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, req.Slug)
	}

	existing.Slug = req.Slug
	existing.Name = req.Name
	existing.NameAr = req.NameAr
	existing.Description = req.Description
	existing.DescriptionAr = req.DescriptionAr
	existing.ImagePath = req.ImagePath
	existing.IsActive = req.IsActive
	existing.IsDisplayedOnHomepage = req.IsDisplayedOnHomepage
	existing.DisplayOrder = req.DisplayOrder

	if err := s.categoryRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteCategory rejects deletion while the category still owns products.
func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	count, err := s.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: cannot delete category that contains products, move or delete the products first", ErrConflict)
	}

	return s.categoryRepo.Delete(id)
}
