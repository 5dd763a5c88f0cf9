package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-coffee-store/internal/model"
	"go-coffee-store/pkg/logger"
)

func newCategoryService(categoryRepo *stubCategoryRepo, productRepo *stubProductRepo) CategoryService {
	return NewCategoryService(categoryRepo, productRepo, logger.New("test"))
}

func TestCreateCategoryGeneratesSlugFromName(t *testing.T) {
	var created *model.Category
	categoryRepo := &stubCategoryRepo{
		slugExists: func(slug string, excludeID uint) (bool, error) { return false, nil },
		create: func(category *model.Category) error {
			created = category
			return nil
		},
	}

	svc := newCategoryService(categoryRepo, &stubProductRepo{})

	err := svc.CreateCategory(&model.Category{Name: "Single Origin Beans"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "single-origin-beans", created.Slug)
}

func TestCreateCategoryKeepsExplicitSlug(t *testing.T) {
	var created *model.Category
	categoryRepo := &stubCategoryRepo{
		slugExists: func(slug string, excludeID uint) (bool, error) { return false, nil },
		create: func(category *model.Category) error {
			created = category
			return nil
		},
	}

	svc := newCategoryService(categoryRepo, &stubProductRepo{})

	require.NoError(t, svc.CreateCategory(&model.Category{Name: "Espresso", Slug: "espresso-bar"}))
	assert.Equal(t, "espresso-bar", created.Slug)
}

func TestCreateCategoryRejectsDuplicateSlug(t *testing.T) {
	categoryRepo := &stubCategoryRepo{
		slugExists: func(slug string, excludeID uint) (bool, error) { return true, nil },
	}

	svc := newCategoryService(categoryRepo, &stubProductRepo{})

	err := svc.CreateCategory(&model.Category{Name: "Espresso"})
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestDeleteCategoryBlockedWhileProductsAssigned(t *testing.T) {
	deleted := false
	categoryRepo := &stubCategoryRepo{
		findByID: func(id uint) (*model.Category, error) {
			return &model.Category{Name: "Espresso", Slug: "espresso"}, nil
		},
		deleteFn: func(id uint) error {
			deleted = true
			return nil
		},
	}
	productRepo := &stubProductRepo{
		countByCategory: func(categoryID uint) (int64, error) { return 4, nil },
	}

	svc := newCategoryService(categoryRepo, productRepo)

	err := svc.DeleteCategory(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.False(t, deleted)
}

func TestDeleteCategorySucceedsOnceEmpty(t *testing.T) {
	deleted := false
	categoryRepo := &stubCategoryRepo{
		findByID: func(id uint) (*model.Category, error) {
			return &model.Category{Name: "Espresso", Slug: "espresso"}, nil
		},
		deleteFn: func(id uint) error {
			deleted = true
			return nil
		},
	}
	productRepo := &stubProductRepo{
		countByCategory: func(categoryID uint) (int64, error) { return 0, nil },
	}

	svc := newCategoryService(categoryRepo, productRepo)

	require.NoError(t, svc.DeleteCategory(2))
	assert.True(t, deleted)
}
