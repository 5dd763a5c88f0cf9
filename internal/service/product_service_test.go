package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-coffee-store/internal/model"
	"go-coffee-store/internal/ws"
	"go-coffee-store/pkg/logger"
)

func newProductService(productRepo *stubProductRepo, variantRepo *stubVariantRepo, categoryRepo *stubCategoryRepo) ProductService {
	return NewProductService(productRepo, variantRepo, categoryRepo, nil, nil, ws.NewHub(), logger.New("test"))
}

func TestDeleteProductBlockedByStockOnInactiveVariant(t *testing.T) {
	deleted := false
	productRepo := &stubProductRepo{
		findByID: func(id uint) (*model.Product, error) {
			return &model.Product{SKU: "COF-1", Name: "House Blend", CategoryID: 1}, nil
		},
		deleteWithChildren: func(id uint) error {
			deleted = true
			return nil
		},
	}
	variantRepo := &stubVariantRepo{
		findByProduct: func(productID uint) ([]model.Variant, error) {
			// Inactive variant still holding stock must block the delete.
			return []model.Variant{
				{VariantSKU: "COF-1-250", StockQuantity: 0, IsActive: true},
				{VariantSKU: "COF-1-1KG", StockQuantity: 3, IsActive: false},
			}, nil
		},
	}

	svc := newProductService(productRepo, variantRepo, &stubCategoryRepo{})

	err := svc.DeleteProduct(7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.False(t, deleted)
}

func TestDeleteProductSucceedsWhenStockCleared(t *testing.T) {
	deleted := false
	productRepo := &stubProductRepo{
		findByID: func(id uint) (*model.Product, error) {
			return &model.Product{SKU: "COF-1", Name: "House Blend", CategoryID: 1}, nil
		},
		deleteWithChildren: func(id uint) error {
			deleted = true
			return nil
		},
	}
	variantRepo := &stubVariantRepo{
		findByProduct: func(productID uint) ([]model.Variant, error) {
			return []model.Variant{
				{VariantSKU: "COF-1-250", StockQuantity: 0},
				{VariantSKU: "COF-1-1KG", StockQuantity: 0, IsActive: false},
			}, nil
		},
	}

	svc := newProductService(productRepo, variantRepo, &stubCategoryRepo{})

	require.NoError(t, svc.DeleteProduct(7))
	assert.True(t, deleted)
}

func TestDeleteProductNotFound(t *testing.T) {
	productRepo := &stubProductRepo{
		findByID: func(id uint) (*model.Product, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := newProductService(productRepo, &stubVariantRepo{}, &stubCategoryRepo{})

	assert.ErrorIs(t, svc.DeleteProduct(99), ErrNotFound)
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	productRepo := &stubProductRepo{
		skuExists: func(sku string, excludeID uint) (bool, error) { return true, nil },
	}
	categoryRepo := &stubCategoryRepo{
		findByID: func(id uint) (*model.Category, error) {
			return &model.Category{Name: "Espresso", Slug: "espresso"}, nil
		},
	}

	svc := newProductService(productRepo, &stubVariantRepo{}, categoryRepo)

	err := svc.CreateProduct(&model.Product{SKU: "COF-1", Name: "House Blend", CategoryID: 1}, "admin")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateSKU)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	categoryRepo := &stubCategoryRepo{
		findByID: func(id uint) (*model.Category, error) { return nil, gorm.ErrRecordNotFound },
	}

	svc := newProductService(&stubProductRepo{}, &stubVariantRepo{}, categoryRepo)

	err := svc.CreateProduct(&model.Product{SKU: "COF-1", Name: "House Blend", CategoryID: 42}, "admin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProductRejectsMissingName(t *testing.T) {
	svc := newProductService(&stubProductRepo{}, &stubVariantRepo{}, &stubCategoryRepo{})

	err := svc.CreateProduct(&model.Product{SKU: "COF-1", CategoryID: 1}, "admin")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateVariantRejectsNonPositivePrice(t *testing.T) {
	svc := newProductService(&stubProductRepo{}, &stubVariantRepo{}, &stubCategoryRepo{})

	err := svc.CreateVariant(1, &model.Variant{VariantSKU: "COF-1-250", Price: decimal.Zero})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateVariantRejectsNegativeDiscount(t *testing.T) {
	svc := newProductService(&stubProductRepo{}, &stubVariantRepo{}, &stubCategoryRepo{})

	bad := decimal.NewFromInt(-1)
	err := svc.CreateVariant(1, &model.Variant{
		VariantSKU:    "COF-1-250",
		Price:         decimal.NewFromInt(5),
		DiscountPrice: &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateProductValidatesNestedVariants(t *testing.T) {
	categoryRepo := &stubCategoryRepo{
		findByID: func(id uint) (*model.Category, error) { return &model.Category{Name: "Beans"}, nil },
	}
	productRepo := &stubProductRepo{
		skuExists: func(sku string, excludeID uint) (bool, error) { return false, nil },
	}

	svc := newProductService(productRepo, &stubVariantRepo{}, categoryRepo)

	req := &model.Product{
		SKU:        "COF-1",
		Name:       "House Blend",
		CategoryID: 1,
		Variants: []model.Variant{
			{VariantSKU: "COF-1-250", Price: decimal.Zero},
		},
	}
	assert.ErrorIs(t, svc.CreateProduct(req, "admin"), ErrInvalidInput)
}

func TestDeleteVariantBlockedByStock(t *testing.T) {
	variantRepo := &stubVariantRepo{
		findByID: func(id uint) (*model.Variant, error) {
			return &model.Variant{
				VariantSKU:    "COF-1-250",
				Price:         decimal.NewFromInt(5),
				StockQuantity: 12,
			}, nil
		},
	}

	svc := newProductService(&stubProductRepo{}, variantRepo, &stubCategoryRepo{})

	err := svc.DeleteVariant(3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteVariantSucceedsWithoutStock(t *testing.T) {
	deleted := false
	variantRepo := &stubVariantRepo{
		findByID: func(id uint) (*model.Variant, error) {
			return &model.Variant{VariantSKU: "COF-1-250", StockQuantity: 0}, nil
		},
		deleteFn: func(id uint) error {
			deleted = true
			return nil
		},
	}

	svc := newProductService(&stubProductRepo{}, variantRepo, &stubCategoryRepo{})

	require.NoError(t, svc.DeleteVariant(3))
	assert.True(t, deleted)
}
