package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-coffee-store/internal/model"
)

func cartFixture(userID uuid.UUID) *model.Cart {
	cart := &model.Cart{UserID: userID}
	cart.ID = 1
	return cart
}

func sellableVariantFixture() *model.Variant {
	discount := decimal.RequireFromString("4.500")
	v := &model.Variant{
		ProductID:     3,
		VariantSKU:    "COF-1-250",
		Price:         decimal.RequireFromString("6.000"),
		DiscountPrice: &discount,
		StockQuantity: 5,
		IsActive:      true,
	}
	v.ID = 10
	return v
}

func newCartServiceForTest(cartRepo *stubCartRepo, variantRepo *stubVariantRepo, productRepo *stubProductRepo) CartService {
	return NewCartService(cartRepo, variantRepo, productRepo)
}

func activeProductRepo() *stubProductRepo {
	return &stubProductRepo{
		findByID: func(id uint) (*model.Product, error) {
			return &model.Product{SKU: "COF-1", Name: "House Blend", CategoryID: 1, IsActive: true}, nil
		},
	}
}

func TestAddItemClampsQuantityToStock(t *testing.T) {
	userID := uuid.New()
	var created *model.CartItem
	cartRepo := &stubCartRepo{
		findOrCreateByUser: func(id uuid.UUID) (*model.Cart, error) { return cartFixture(userID), nil },
		findItem: func(cartID, variantID uint) (*model.CartItem, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createItem: func(item *model.CartItem) error {
			created = item
			return nil
		},
		findByUser: func(id uuid.UUID) (*model.Cart, error) {
			cart := cartFixture(userID)
			if created != nil {
				cart.Items = []model.CartItem{*created}
			}
			return cart, nil
		},
	}
	variantRepo := &stubVariantRepo{
		findByID: func(id uint) (*model.Variant, error) { return sellableVariantFixture(), nil },
	}

	svc := newCartServiceForTest(cartRepo, variantRepo, activeProductRepo())

	view, err := svc.AddItem(userID, 10, 12)
	require.NoError(t, err)
	require.NotNil(t, created)

	// Only 5 in stock, so the line clamps to 5 at the discounted price.
	assert.Equal(t, 5, created.Quantity)
	assert.True(t, created.UnitPrice.Equal(decimal.RequireFromString("4.500")))
	assert.Equal(t, 5, view.TotalQuantity)
	assert.True(t, view.TotalPrice.Equal(decimal.RequireFromString("22.500")))
}

func TestAddItemMergesExistingLine(t *testing.T) {
	userID := uuid.New()
	existing := &model.CartItem{CartID: 1, VariantID: 10, Quantity: 2, UnitPrice: decimal.RequireFromString("6.000")}
	var updated *model.CartItem
	cartRepo := &stubCartRepo{
		findOrCreateByUser: func(id uuid.UUID) (*model.Cart, error) { return cartFixture(userID), nil },
		findItem: func(cartID, variantID uint) (*model.CartItem, error) { return existing, nil },
		updateItem: func(item *model.CartItem) error {
			updated = item
			return nil
		},
		findByUser: func(id uuid.UUID) (*model.Cart, error) { return cartFixture(userID), nil },
	}
	variantRepo := &stubVariantRepo{
		findByID: func(id uint) (*model.Variant, error) { return sellableVariantFixture(), nil },
	}

	svc := newCartServiceForTest(cartRepo, variantRepo, activeProductRepo())

	_, err := svc.AddItem(userID, 10, 2)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 4, updated.Quantity)
	// Snapshot refreshes to the current effective price.
	assert.True(t, updated.UnitPrice.Equal(decimal.RequireFromString("4.500")))
}

func TestAddItemOutOfStock(t *testing.T) {
	userID := uuid.New()
	cartRepo := &stubCartRepo{
		findOrCreateByUser: func(id uuid.UUID) (*model.Cart, error) { return cartFixture(userID), nil },
		findItem: func(cartID, variantID uint) (*model.CartItem, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	variantRepo := &stubVariantRepo{
		findByID: func(id uint) (*model.Variant, error) {
			v := sellableVariantFixture()
			v.StockQuantity = 0
			return v, nil
		},
	}

	svc := newCartServiceForTest(cartRepo, variantRepo, activeProductRepo())

	_, err := svc.AddItem(userID, 10, 1)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAddItemRejectsInactiveVariant(t *testing.T) {
	userID := uuid.New()
	variantRepo := &stubVariantRepo{
		findByID: func(id uint) (*model.Variant, error) {
			v := sellableVariantFixture()
			v.IsActive = false
			return v, nil
		},
	}

	svc := newCartServiceForTest(&stubCartRepo{}, variantRepo, activeProductRepo())

	_, err := svc.AddItem(userID, 10, 1)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	svc := newCartServiceForTest(&stubCartRepo{}, &stubVariantRepo{}, &stubProductRepo{})

	_, err := svc.AddItem(uuid.New(), 10, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateItemQuantityZeroRemovesLine(t *testing.T) {
	userID := uuid.New()
	removed := false
	cartRepo := &stubCartRepo{
		findOrCreateByUser: func(id uuid.UUID) (*model.Cart, error) { return cartFixture(userID), nil },
		findItemByID: func(cartID, itemID uint) (*model.CartItem, error) {
			return &model.CartItem{CartID: 1, VariantID: 10, Quantity: 2}, nil
		},
		deleteItem: func(cartID, itemID uint) error {
			removed = true
			return nil
		},
		findByUser: func(id uuid.UUID) (*model.Cart, error) { return cartFixture(userID), nil },
	}

	svc := newCartServiceForTest(cartRepo, &stubVariantRepo{}, &stubProductRepo{})

	view, err := svc.UpdateItemQuantity(userID, 77, 0)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, view.TotalQuantity)
}

func TestUpdateItemQuantityUnknownItem(t *testing.T) {
	userID := uuid.New()
	cartRepo := &stubCartRepo{
		findOrCreateByUser: func(id uuid.UUID) (*model.Cart, error) { return cartFixture(userID), nil },
		findItemByID: func(cartID, itemID uint) (*model.CartItem, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := newCartServiceForTest(cartRepo, &stubVariantRepo{}, &stubProductRepo{})

	_, err := svc.UpdateItemQuantity(userID, 77, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}
