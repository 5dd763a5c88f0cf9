package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-coffee-store/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestResolve_DiscountedVariant(t *testing.T) {
	p := &model.Product{
		Variants: []model.Variant{
			{Price: dec("10.000"), DiscountPrice: decPtr("8.000"), StockQuantity: 12},
		},
	}

	got := Resolve(p)

	require.NotNil(t, got.Price)
	assert.True(t, got.Price.Equal(dec("8.000")))
	assert.True(t, got.HasDiscount)
	assert.True(t, got.DiscountPercentage.Equal(dec("20")), "got %s", got.DiscountPercentage)
	require.NotNil(t, got.OriginalPrice)
	assert.True(t, got.OriginalPrice.Equal(dec("10.000")))
	assert.True(t, got.IsInStock)
}

func TestResolve_NoDiscount(t *testing.T) {
	p := &model.Product{
		Variants: []model.Variant{
			{Price: dec("10.000"), StockQuantity: 3},
		},
	}

	got := Resolve(p)

	require.NotNil(t, got.Price)
	assert.True(t, got.Price.Equal(dec("10.000")))
	assert.False(t, got.HasDiscount)
	assert.True(t, got.DiscountPercentage.IsZero())
	assert.Nil(t, got.OriginalPrice)
}

func TestResolve_DiscountNotBelowPrice(t *testing.T) {
	// A "discount" equal to or above the list price does not count.
	p := &model.Product{
		Variants: []model.Variant{
			{Price: dec("10"), DiscountPrice: decPtr("10")},
		},
	}

	got := Resolve(p)

	assert.False(t, got.HasDiscount)
	assert.True(t, got.DiscountPercentage.IsZero())
	// Effective price still follows the stored discount column.
	require.NotNil(t, got.Price)
	assert.True(t, got.Price.Equal(dec("10")))
}

func TestResolve_ZeroPriceRowStaysTotal(t *testing.T) {
	// Rows like this are rejected at the write path, but a pre-existing
	// corrupt row must not blow up the read path.
	p := &model.Product{
		Variants: []model.Variant{
			{Price: dec("0"), DiscountPrice: decPtr("-1")},
		},
	}

	var got Pricing
	require.NotPanics(t, func() { got = Resolve(p) })

	assert.True(t, got.DiscountPercentage.IsZero())
}

func TestResolve_NoVariants(t *testing.T) {
	got := Resolve(&model.Product{})

	assert.Nil(t, got.Price)
	assert.Equal(t, 0, got.StockQuantity)
	assert.False(t, got.IsInStock)
	assert.False(t, got.IsLowStock)
	assert.Equal(t, float64(0), got.AverageRating)
	assert.Equal(t, 0, got.ReviewCount)
}

func TestDefaultVariant_FlaggedDefaultWins(t *testing.T) {
	variants := []model.Variant{
		{VariantSKU: "A-250G"},
		{VariantSKU: "A-1KG", IsDefault: true},
	}

	v := DefaultVariant(variants)

	require.NotNil(t, v)
	assert.Equal(t, "A-1KG", v.VariantSKU)
}

func TestDefaultVariant_FallsBackToFirst(t *testing.T) {
	variants := []model.Variant{
		{VariantSKU: "A-250G"},
		{VariantSKU: "A-1KG"},
	}

	v := DefaultVariant(variants)

	require.NotNil(t, v)
	assert.Equal(t, "A-250G", v.VariantSKU)
}

func TestDefaultVariant_Empty(t *testing.T) {
	assert.Nil(t, DefaultVariant(nil))
}

func TestResolve_LowStock(t *testing.T) {
	p := &model.Product{
		Variants: []model.Variant{
			{Price: dec("5"), StockQuantity: 3, LowStockThreshold: 5},
		},
	}

	got := Resolve(p)

	assert.True(t, got.IsInStock)
	assert.True(t, got.IsLowStock)
}

func TestResolve_ApprovedReviewsOnly(t *testing.T) {
	p := &model.Product{
		Variants: []model.Variant{{Price: dec("5")}},
		Reviews: []model.Review{
			{Rating: 5, IsApproved: true},
			{Rating: 4, IsApproved: true},
			{Rating: 1}, // pending, must not count
		},
	}

	got := Resolve(p)

	assert.Equal(t, 2, got.ReviewCount)
	assert.InDelta(t, 4.5, got.AverageRating, 1e-9)
}
