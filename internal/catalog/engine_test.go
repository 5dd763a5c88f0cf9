package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-coffee-store/internal/model"
)

func activeProduct(id uint, name string, opts ...func(*model.Product)) model.Product {
	p := model.Product{
		CatalogModel: model.CatalogModel{ID: id},
		SKU:          fmt.Sprintf("SKU-%d", id),
		Name:         name,
		IsActive:     true,
		CategoryID:   1,
		Variants: []model.Variant{
			{Price: dec("10"), StockQuantity: 10, IsActive: true},
		},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func names(page Page) []string {
	out := make([]string, len(page.Items))
	for i, it := range page.Items {
		out[i] = it.Name
	}
	return out
}

func TestSearch_NameSortAndReversal(t *testing.T) {
	products := []model.Product{
		activeProduct(1, "Zeta"),
		activeProduct(2, "Alpha"),
		activeProduct(3, "Mid"),
	}

	asc := Search(products, SearchSpec{SortBy: "name"})
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, names(asc))

	desc := Search(products, SearchSpec{SortBy: "name", SortDirection: "desc"})
	assert.Equal(t, []string{"Zeta", "Mid", "Alpha"}, names(desc))
}

func TestSearch_DefaultSortIsDisplayOrderThenName(t *testing.T) {
	products := []model.Product{
		activeProduct(1, "Bravo", func(p *model.Product) { p.DisplayOrder = 2 }),
		activeProduct(2, "Zulu", func(p *model.Product) { p.DisplayOrder = 1 }),
		activeProduct(3, "Alpha", func(p *model.Product) { p.DisplayOrder = 2 }),
	}

	got := Search(products, SearchSpec{})
	assert.Equal(t, []string{"Zulu", "Alpha", "Bravo"}, names(got))

	unknown := Search(products, SearchSpec{SortBy: "bogus"})
	assert.Equal(t, names(got), names(unknown), "unrecognized sort falls back to default ordering")
}

// Descending display order reverses the primary key only; products sharing a
// display order keep their name tiebreak ascending. This asymmetry is
// long-standing observable behavior and must not be "fixed".
func TestSearch_DescLeavesNameTiebreakAscending(t *testing.T) {
	products := []model.Product{
		activeProduct(1, "Bravo", func(p *model.Product) { p.DisplayOrder = 2 }),
		activeProduct(2, "Zulu", func(p *model.Product) { p.DisplayOrder = 1 }),
		activeProduct(3, "Alpha", func(p *model.Product) { p.DisplayOrder = 2 }),
	}

	got := Search(products, SearchSpec{SortBy: "displayorder", SortDirection: "desc"})

	assert.Equal(t, []string{"Alpha", "Bravo", "Zulu"}, names(got))
}

func TestSearch_PaginationIdentity(t *testing.T) {
	var products []model.Product
	for i := uint(1); i <= 45; i++ {
		products = append(products, activeProduct(i, fmt.Sprintf("Coffee %02d", i)))
	}

	for _, tc := range []struct{ page, size int }{
		{1, 20}, {2, 20}, {3, 20}, {4, 20}, {1, 100}, {5, 7}, {9, 5}, {10, 5},
	} {
		got := Search(products, SearchSpec{Page: tc.page, PageSize: tc.size})

		assert.Equal(t, 45, got.TotalItems)
		assert.Equal(t, TotalPages(45, tc.size), got.TotalPages)

		want := tc.size
		if rem := 45 - (tc.page-1)*tc.size; rem < want {
			want = rem
		}
		if want < 0 {
			want = 0
		}
		assert.Len(t, got.Items, want, "page=%d size=%d", tc.page, tc.size)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 3, TotalPages(45, 20))
	assert.Equal(t, 0, TotalPages(45, 0))
}

func TestSearch_NormalizesPageAndSize(t *testing.T) {
	products := []model.Product{activeProduct(1, "Solo")}

	got := Search(products, SearchSpec{Page: -3, PageSize: 0})
	assert.Equal(t, 1, got.CurrentPage)
	assert.Equal(t, DefaultPageSize, got.PageSize)

	got = Search(products, SearchSpec{Page: 1, PageSize: 5000})
	assert.Equal(t, MaxPageSize, got.PageSize)
}

func TestSearch_InactiveProductsNeverReturned(t *testing.T) {
	products := []model.Product{
		activeProduct(1, "Visible"),
		activeProduct(2, "Hidden", func(p *model.Product) { p.IsActive = false }),
	}

	got := Search(products, SearchSpec{})

	assert.Equal(t, []string{"Visible"}, names(got))
	assert.Equal(t, 1, got.TotalItems)
}

func TestSearch_TextQueryMatchesNameArOrSKU(t *testing.T) {
	ar := "قهوة مختصة"
	products := []model.Product{
		activeProduct(1, "Ethiopia Guji", func(p *model.Product) { p.SKU = "ETH-GUJI" }),
		activeProduct(2, "Colombia Huila", func(p *model.Product) { p.NameAr = &ar }),
		activeProduct(3, "Kenya AA"),
	}

	assert.Equal(t, []string{"Ethiopia Guji"}, names(Search(products, SearchSpec{Query: "guji"})))
	assert.Equal(t, []string{"Ethiopia Guji"}, names(Search(products, SearchSpec{Query: "eth-"})))
	assert.Equal(t, []string{"Colombia Huila"}, names(Search(products, SearchSpec{Query: "مختصة"})))
	assert.Empty(t, names(Search(products, SearchSpec{Query: "nope"})))
}

func TestSearch_CategoryFilters(t *testing.T) {
	catA := &model.Category{CatalogModel: model.CatalogModel{ID: 1}, Slug: "espresso"}
	catB := &model.Category{CatalogModel: model.CatalogModel{ID: 2}, Slug: "filter"}
	products := []model.Product{
		activeProduct(1, "One", func(p *model.Product) { p.CategoryID = 1; p.Category = catA }),
		activeProduct(2, "Two", func(p *model.Product) { p.CategoryID = 2; p.Category = catB }),
	}

	id := uint(2)
	assert.Equal(t, []string{"Two"}, names(Search(products, SearchSpec{CategoryID: &id})))
	assert.Equal(t, []string{"One"}, names(Search(products, SearchSpec{CategorySlug: "espresso"})))

	// Id wins when both are supplied.
	assert.Equal(t, []string{"Two"}, names(Search(products, SearchSpec{CategoryID: &id, CategorySlug: "espresso"})))

	// Unknown category yields an empty page, not an error.
	missing := uint(99)
	empty := Search(products, SearchSpec{CategoryID: &missing})
	assert.Empty(t, empty.Items)
	assert.Equal(t, 0, empty.TotalItems)
	assert.Empty(t, names(Search(products, SearchSpec{CategorySlug: "no-such-slug"})))
}

func TestSearch_FeaturedOnly(t *testing.T) {
	products := []model.Product{
		activeProduct(1, "Plain"),
		activeProduct(2, "Star", func(p *model.Product) { p.IsFeatured = true }),
	}

	got := Search(products, SearchSpec{FeaturedOnly: true})

	assert.Equal(t, []string{"Star"}, names(got))
}

// The in-stock listing filter only counts ACTIVE variants; a product whose
// only stocked variant is inactive is out of stock for the storefront. The
// delete guard in the product service intentionally uses the opposite rule.
func TestSearch_InStockOnlyIgnoresInactiveVariants(t *testing.T) {
	products := []model.Product{
		activeProduct(1, "Stocked"),
		activeProduct(2, "InactiveStock", func(p *model.Product) {
			p.Variants = []model.Variant{{Price: dec("10"), StockQuantity: 7, IsActive: false}}
		}),
		activeProduct(3, "SoldOut", func(p *model.Product) {
			p.Variants = []model.Variant{{Price: dec("10"), StockQuantity: 0, IsActive: true}}
		}),
	}

	got := Search(products, SearchSpec{InStockOnly: true})

	assert.Equal(t, []string{"Stocked"}, names(got))
}

func TestSearch_PriceRange(t *testing.T) {
	products := []model.Product{
		activeProduct(1, "Cheap", func(p *model.Product) {
			p.Variants = []model.Variant{{Price: dec("4.5"), StockQuantity: 1, IsActive: true}}
		}),
		activeProduct(2, "Discounted", func(p *model.Product) {
			// List 12, sells for 8: the effective price is what is compared.
			p.Variants = []model.Variant{{Price: dec("12"), DiscountPrice: decPtr("8"), StockQuantity: 1, IsActive: true}}
		}),
		activeProduct(3, "Premium", func(p *model.Product) {
			p.Variants = []model.Variant{{Price: dec("30"), StockQuantity: 1, IsActive: true}}
		}),
		activeProduct(4, "Unpriced", func(p *model.Product) { p.Variants = nil }),
	}

	got := Search(products, SearchSpec{MinPrice: decPtr("5"), MaxPrice: decPtr("15")})
	assert.Equal(t, []string{"Discounted"}, names(got))

	// A product with no resolvable price is excluded from any bounded query.
	got = Search(products, SearchSpec{MinPrice: decPtr("0")})
	assert.NotContains(t, names(got), "Unpriced")

	// Without bounds it is listed normally.
	got = Search(products, SearchSpec{})
	assert.Contains(t, names(got), "Unpriced")
}

func TestSearch_FiltersAndCombined(t *testing.T) {
	products := []model.Product{
		activeProduct(1, "Featured Stocked", func(p *model.Product) { p.IsFeatured = true }),
		activeProduct(2, "Featured SoldOut", func(p *model.Product) {
			p.IsFeatured = true
			p.Variants = []model.Variant{{Price: dec("10"), IsActive: true}}
		}),
		activeProduct(3, "Plain Stocked"),
	}

	got := Search(products, SearchSpec{FeaturedOnly: true, InStockOnly: true})

	assert.Equal(t, []string{"Featured Stocked"}, names(got))
}

func TestSearch_CreatedSort(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	products := []model.Product{
		activeProduct(1, "Newest", func(p *model.Product) { p.CreatedAt = base.Add(48 * time.Hour) }),
		activeProduct(2, "Oldest", func(p *model.Product) { p.CreatedAt = base }),
		activeProduct(3, "Middle", func(p *model.Product) { p.CreatedAt = base.Add(24 * time.Hour) }),
	}

	asc := Search(products, SearchSpec{SortBy: "created"})
	assert.Equal(t, []string{"Oldest", "Middle", "Newest"}, names(asc))

	desc := Search(products, SearchSpec{SortBy: "created", SortDirection: "desc"})
	assert.Equal(t, []string{"Newest", "Middle", "Oldest"}, names(desc))
}

func TestSearch_SummaryCarriesPricing(t *testing.T) {
	products := []model.Product{
		activeProduct(1, "Guji", func(p *model.Product) {
			p.Variants = []model.Variant{{Price: dec("10.000"), DiscountPrice: decPtr("8.000"), StockQuantity: 2, LowStockThreshold: 5, IsActive: true}}
			p.Reviews = []model.Review{{Rating: 4, IsApproved: true}}
		}),
	}

	got := Search(products, SearchSpec{})

	require.Len(t, got.Items, 1)
	item := got.Items[0]
	require.NotNil(t, item.Price)
	assert.True(t, item.Price.Equal(dec("8.000")))
	assert.True(t, item.HasDiscount)
	assert.True(t, item.IsLowStock)
	assert.Equal(t, 1, item.ReviewCount)
	assert.InDelta(t, 4.0, item.AverageRating, 1e-9)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortName, ParseSortKey("Name"))
	assert.Equal(t, SortCreated, ParseSortKey("created"))
	assert.Equal(t, SortUpdated, ParseSortKey(" updated "))
	assert.Equal(t, SortDisplayOrder, ParseSortKey("displayorder"))
	assert.Equal(t, SortDefault, ParseSortKey(""))
	assert.Equal(t, SortDefault, ParseSortKey("price"))
}
