package catalog

import (
	"github.com/shopspring/decimal"

	"go-coffee-store/internal/model"
)

// Pricing is the summary pricing/stock view of a product, derived from its
// variants and approved reviews on every read. A product without variants
// resolves to a nil price and zero stock; resolution never fails.
type Pricing struct {
	Price              *decimal.Decimal `json:"price"`
	OriginalPrice      *decimal.Decimal `json:"original_price,omitempty"`
	HasDiscount        bool             `json:"has_discount"`
	DiscountPercentage decimal.Decimal  `json:"discount_percentage"`
	StockQuantity      int              `json:"stock_quantity"`
	IsInStock          bool             `json:"is_in_stock"`
	IsLowStock         bool             `json:"is_low_stock"`
	AverageRating      float64          `json:"average_rating"`
	ReviewCount        int              `json:"review_count"`
}

// DefaultVariant picks the variant representing a product in summary views:
// the first one flagged default, else the first in collection order, else
// nil when the product has no variants.
func DefaultVariant(variants []model.Variant) *model.Variant {
	for i := range variants {
		if variants[i].IsDefault {
			return &variants[i]
		}
	}
	if len(variants) > 0 {
		return &variants[0]
	}
	return nil
}

// Resolve computes the pricing summary for a product. It is a total function
// over its input: absent variants or reviews map to zero-valued fields.
func Resolve(p *model.Product) Pricing {
	out := Pricing{DiscountPercentage: decimal.Zero}

	if v := DefaultVariant(p.Variants); v != nil {
		effective := v.EffectivePrice()
		out.Price = &effective
		out.HasDiscount = v.HasDiscount()
		if out.HasDiscount {
			original := v.Price
			out.OriginalPrice = &original
			out.DiscountPercentage = v.DiscountPercentage()
		}
		out.StockQuantity = v.StockQuantity
		out.IsInStock = v.IsInStock()
		out.IsLowStock = v.IsLowStock()
	}

	out.AverageRating, out.ReviewCount = approvedRating(p.Reviews)
	return out
}

func approvedRating(reviews []model.Review) (avg float64, count int) {
	sum := 0
	for i := range reviews {
		if reviews[i].IsApproved {
			sum += reviews[i].Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return float64(sum) / float64(count), count
}
