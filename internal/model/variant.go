package model

import "github.com/shopspring/decimal"

// Variant is a purchasable SKU-level configuration of a product: a specific
// weight with its own price and stock. All pricing fields below the stored
// columns are derived on every read and never persisted.
type Variant struct {
	CatalogModel
	ProductID         uint             `gorm:"index;not null" json:"product_id"`
	VariantSKU        string           `gorm:"type:varchar(100);uniqueIndex;not null" json:"variant_sku" validate:"required,max=100"`
	Weight            decimal.Decimal  `gorm:"type:decimal(10,3);not null" json:"weight" validate:"min=0"`
	WeightUnit        string           `gorm:"type:varchar(10);default:'g'" json:"weight_unit"`
	Price             decimal.Decimal  `gorm:"type:decimal(16,3);not null" json:"price" validate:"gt=0"`
	DiscountPrice     *decimal.Decimal `gorm:"type:decimal(16,3)" json:"discount_price,omitempty" validate:"omitempty,gt=0"`
	StockQuantity     int              `gorm:"default:0" json:"stock_quantity" validate:"min=0"`
	LowStockThreshold int              `gorm:"default:5" json:"low_stock_threshold" validate:"min=0"`
	IsActive          bool             `gorm:"default:true" json:"is_active"`
	IsDefault         bool             `gorm:"default:false" json:"is_default"`
	DisplayOrder      int              `gorm:"default:0" json:"display_order"`
}

// HasDiscount reports whether the discount price is present and actually
// below the list price. A discount price >= price does not count.
func (v *Variant) HasDiscount() bool {
	return v.DiscountPrice != nil && v.DiscountPrice.LessThan(v.Price)
}

// EffectivePrice is the price a customer actually pays.
func (v *Variant) EffectivePrice() decimal.Decimal {
	if v.DiscountPrice != nil {
		return *v.DiscountPrice
	}
	return v.Price
}

// DiscountPercentage is (price-discount)/price*100, zero without a discount.
// Total even over corrupt rows: a zero price yields zero, never a division
// panic.
func (v *Variant) DiscountPercentage() decimal.Decimal {
	if !v.HasDiscount() || v.Price.IsZero() {
		return decimal.Zero
	}
	return v.Price.Sub(*v.DiscountPrice).Div(v.Price).Mul(decimal.NewFromInt(100))
}

func (v *Variant) IsInStock() bool {
	return v.StockQuantity > 0
}

func (v *Variant) IsLowStock() bool {
	return v.StockQuantity > 0 && v.StockQuantity <= v.LowStockThreshold
}
