package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is a user's shopping cart. One cart per user; totals are computed
// from the items on every read.
type Cart struct {
	CatalogModel
	UserID uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Items  []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
}

// TotalQuantity is the sum of item quantities.
func (c *Cart) TotalQuantity() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].Quantity
	}
	return total
}

// TotalPrice is the sum of line totals.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].LineTotal())
	}
	return total
}

// CartItem references a product variant. UnitPrice is a snapshot of the
// variant's effective price at the time the item was last touched.
type CartItem struct {
	CatalogModel
	CartID    uint            `gorm:"index;not null" json:"cart_id"`
	VariantID uint            `gorm:"index;not null" json:"variant_id" validate:"required"`
	Variant   *Variant        `gorm:"foreignKey:VariantID" json:"variant,omitempty" validate:"-"`
	Quantity  int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(16,3);not null" json:"unit_price"`
}

func (ci *CartItem) LineTotal() decimal.Decimal {
	return ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
