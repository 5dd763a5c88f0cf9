package model

// StockMovement is an audit log entry for an admin stock adjustment on a
// variant. Written in the same DB transaction as the stock update.
type StockMovement struct {
	CatalogModel
	VariantID        uint    `gorm:"index;not null" json:"variant_id"`
	Variant          *Variant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
	Delta            int     `gorm:"not null" json:"delta"`
	ResultingQty     int     `gorm:"not null" json:"resulting_qty"`
	Reason           string  `gorm:"type:varchar(200)" json:"reason"`
	AdjustedByUserID *string `gorm:"type:varchar(255)" json:"adjusted_by_user_id,omitempty"`
}
