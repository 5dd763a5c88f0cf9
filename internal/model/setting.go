package model

// Setting is a key/value store entry for storefront configuration.
type Setting struct {
	CatalogModel
	Key           string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"key" validate:"required,max=100"`
	Value         string  `gorm:"type:text" json:"value"`
	Description   *string `gorm:"type:varchar(500)" json:"description,omitempty"`
	DescriptionAr *string `gorm:"type:varchar(500)" json:"description_ar,omitempty"`
	Category      string  `gorm:"type:varchar(50);default:'General'" json:"category"`
	DataType      string  `gorm:"type:varchar(20);default:'Text'" json:"data_type"` // Text, Image, Boolean, Number
	IsPublic      bool    `gorm:"default:true" json:"is_public"`
}

// DefaultSettings are seeded at boot when the key is absent.
var DefaultSettings = []Setting{
	{Key: "store.name", Value: "SpiritHub Coffee", Category: "General"},
	{Key: "store.name_ar", Value: "", Category: "General"},
	{Key: "store.currency", Value: "OMR", Category: "General"},
	{Key: "store.email", Value: "hello@example.com", Category: "Contact"},
	{Key: "store.phone", Value: "", Category: "Contact"},
	{Key: "home.featured_count", Value: "8", Category: "Homepage", DataType: "Number"},
}
