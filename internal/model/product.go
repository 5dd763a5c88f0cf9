package model

// Product is a coffee product with bilingual fields. Pricing and stock live
// on its variants; the product row itself carries no price.
type Product struct {
	CatalogModel
	SKU            string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"sku" validate:"required,max=100"`
	Name           string  `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	NameAr         *string `gorm:"type:varchar(200)" json:"name_ar,omitempty" validate:"omitempty,max=200"`
	Description    *string `gorm:"type:text" json:"description,omitempty"`
	DescriptionAr  *string `gorm:"type:text" json:"description_ar,omitempty"`
	Origin         *string `gorm:"type:varchar(200)" json:"origin,omitempty"`
	RoastLevel     *string `gorm:"type:varchar(100)" json:"roast_level,omitempty"`
	RoastLevelAr   *string `gorm:"type:varchar(100)" json:"roast_level_ar,omitempty"`
	Process        *string `gorm:"type:varchar(100)" json:"process,omitempty"`
	ProcessAr      *string `gorm:"type:varchar(100)" json:"process_ar,omitempty"`
	TastingNotes   *string `gorm:"type:text" json:"tasting_notes,omitempty"`
	TastingNotesAr *string `gorm:"type:text" json:"tasting_notes_ar,omitempty"`
	Intensity      *int    `json:"intensity,omitempty" validate:"omitempty,min=1,max=10"`
	IsActive       bool    `gorm:"default:true" json:"is_active"`
	IsFeatured     bool    `gorm:"default:false" json:"is_featured"`
	IsDigital      bool    `gorm:"default:false" json:"is_digital"`
	DisplayOrder   int     `gorm:"default:0" json:"display_order"`

	CategoryID uint      `gorm:"index;not null" json:"category_id" validate:"required"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`

	Variants []Variant      `gorm:"foreignKey:ProductID" json:"variants,omitempty" validate:"-"`
	Images   []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty" validate:"-"`
	Reviews  []Review       `gorm:"foreignKey:ProductID" json:"reviews,omitempty" validate:"-"`
}

// MainImage returns the image flagged main, or nil.
func (p *Product) MainImage() *ProductImage {
	for i := range p.Images {
		if p.Images[i].IsMain {
			return &p.Images[i]
		}
	}
	return nil
}

// ProductImage is a gallery image; at most one per product is flagged main.
type ProductImage struct {
	CatalogModel
	ProductID    uint    `gorm:"index;not null" json:"product_id"`
	ImagePath    string  `gorm:"type:varchar(500);not null" json:"image_path" validate:"required"`
	AltText      *string `gorm:"type:varchar(200)" json:"alt_text,omitempty"`
	AltTextAr    *string `gorm:"type:varchar(200)" json:"alt_text_ar,omitempty"`
	IsMain       bool    `gorm:"default:false" json:"is_main"`
	DisplayOrder int     `gorm:"default:0" json:"display_order"`
}
