package model

// Category groups products. Deleting a category that still owns products is
// rejected by the service layer.
type Category struct {
	CatalogModel
	Slug                  string  `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`
	Name                  string  `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	NameAr                *string `gorm:"type:varchar(200)" json:"name_ar,omitempty" validate:"omitempty,max=200"`
	Description           *string `gorm:"type:text" json:"description,omitempty"`
	DescriptionAr         *string `gorm:"type:text" json:"description_ar,omitempty"`
	ImagePath             *string `gorm:"type:varchar(500)" json:"image_path,omitempty"`
	IsActive              bool    `gorm:"default:true" json:"is_active"`
	IsDisplayedOnHomepage bool    `gorm:"default:true" json:"is_displayed_on_homepage"`
	DisplayOrder          int     `gorm:"default:0" json:"display_order"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}
