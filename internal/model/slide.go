package model

// Slide is a homepage hero slide with bilingual copy.
type Slide struct {
	CatalogModel
	Title           string  `gorm:"type:varchar(200);not null" json:"title" validate:"required,max=200"`
	TitleAr         *string `gorm:"type:varchar(200)" json:"title_ar,omitempty"`
	Subtitle        *string `gorm:"type:varchar(500)" json:"subtitle,omitempty"`
	SubtitleAr      *string `gorm:"type:varchar(500)" json:"subtitle_ar,omitempty"`
	ImagePath       string  `gorm:"type:varchar(500);not null" json:"image_path" validate:"required"`
	ButtonText      *string `gorm:"type:varchar(100)" json:"button_text,omitempty"`
	ButtonTextAr    *string `gorm:"type:varchar(100)" json:"button_text_ar,omitempty"`
	ButtonURL       *string `gorm:"type:varchar(500)" json:"button_url,omitempty"`
	BackgroundColor *string `gorm:"type:varchar(50)" json:"background_color,omitempty"`
	TextColor       *string `gorm:"type:varchar(50)" json:"text_color,omitempty"`
	DisplayOrder    int     `gorm:"default:0" json:"display_order"`
	IsActive        bool    `gorm:"default:true" json:"is_active"`
}
