package model

// FAQCategory groups FAQs on the public FAQ page.
type FAQCategory struct {
	CatalogModel
	Name         string  `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	NameAr       *string `gorm:"type:varchar(200)" json:"name_ar,omitempty"`
	DisplayOrder int     `gorm:"default:0" json:"display_order"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`

	FAQs []FAQ `gorm:"foreignKey:CategoryID" json:"faqs,omitempty"`
}

// FAQ is a bilingual question/answer pair.
type FAQ struct {
	CatalogModel
	Question     string  `gorm:"type:varchar(500);not null" json:"question" validate:"required,max=500"`
	QuestionAr   *string `gorm:"type:varchar(500)" json:"question_ar,omitempty" validate:"omitempty,max=500"`
	Answer       string  `gorm:"type:text;not null" json:"answer" validate:"required"`
	AnswerAr     *string `gorm:"type:text" json:"answer_ar,omitempty"`
	DisplayOrder int     `gorm:"default:0" json:"display_order"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`

	CategoryID *uint        `gorm:"index" json:"category_id,omitempty"`
	Category   *FAQCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`
}
