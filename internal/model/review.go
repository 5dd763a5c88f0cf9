package model

import "time"

// Review is a customer product review. Reviews are created unapproved and
// only count toward a product's rating once a moderator approves them.
type Review struct {
	CatalogModel
	ProductID     uint       `gorm:"index;not null" json:"product_id"`
	Rating        int        `gorm:"not null" json:"rating" validate:"required,min=1,max=5"`
	Title         *string    `gorm:"type:varchar(200)" json:"title,omitempty" validate:"omitempty,max=200"`
	TitleAr       *string    `gorm:"type:varchar(200)" json:"title_ar,omitempty"`
	Content       *string    `gorm:"type:text" json:"content,omitempty"`
	ContentAr     *string    `gorm:"type:text" json:"content_ar,omitempty"`
	CustomerName  string     `gorm:"type:varchar(100);not null" json:"customer_name" validate:"required,max=100"`
	CustomerEmail string     `gorm:"type:varchar(255);not null" json:"customer_email" validate:"required,email"`
	IsApproved    bool       `gorm:"default:false" json:"is_approved"`
	IsFeatured    bool       `gorm:"default:false" json:"is_featured"`
	AdminNotes    *string    `gorm:"type:text" json:"admin_notes,omitempty"`
	ApprovedBy    *string    `gorm:"type:varchar(255)" json:"approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
}
