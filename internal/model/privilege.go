package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "product:create"
	Name string `gorm:"type:varchar(100)" json:"name"`
}

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// User management
	{Code: "user:view", Name: "View User"},
	{Code: "user:create", Name: "Create User"},
	{Code: "user:update", Name: "Update User"},
	{Code: "user:delete", Name: "Delete User"},
	{Code: "user:update_privilege", Name: "Update User Privileges"},
	// Catalog management
	{Code: "product:create", Name: "Create Product"},
	{Code: "product:update", Name: "Update Product"},
	{Code: "product:delete", Name: "Delete Product"},
	{Code: "category:create", Name: "Create Category"},
	{Code: "category:update", Name: "Update Category"},
	{Code: "category:delete", Name: "Delete Category"},
	{Code: "stock:adjust", Name: "Adjust Stock"},
	// Review moderation
	{Code: "review:moderate", Name: "Moderate Reviews"},
	// Content management
	{Code: "slide:manage", Name: "Manage Slides"},
	{Code: "faq:manage", Name: "Manage FAQs"},
	{Code: "setting:manage", Name: "Manage Settings"},
	// Dashboard
	{Code: "dashboard:view", Name: "View Dashboard"},
}
