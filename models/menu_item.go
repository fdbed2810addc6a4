package models

import (
	"github.com/shopspring/decimal"
)

// MenuItem represents a dish or drink offered on the restaurant menu
type MenuItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"not null" json:"category"`
	Available   bool            `gorm:"not null" json:"available"`
	Image       *string         `json:"image"`                       // S3 key of the uploaded item photo
	ImageURL    *string         `gorm:"-" json:"imageUrl,omitempty"` // computed field, presigned URL for the photo
}

// TableName specifies the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// MenuItemPatch carries a partial update for a menu item.
// Nil fields are left untouched.
type MenuItemPatch struct {
	Name        *string          `json:"name" binding:"omitempty"`
	Description *string          `json:"description" binding:"omitempty"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty"`
	Category    *string          `json:"category" binding:"omitempty"`
	Available   *bool            `json:"available" binding:"omitempty"`
	Image       *string          `json:"image" binding:"omitempty"`
}
