package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a registered guest of the restaurant.
// TotalOrders and TotalSpent are stored counters; nothing updates them
// automatically when orders or sales are created.
type Customer struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Email       *string         `gorm:"uniqueIndex" json:"email"`
	Phone       *string         `json:"phone"`
	Address     *string         `json:"address"`
	TotalOrders int             `gorm:"not null;default:0" json:"totalOrders"`
	TotalSpent  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"totalSpent"`
	LastVisit   *time.Time      `json:"lastVisit"`
	Preferences *string         `json:"preferences"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// CustomerPatch carries a partial update for a customer.
// Nil fields are left untouched.
type CustomerPatch struct {
	Name        *string          `json:"name" binding:"omitempty"`
	Email       *string          `json:"email" binding:"omitempty,email"`
	Phone       *string          `json:"phone" binding:"omitempty"`
	Address     *string          `json:"address" binding:"omitempty"`
	TotalOrders *int             `json:"totalOrders" binding:"omitempty,gte=0"`
	TotalSpent  *decimal.Decimal `json:"totalSpent" binding:"omitempty"`
	LastVisit   *time.Time       `json:"lastVisit" binding:"omitempty"`
	Preferences *string          `json:"preferences" binding:"omitempty"`
}
