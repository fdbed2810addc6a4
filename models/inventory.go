package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel classifies how urgent an inventory item's stock situation is
type StockLevel string

const (
	StockCritical StockLevel = "critical"
	StockLow      StockLevel = "low"
	StockNormal   StockLevel = "normal"
	StockHigh     StockLevel = "high"
)

// Inventory represents a stocked ingredient or supply item
type Inventory struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	Name         string           `gorm:"not null;uniqueIndex" json:"name"`
	Category     string           `gorm:"not null" json:"category"`
	CurrentStock decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"currentStock"`
	Unit         string           `gorm:"not null" json:"unit"` // kg, units, liters, etc.
	MinThreshold decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"minThreshold"`
	MaxThreshold decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"maxThreshold"`
	PricePerUnit *decimal.Decimal `gorm:"type:decimal(10,2)" json:"pricePerUnit"`
	Supplier     *string          `json:"supplier"`
	LastUpdated  time.Time        `gorm:"not null" json:"lastUpdated"`
}

// TableName specifies the table name for the Inventory model
func (Inventory) TableName() string {
	return "inventory"
}

// StockStatus classifies the item's stock urgency from its thresholds:
// critical when stock is at or below half the minimum, low when at or
// below the minimum, high when at or above the maximum, otherwise normal.
func (i Inventory) StockStatus() StockLevel {
	half := i.MinThreshold.Div(decimal.NewFromInt(2))
	switch {
	case i.CurrentStock.LessThanOrEqual(half):
		return StockCritical
	case i.CurrentStock.LessThanOrEqual(i.MinThreshold):
		return StockLow
	case i.CurrentStock.GreaterThanOrEqual(i.MaxThreshold):
		return StockHigh
	default:
		return StockNormal
	}
}

// IsLowStock reports whether the item needs reordering
func (i Inventory) IsLowStock() bool {
	status := i.StockStatus()
	return status == StockCritical || status == StockLow
}

// InventoryPatch carries a partial update for an inventory item.
// Nil fields are left untouched; LastUpdated is refreshed by the store.
type InventoryPatch struct {
	Name         *string          `json:"name" binding:"omitempty"`
	Category     *string          `json:"category" binding:"omitempty"`
	CurrentStock *decimal.Decimal `json:"currentStock" binding:"omitempty"`
	Unit         *string          `json:"unit" binding:"omitempty"`
	MinThreshold *decimal.Decimal `json:"minThreshold" binding:"omitempty"`
	MaxThreshold *decimal.Decimal `json:"maxThreshold" binding:"omitempty"`
	PricePerUnit *decimal.Decimal `json:"pricePerUnit" binding:"omitempty"`
	Supplier     *string          `json:"supplier" binding:"omitempty"`
}
