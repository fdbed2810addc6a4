package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates the kitchen workflow states of an order.
// Transitions are not validated; any status may be set by an update.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderCancelled OrderStatus = "cancelled"
)

// IsActive reports whether the order still needs kitchen attention
func (s OrderStatus) IsActive() bool {
	return s == OrderPending || s == OrderPreparing
}

// OrderItem is a single line of an order. It is embedded in the order's
// items column, not a standalone record.
type OrderItem struct {
	MenuItemID uint            `json:"menuItemId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Notes      *string         `json:"notes,omitempty"`
}

// OrderItems is stored as a JSON text column
type OrderItems []OrderItem

// Value implements driver.Valuer, serializing the line items to JSON
func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		o = OrderItems{}
	}
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order items: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner, deserializing the JSON items column
func (o *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*o = OrderItems{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for order items column: %T", value)
	}

	if err := json.Unmarshal(data, o); err != nil {
		return fmt.Errorf("failed to unmarshal order items: %w", err)
	}
	return nil
}

// Order represents a table order placed with the kitchen
type Order struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	TableNumber  int             `gorm:"not null" json:"tableNumber"`
	Status       OrderStatus     `gorm:"not null;default:'pending'" json:"status"`
	Items        OrderItems      `gorm:"type:text;not null" json:"items"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	CustomerName *string         `json:"customerName"`
	Notes        *string         `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderPatch carries a partial update for an order.
// Nil fields are left untouched; UpdatedAt is refreshed by the store.
type OrderPatch struct {
	TableNumber  *int             `json:"tableNumber" binding:"omitempty"`
	Status       *OrderStatus     `json:"status" binding:"omitempty,oneof=pending preparing ready served cancelled"`
	Items        *OrderItems      `json:"items" binding:"omitempty"`
	Total        *decimal.Decimal `json:"total" binding:"omitempty"`
	CustomerName *string          `json:"customerName" binding:"omitempty"`
	Notes        *string          `json:"notes" binding:"omitempty"`
}
