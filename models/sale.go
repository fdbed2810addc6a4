package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a completed payment for an order
type Sale struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Date          time.Time       `gorm:"not null" json:"date"`
	OrderID       uint            `gorm:"not null" json:"orderId"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"not null" json:"paymentMethod"`
	Discount      decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"discount"`
}

// TableName specifies the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
