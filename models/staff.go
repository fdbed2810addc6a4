package models

import (
	"github.com/shopspring/decimal"
)

// StaffStatus enumerates the presence states of a staff member
type StaffStatus string

const (
	StaffActive   StaffStatus = "active"
	StaffInactive StaffStatus = "inactive"
	StaffOnBreak  StaffStatus = "on_break"
)

// Staff represents an employee of the restaurant
type Staff struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	Name       string           `gorm:"not null" json:"name"`
	Position   string           `gorm:"not null" json:"position"`
	Email      *string          `gorm:"uniqueIndex" json:"email"`
	Phone      *string          `json:"phone"`
	Status     StaffStatus      `gorm:"not null;default:'active'" json:"status"`
	ShiftStart *string          `json:"shiftStart"`
	ShiftEnd   *string          `json:"shiftEnd"`
	HourlyRate *decimal.Decimal `gorm:"type:decimal(10,2)" json:"hourlyRate"`
}

// TableName specifies the table name for the Staff model
func (Staff) TableName() string {
	return "staff"
}

// StaffPatch carries a partial update for a staff member.
// Nil fields are left untouched.
type StaffPatch struct {
	Name       *string          `json:"name" binding:"omitempty"`
	Position   *string          `json:"position" binding:"omitempty"`
	Email      *string          `json:"email" binding:"omitempty,email"`
	Phone      *string          `json:"phone" binding:"omitempty"`
	Status     *StaffStatus     `json:"status" binding:"omitempty,oneof=active inactive on_break"`
	ShiftStart *string          `json:"shiftStart" binding:"omitempty"`
	ShiftEnd   *string          `json:"shiftEnd" binding:"omitempty"`
	HourlyRate *decimal.Decimal `json:"hourlyRate" binding:"omitempty"`
}
