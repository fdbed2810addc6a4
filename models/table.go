package models

import (
	"time"
)

// TableStatus enumerates the dining table states.
// No transition rules are enforced; the status is set directly by updates.
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableCleaning  TableStatus = "cleaning"
)

// Table represents a dining table on the restaurant floor
type Table struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Number     int         `gorm:"not null;uniqueIndex" json:"number"`
	Capacity   int         `gorm:"not null;check:capacity >= 1" json:"capacity"`
	Status     TableStatus `gorm:"not null;default:'available'" json:"status"`
	ReservedBy *string     `json:"reservedBy"`
	ReservedAt *time.Time  `json:"reservedAt"`
}

// TableName specifies the table name for the Table model
func (Table) TableName() string {
	return "tables"
}

// TablePatch carries a partial update for a table.
// Nil fields are left untouched.
type TablePatch struct {
	Number     *int         `json:"number" binding:"omitempty"`
	Capacity   *int         `json:"capacity" binding:"omitempty,gte=1"`
	Status     *TableStatus `json:"status" binding:"omitempty,oneof=available occupied reserved cleaning"`
	ReservedBy *string      `json:"reservedBy" binding:"omitempty"`
	ReservedAt *time.Time   `json:"reservedAt" binding:"omitempty"`
}
