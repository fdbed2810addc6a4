package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pauloferraz/braseiro-api/models"
	"github.com/pauloferraz/braseiro-api/storage"
)

// CreateStaffRequest represents the request body for creating a staff member
type CreateStaffRequest struct {
	Name       string              `json:"name" binding:"required"`
	Position   string              `json:"position" binding:"required"`
	Email      *string             `json:"email" binding:"omitempty,email"`
	Phone      *string             `json:"phone" binding:"omitempty"`
	Status     *models.StaffStatus `json:"status" binding:"omitempty,oneof=active inactive on_break"`
	ShiftStart *string             `json:"shiftStart" binding:"omitempty"`
	ShiftEnd   *string             `json:"shiftEnd" binding:"omitempty"`
	HourlyRate *decimal.Decimal    `json:"hourlyRate" binding:"omitempty"`
}

// ListStaff handles GET /api/v1/staff
func ListStaff(c *gin.Context) {
	members, err := storage.Get().ListStaff()
	if err != nil {
		storeError(c, err, "STAFF_NOT_FOUND", "Staff member not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    members,
	})
}

// CreateStaffMember handles POST /api/v1/staff
func CreateStaffMember(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	draft := models.Staff{
		Name:       req.Name,
		Position:   req.Position,
		Email:      req.Email,
		Phone:      req.Phone,
		ShiftStart: req.ShiftStart,
		ShiftEnd:   req.ShiftEnd,
		HourlyRate: req.HourlyRate,
	}
	if req.Status != nil {
		draft.Status = *req.Status
	}

	member, err := storage.Get().CreateStaffMember(draft)
	if err != nil {
		storeError(c, err, "STAFF_NOT_FOUND", "Staff member not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    member,
	})
}

// UpdateStaffMember handles PUT /api/v1/staff/:id
func UpdateStaffMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.StaffPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, err)
		return
	}

	member, err := storage.Get().UpdateStaffMember(id, patch)
	if err != nil {
		storeError(c, err, "STAFF_NOT_FOUND", "Staff member not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    member,
	})
}

// DeleteStaffMember handles DELETE /api/v1/staff/:id
func DeleteStaffMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existed, err := storage.Get().DeleteStaffMember(id)
	if err != nil {
		storeError(c, err, "STAFF_NOT_FOUND", "Staff member not found")
		return
	}
	if !existed {
		errorResponse(c, http.StatusNotFound, "STAFF_NOT_FOUND", "Staff member not found")
		return
	}

	c.Status(http.StatusNoContent)
}
