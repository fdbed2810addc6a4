package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pauloferraz/braseiro-api/models"
	"github.com/pauloferraz/braseiro-api/storage"
)

// CreateTableRequest represents the request body for creating a table
type CreateTableRequest struct {
	Number     int                 `json:"number" binding:"required,gt=0"`
	Capacity   int                 `json:"capacity" binding:"required,gte=1"`
	Status     *models.TableStatus `json:"status" binding:"omitempty,oneof=available occupied reserved cleaning"`
	ReservedBy *string             `json:"reservedBy" binding:"omitempty"`
	ReservedAt *time.Time          `json:"reservedAt" binding:"omitempty"`
}

// ListTables handles GET /api/v1/tables
func ListTables(c *gin.Context) {
	tables, err := storage.Get().ListTables()
	if err != nil {
		storeError(c, err, "TABLE_NOT_FOUND", "Table not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tables,
	})
}

// GetTable handles GET /api/v1/tables/:id
func GetTable(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	table, err := storage.Get().GetTable(id)
	if err != nil {
		storeError(c, err, "TABLE_NOT_FOUND", "Table not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    table,
	})
}

// CreateTable handles POST /api/v1/tables
func CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	draft := models.Table{
		Number:     req.Number,
		Capacity:   req.Capacity,
		ReservedBy: req.ReservedBy,
		ReservedAt: req.ReservedAt,
	}
	if req.Status != nil {
		draft.Status = *req.Status
	}

	table, err := storage.Get().CreateTable(draft)
	if err != nil {
		storeError(c, err, "TABLE_NOT_FOUND", "Table not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    table,
	})
}

// UpdateTable handles PUT /api/v1/tables/:id
func UpdateTable(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.TablePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, err)
		return
	}

	if patch.Number != nil && *patch.Number <= 0 {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Table number must be positive")
		return
	}

	table, err := storage.Get().UpdateTable(id, patch)
	if err != nil {
		storeError(c, err, "TABLE_NOT_FOUND", "Table not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    table,
	})
}

// DeleteTable handles DELETE /api/v1/tables/:id
func DeleteTable(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existed, err := storage.Get().DeleteTable(id)
	if err != nil {
		storeError(c, err, "TABLE_NOT_FOUND", "Table not found")
		return
	}
	if !existed {
		errorResponse(c, http.StatusNotFound, "TABLE_NOT_FOUND", "Table not found")
		return
	}

	c.Status(http.StatusNoContent)
}
