package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pauloferraz/braseiro-api/models"
	"github.com/pauloferraz/braseiro-api/storage"
)

// CreateInventoryRequest represents the request body for creating an
// inventory item
type CreateInventoryRequest struct {
	Name         string           `json:"name" binding:"required"`
	Category     string           `json:"category" binding:"required"`
	CurrentStock *decimal.Decimal `json:"currentStock" binding:"required"`
	Unit         string           `json:"unit" binding:"required"`
	MinThreshold *decimal.Decimal `json:"minThreshold" binding:"required"`
	MaxThreshold *decimal.Decimal `json:"maxThreshold" binding:"required"`
	PricePerUnit *decimal.Decimal `json:"pricePerUnit" binding:"omitempty"`
	Supplier     *string          `json:"supplier" binding:"omitempty"`
}

// ListInventory handles GET /api/v1/inventory
func ListInventory(c *gin.Context) {
	items, err := storage.Get().ListInventory()
	if err != nil {
		storeError(c, err, "INVENTORY_ITEM_NOT_FOUND", "Inventory item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
	})
}

// ListLowStock handles GET /api/v1/inventory/low-stock - items at or
// below their minimum threshold
func ListLowStock(c *gin.Context) {
	items, err := storage.Get().ListLowStock()
	if err != nil {
		storeError(c, err, "INVENTORY_ITEM_NOT_FOUND", "Inventory item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
	})
}

// GetInventoryItem handles GET /api/v1/inventory/:id
func GetInventoryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := storage.Get().GetInventoryItem(id)
	if err != nil {
		storeError(c, err, "INVENTORY_ITEM_NOT_FOUND", "Inventory item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// CreateInventoryItem handles POST /api/v1/inventory
func CreateInventoryItem(c *gin.Context) {
	var req CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	if req.CurrentStock.IsNegative() {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Current stock must not be negative")
		return
	}

	draft := models.Inventory{
		Name:         req.Name,
		Category:     req.Category,
		CurrentStock: *req.CurrentStock,
		Unit:         req.Unit,
		MinThreshold: *req.MinThreshold,
		MaxThreshold: *req.MaxThreshold,
		PricePerUnit: req.PricePerUnit,
		Supplier:     req.Supplier,
	}

	item, err := storage.Get().CreateInventoryItem(draft)
	if err != nil {
		storeError(c, err, "INVENTORY_ITEM_NOT_FOUND", "Inventory item not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    item,
	})
}

// UpdateInventoryItem handles PUT /api/v1/inventory/:id
func UpdateInventoryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.InventoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, err)
		return
	}

	if patch.CurrentStock != nil && patch.CurrentStock.IsNegative() {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Current stock must not be negative")
		return
	}

	item, err := storage.Get().UpdateInventoryItem(id, patch)
	if err != nil {
		storeError(c, err, "INVENTORY_ITEM_NOT_FOUND", "Inventory item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// DeleteInventoryItem handles DELETE /api/v1/inventory/:id
func DeleteInventoryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existed, err := storage.Get().DeleteInventoryItem(id)
	if err != nil {
		storeError(c, err, "INVENTORY_ITEM_NOT_FOUND", "Inventory item not found")
		return
	}
	if !existed {
		errorResponse(c, http.StatusNotFound, "INVENTORY_ITEM_NOT_FOUND", "Inventory item not found")
		return
	}

	c.Status(http.StatusNoContent)
}
