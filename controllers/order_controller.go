package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pauloferraz/braseiro-api/models"
	"github.com/pauloferraz/braseiro-api/storage"
)

// CreateOrderRequest represents the request body for creating an order.
// The total is accepted as supplied; it is not derived from the line items.
type CreateOrderRequest struct {
	TableNumber  int                 `json:"tableNumber" binding:"required,gt=0"`
	Status       *models.OrderStatus `json:"status" binding:"omitempty,oneof=pending preparing ready served cancelled"`
	Items        models.OrderItems   `json:"items" binding:"required"`
	Total        *decimal.Decimal    `json:"total" binding:"required"`
	CustomerName *string             `json:"customerName" binding:"omitempty"`
	Notes        *string             `json:"notes" binding:"omitempty"`
}

// ListOrders handles GET /api/v1/orders - newest first, optionally
// filtered by ?status=
func ListOrders(c *gin.Context) {
	var orders []models.Order
	var err error

	if status := c.Query("status"); status != "" {
		orders, err = storage.Get().ListOrdersByStatus(models.OrderStatus(status))
	} else {
		orders, err = storage.Get().ListOrders()
	}
	if err != nil {
		storeError(c, err, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// GetOrder handles GET /api/v1/orders/:id
func GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := storage.Get().GetOrder(id)
	if err != nil {
		storeError(c, err, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// CreateOrder handles POST /api/v1/orders
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	if req.Total.IsNegative() {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Total must not be negative")
		return
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Item quantity must be at least 1")
			return
		}
	}

	draft := models.Order{
		TableNumber:  req.TableNumber,
		Items:        req.Items,
		Total:        *req.Total,
		CustomerName: req.CustomerName,
		Notes:        req.Notes,
	}
	if req.Status != nil {
		draft.Status = *req.Status
	}

	order, err := storage.Get().CreateOrder(draft)
	if err != nil {
		storeError(c, err, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateOrder handles PUT /api/v1/orders/:id
func UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, err)
		return
	}

	if patch.Total != nil && patch.Total.IsNegative() {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Total must not be negative")
		return
	}
	if patch.Items != nil {
		for _, item := range *patch.Items {
			if item.Quantity < 1 {
				errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Item quantity must be at least 1")
				return
			}
		}
	}

	order, err := storage.Get().UpdateOrder(id, patch)
	if err != nil {
		storeError(c, err, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:id
func DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existed, err := storage.Get().DeleteOrder(id)
	if err != nil {
		storeError(c, err, "ORDER_NOT_FOUND", "Order not found")
		return
	}
	if !existed {
		errorResponse(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	c.Status(http.StatusNoContent)
}
