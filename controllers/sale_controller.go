package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pauloferraz/braseiro-api/models"
	"github.com/pauloferraz/braseiro-api/storage"
)

// CreateSaleRequest represents the request body for recording a sale
type CreateSaleRequest struct {
	OrderID       uint             `json:"orderId" binding:"required"`
	Amount        *decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string           `json:"paymentMethod" binding:"required"`
	Discount      *decimal.Decimal `json:"discount" binding:"omitempty"`
	Date          *time.Time       `json:"date" binding:"omitempty"`
}

// ListSales handles GET /api/v1/sales - newest first. With ?start= and
// ?end= (RFC 3339) it returns the sales in that range, inclusive on both
// bounds.
func ListSales(c *gin.Context) {
	startParam := c.Query("start")
	endParam := c.Query("end")

	var sales []models.Sale
	var err error

	if startParam != "" || endParam != "" {
		start, parseErr := time.Parse(time.RFC3339, startParam)
		if parseErr != nil {
			errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "start must be an RFC 3339 timestamp")
			return
		}
		end, parseErr := time.Parse(time.RFC3339, endParam)
		if parseErr != nil {
			errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "end must be an RFC 3339 timestamp")
			return
		}
		sales, err = storage.Get().ListSalesInRange(start, end)
	} else {
		sales, err = storage.Get().ListSales()
	}
	if err != nil {
		storeError(c, err, "SALE_NOT_FOUND", "Sale not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sales,
	})
}

// CreateSale handles POST /api/v1/sales
func CreateSale(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	if req.Amount.IsNegative() {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount must not be negative")
		return
	}

	draft := models.Sale{
		OrderID:       req.OrderID,
		Amount:        *req.Amount,
		PaymentMethod: req.PaymentMethod,
	}
	if req.Discount != nil {
		draft.Discount = *req.Discount
	}
	if req.Date != nil {
		draft.Date = *req.Date
	}

	sale, err := storage.Get().CreateSale(draft)
	if err != nil {
		storeError(c, err, "SALE_NOT_FOUND", "Sale not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    sale,
	})
}
