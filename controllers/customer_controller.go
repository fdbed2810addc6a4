package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pauloferraz/braseiro-api/models"
	"github.com/pauloferraz/braseiro-api/storage"
)

// CreateCustomerRequest represents the request body for creating a customer.
// Order and spend counters always start at zero.
type CreateCustomerRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty"`
	Address     *string `json:"address" binding:"omitempty"`
	Preferences *string `json:"preferences" binding:"omitempty"`
}

// ListCustomers handles GET /api/v1/customers
func ListCustomers(c *gin.Context) {
	customers, err := storage.Get().ListCustomers()
	if err != nil {
		storeError(c, err, "CUSTOMER_NOT_FOUND", "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customers,
	})
}

// CreateCustomer handles POST /api/v1/customers
func CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	draft := models.Customer{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Preferences: req.Preferences,
	}

	customer, err := storage.Get().CreateCustomer(draft)
	if err != nil {
		storeError(c, err, "CUSTOMER_NOT_FOUND", "Customer not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    customer,
	})
}

// UpdateCustomer handles PUT /api/v1/customers/:id
func UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, err)
		return
	}

	if patch.TotalSpent != nil && patch.TotalSpent.IsNegative() {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Total spent must not be negative")
		return
	}

	customer, err := storage.Get().UpdateCustomer(id, patch)
	if err != nil {
		storeError(c, err, "CUSTOMER_NOT_FOUND", "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customer,
	})
}

// DeleteCustomer handles DELETE /api/v1/customers/:id
func DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existed, err := storage.Get().DeleteCustomer(id)
	if err != nil {
		storeError(c, err, "CUSTOMER_NOT_FOUND", "Customer not found")
		return
	}
	if !existed {
		errorResponse(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found")
		return
	}

	c.Status(http.StatusNoContent)
}
