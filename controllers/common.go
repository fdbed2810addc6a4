package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pauloferraz/braseiro-api/storage"
)

// errorResponse writes the standard error envelope
func errorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// validationError writes a 400 with the binding failure details
func validationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"details": err.Error(),
		},
	})
}

// parseID extracts the numeric :id path parameter. On failure it writes a
// 400 response and returns false.
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		errorResponse(c, http.StatusBadRequest, "INVALID_ID", "ID must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// storeError maps store failures onto HTTP responses: ErrNotFound to 404,
// ErrDuplicate to 409, anything else to 500.
func storeError(c *gin.Context, err error, notFoundCode, notFoundMessage string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		errorResponse(c, http.StatusNotFound, notFoundCode, notFoundMessage)
	case errors.Is(err, storage.ErrDuplicate):
		errorResponse(c, http.StatusConflict, "DUPLICATE", "A record with the same unique value already exists")
	default:
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Unexpected storage failure")
	}
}
