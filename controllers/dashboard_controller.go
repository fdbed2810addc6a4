package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pauloferraz/braseiro-api/services"
	"github.com/pauloferraz/braseiro-api/storage"
)

// GetDashboardStats handles GET /api/v1/dashboard/stats - the operational
// summary: today's revenue, active orders, table and staff occupancy, and
// the number of low-stock inventory items.
func GetDashboardStats(c *gin.Context) {
	stats, err := services.LoadDashboardStats(storage.Get())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to compute dashboard stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
