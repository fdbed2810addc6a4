package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pauloferraz/braseiro-api/models"
	"github.com/pauloferraz/braseiro-api/services"
	"github.com/pauloferraz/braseiro-api/storage"
)

// CreateMenuItemRequest represents the request body for creating a menu item
type CreateMenuItemRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description *string          `json:"description" binding:"omitempty"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Available   *bool            `json:"available" binding:"omitempty"`
	Image       *string          `json:"image" binding:"omitempty"`
}

// ListMenuItems handles GET /api/v1/menu
func ListMenuItems(c *gin.Context) {
	items, err := storage.Get().ListMenuItems()
	if err != nil {
		storeError(c, err, "MENU_ITEM_NOT_FOUND", "Menu item not found")
		return
	}

	attachImageURLs(c, items)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
	})
}

// GetMenuItem handles GET /api/v1/menu/:id
func GetMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := storage.Get().GetMenuItem(id)
	if err != nil {
		storeError(c, err, "MENU_ITEM_NOT_FOUND", "Menu item not found")
		return
	}

	attachImageURL(c, item)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// CreateMenuItem handles POST /api/v1/menu
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	if req.Price.IsNegative() {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Price must not be negative")
		return
	}

	draft := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Available:   true,
		Image:       req.Image,
	}
	if req.Available != nil {
		draft.Available = *req.Available
	}

	item, err := storage.Get().CreateMenuItem(draft)
	if err != nil {
		storeError(c, err, "MENU_ITEM_NOT_FOUND", "Menu item not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    item,
	})
}

// UpdateMenuItem handles PUT /api/v1/menu/:id
func UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, err)
		return
	}

	if patch.Price != nil && patch.Price.IsNegative() {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Price must not be negative")
		return
	}

	item, err := storage.Get().UpdateMenuItem(id, patch)
	if err != nil {
		storeError(c, err, "MENU_ITEM_NOT_FOUND", "Menu item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// DeleteMenuItem handles DELETE /api/v1/menu/:id
func DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existed, err := storage.Get().DeleteMenuItem(id)
	if err != nil {
		storeError(c, err, "MENU_ITEM_NOT_FOUND", "Menu item not found")
		return
	}
	if !existed {
		errorResponse(c, http.StatusNotFound, "MENU_ITEM_NOT_FOUND", "Menu item not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// attachImageURL fills the computed ImageURL field from the photo key
func attachImageURL(c *gin.Context, item *models.MenuItem) {
	imageService := services.GetImageService()
	if imageService == nil || item.Image == nil {
		return
	}

	url, err := imageService.GetImageURL(c.Request.Context(), *item.Image)
	if err != nil {
		// A broken photo link should not fail the menu response
		log.Printf("warning: failed to resolve image URL for menu item %d: %v", item.ID, err)
		return
	}
	if url != "" {
		item.ImageURL = &url
	}
}

func attachImageURLs(c *gin.Context, items []models.MenuItem) {
	for i := range items {
		attachImageURL(c, &items[i])
	}
}
