package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pauloferraz/braseiro-api/models"
	"github.com/pauloferraz/braseiro-api/services"
	"github.com/pauloferraz/braseiro-api/storage"
	"github.com/pauloferraz/braseiro-api/utils"
)

// UploadMenuItemImage handles POST /api/v1/menu/:id/image - uploads a PNG
// photo for a menu item, replacing any previous one
func UploadMenuItemImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := storage.Get().GetMenuItem(id)
	if err != nil {
		storeError(c, err, "MENU_ITEM_NOT_FOUND", "Menu item not found")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "MISSING_FILE", "An image file is required in the 'image' form field")
		return
	}

	imageService := services.GetImageService()
	if imageService == nil {
		errorResponse(c, http.StatusInternalServerError, "UPLOAD_UNAVAILABLE", "Image storage is not configured")
		return
	}

	key, err := imageService.UploadImage(c.Request.Context(), fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			errorResponse(c, http.StatusBadRequest, uploadErr.Code, uploadErr.Message)
			return
		}
		errorResponse(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to upload image")
		return
	}

	oldKey := item.Image

	updated, err := storage.Get().UpdateMenuItem(id, models.MenuItemPatch{Image: &key})
	if err != nil {
		storeError(c, err, "MENU_ITEM_NOT_FOUND", "Menu item not found")
		return
	}

	// Best effort: the new photo is already live, a stale old object only
	// wastes bucket space
	if oldKey != nil && *oldKey != key {
		_ = imageService.DeleteImage(c.Request.Context(), *oldKey)
	}

	attachImageURL(c, updated)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}
