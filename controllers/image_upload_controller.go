package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghdehrl12345/foodLens/utils"
)

type uploadImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadImage stores a meal photo and returns the URL to reference from
// the Meal record.
func UploadImage(c *gin.Context) {
	var req uploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	url, err := utils.UploadMealImage(c.Request.Context(), req.ImageBase64)
	if err != nil {
		if errors.Is(err, utils.ErrImageStoreNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
