package controllers

import (
	"log"
	"net/http"

	"spiderhome-backend/services"
	"spiderhome-backend/utils"

	"github.com/gin-gonic/gin"
)

type uploadPayload struct {
	Image  string `json:"image"`
	Subdir string `json:"subdir"`
}

// UploadImage handles POST /api/admin/upload: the admin UI sends a base64
// image and stores the returned relative path in the record's image_url.
func UploadImage(c *gin.Context) {
	var payload uploadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Image == "" {
		utils.JSONError(c, http.StatusBadRequest, "image is required")
		return
	}

	path, err := services.SaveBase64Image(payload.Image, payload.Subdir)
	if err != nil {
		log.Printf("image upload failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"path": path, "url": "/uploads/" + path})
}
