package controllers

import (
	"log"
	"net/http"

	"spiderhome-backend/models"
	"spiderhome-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type siteSettingsPayload struct {
	CompanyName  string `json:"company_name"`
	Tagline      string `json:"tagline"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	FacebookURL  string `json:"facebook_url"`
	InstagramURL string `json:"instagram_url"`
	YoutubeURL   string `json:"youtube_url"`
}

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// Get returns the single settings row, or an empty record before first save.
func (sc *SettingsController) Get(c *gin.Context) {
	var setting models.SiteSetting
	if err := sc.DB.First(&setting).Error; err != nil {
		if isNotFound(err) {
			utils.JSONSuccess(c, http.StatusOK, models.SiteSetting{})
			return
		}
		log.Printf("settings get failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, setting)
}

// Update upserts the single settings row.
func (sc *SettingsController) Update(c *gin.Context) {
	var payload siteSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	var setting models.SiteSetting
	err := sc.DB.First(&setting).Error
	if err != nil && !isNotFound(err) {
		log.Printf("settings load failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	setting.CompanyName = payload.CompanyName
	setting.Tagline = payload.Tagline
	setting.Email = payload.Email
	setting.Phone = payload.Phone
	setting.Address = payload.Address
	setting.FacebookURL = payload.FacebookURL
	setting.InstagramURL = payload.InstagramURL
	setting.YoutubeURL = payload.YoutubeURL

	if err := sc.DB.Save(&setting).Error; err != nil {
		log.Printf("settings save failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, setting)
}
