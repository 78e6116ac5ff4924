package controllers

import (
	"log"
	"net/http"
	"strings"

	"spiderhome-backend/models"
	"spiderhome-backend/services"
	"spiderhome-backend/utils"

	"github.com/gin-gonic/gin"
)

type FeatureController struct {
	Features *services.FeatureService
}

func NewFeatureController(features *services.FeatureService) *FeatureController {
	return &FeatureController{Features: features}
}

func (fc *FeatureController) list(c *gin.Context, activeOnly bool) {
	opts := services.FeatureListOptions{
		Page:       parseIntQuery(c, "page"),
		Limit:      parseIntQuery(c, "limit"),
		ActiveOnly: activeOnly,
	}

	features, total, err := fc.Features.List(opts)
	if err != nil {
		log.Printf("feature list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	page, limit := services.ClampPagination(opts.Page, opts.Limit)
	utils.JSONList(c, http.StatusOK, features, utils.NewPagination(page, limit, total))
}

// List handles GET /api/admin/features.
func (fc *FeatureController) List(c *gin.Context) {
	fc.list(c, false)
}

// PublicList handles GET /api/features: active features in display order.
func (fc *FeatureController) PublicList(c *gin.Context) {
	fc.list(c, true)
}

func (fc *FeatureController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	feature, err := fc.Features.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "feature not found")
			return
		}
		log.Printf("feature get failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, feature)
}

func (fc *FeatureController) Create(c *gin.Context) {
	var payload models.Feature
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		utils.JSONError(c, http.StatusBadRequest, "title is required")
		return
	}

	payload.ID = 0
	if err := fc.Features.Create(&payload); err != nil {
		log.Printf("feature create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, payload)
}

func (fc *FeatureController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload models.Feature
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		utils.JSONError(c, http.StatusBadRequest, "title is required")
		return
	}

	feature, err := fc.Features.Update(id, payload)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "feature not found")
			return
		}
		log.Printf("feature update failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, feature)
}

func (fc *FeatureController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := fc.Features.Delete(id)
	if err != nil {
		log.Printf("feature delete failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "feature not found")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "feature deleted"})
}
