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

type SlideController struct {
	Slides *services.SlideService
}

func NewSlideController(slides *services.SlideService) *SlideController {
	return &SlideController{Slides: slides}
}

func (sc *SlideController) list(c *gin.Context, activeOnly bool) {
	opts := services.SlideListOptions{
		Page:       parseIntQuery(c, "page"),
		Limit:      parseIntQuery(c, "limit"),
		ActiveOnly: activeOnly,
	}

	slides, total, err := sc.Slides.List(opts)
	if err != nil {
		log.Printf("slide list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	page, limit := services.ClampPagination(opts.Page, opts.Limit)
	utils.JSONList(c, http.StatusOK, slides, utils.NewPagination(page, limit, total))
}

// List handles GET /api/admin/slides.
func (sc *SlideController) List(c *gin.Context) {
	sc.list(c, false)
}

// PublicList handles GET /api/slides: active slides in display order.
func (sc *SlideController) PublicList(c *gin.Context) {
	sc.list(c, true)
}

func (sc *SlideController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	slide, err := sc.Slides.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "slide not found")
			return
		}
		log.Printf("slide get failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, slide)
}

func (sc *SlideController) Create(c *gin.Context) {
	var payload models.Slide
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		utils.JSONError(c, http.StatusBadRequest, "title is required")
		return
	}

	payload.ID = 0
	if err := sc.Slides.Create(&payload); err != nil {
		log.Printf("slide create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, payload)
}

func (sc *SlideController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload models.Slide
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		utils.JSONError(c, http.StatusBadRequest, "title is required")
		return
	}

	slide, err := sc.Slides.Update(id, payload)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "slide not found")
			return
		}
		log.Printf("slide update failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, slide)
}

func (sc *SlideController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := sc.Slides.Delete(id)
	if err != nil {
		log.Printf("slide delete failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "slide not found")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "slide deleted"})
}
