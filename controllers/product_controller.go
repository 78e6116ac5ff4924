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

type ProductController struct {
	Products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{Products: products}
}

func (pc *ProductController) listOptions(c *gin.Context, activeOnly bool) services.ProductListOptions {
	return services.ProductListOptions{
		Page:       parseIntQuery(c, "page"),
		Limit:      parseIntQuery(c, "limit"),
		Category:   strings.TrimSpace(c.Query("category")),
		Search:     strings.TrimSpace(c.Query("search")),
		IsNew:      parseBoolQuery(c, "is_new"),
		Featured:   parseBoolQuery(c, "featured"),
		ActiveOnly: activeOnly,
	}
}

func (pc *ProductController) list(c *gin.Context, activeOnly bool) {
	opts := pc.listOptions(c, activeOnly)
	products, total, err := pc.Products.List(opts)
	if err != nil {
		log.Printf("product list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	page, limit := services.ClampPagination(opts.Page, opts.Limit)
	utils.JSONList(c, http.StatusOK, models.NewProductViews(products), utils.NewPagination(page, limit, total))
}

// List handles GET /api/admin/products (drafts and inactive included).
func (pc *ProductController) List(c *gin.Context) {
	pc.list(c, false)
}

// PublicList handles GET /api/products (active products only).
func (pc *ProductController) PublicList(c *gin.Context) {
	pc.list(c, true)
}

// Get handles GET /api/admin/products/:id.
func (pc *ProductController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := pc.Products.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("product get failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, models.NewProductView(*product))
}

// PublicGetBySlug handles GET /api/products/:slug; inactive products 404.
func (pc *ProductController) PublicGetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	product, err := pc.Products.GetBySlug(slug)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("product get failed (slug=%s): %v", slug, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, models.NewProductView(*product))
}

// Create handles POST /api/admin/products.
func (pc *ProductController) Create(c *gin.Context) {
	var payload models.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		utils.JSONError(c, http.StatusBadRequest, "title is required")
		return
	}

	product, err := pc.Products.Create(payload)
	if err != nil {
		log.Printf("product create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, models.NewProductView(*product))
}

// Update handles PUT /api/admin/products/:id with full-row replace semantics.
func (pc *ProductController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload models.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		utils.JSONError(c, http.StatusBadRequest, "title is required")
		return
	}

	product, err := pc.Products.Update(id, payload)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("product update failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, models.NewProductView(*product))
}

// Delete handles DELETE /api/admin/products/:id; a missing row is a 404.
func (pc *ProductController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := pc.Products.Delete(id)
	if err != nil {
		log.Printf("product delete failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "product not found")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "product deleted"})
}
