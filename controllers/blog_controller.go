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

type BlogController struct {
	Blogs *services.BlogService
}

func NewBlogController(blogs *services.BlogService) *BlogController {
	return &BlogController{Blogs: blogs}
}

func (bc *BlogController) list(c *gin.Context, publishedOnly bool) {
	opts := services.BlogListOptions{
		Page:          parseIntQuery(c, "page"),
		Limit:         parseIntQuery(c, "limit"),
		Status:        strings.TrimSpace(c.Query("status")),
		PublishedOnly: publishedOnly,
	}

	blogs, total, err := bc.Blogs.List(opts)
	if err != nil {
		log.Printf("blog list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	page, limit := services.ClampPagination(opts.Page, opts.Limit)
	utils.JSONList(c, http.StatusOK, blogs, utils.NewPagination(page, limit, total))
}

// List handles GET /api/admin/blogs (drafts included, optional ?status=).
func (bc *BlogController) List(c *gin.Context) {
	bc.list(c, false)
}

// PublicList handles GET /api/blogs (published posts only).
func (bc *BlogController) PublicList(c *gin.Context) {
	bc.list(c, true)
}

func (bc *BlogController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	blog, err := bc.Blogs.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "blog post not found")
			return
		}
		log.Printf("blog get failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, blog)
}

// PublicGetBySlug handles GET /api/blogs/:slug; drafts 404.
func (bc *BlogController) PublicGetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	blog, err := bc.Blogs.GetBySlug(slug)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "blog post not found")
			return
		}
		log.Printf("blog get failed (slug=%s): %v", slug, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, blog)
}

func (bc *BlogController) Create(c *gin.Context) {
	var payload models.Blog
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		utils.JSONError(c, http.StatusBadRequest, "title is required")
		return
	}

	payload.ID = 0
	if err := bc.Blogs.Create(&payload); err != nil {
		log.Printf("blog create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, payload)
}

func (bc *BlogController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload models.Blog
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		utils.JSONError(c, http.StatusBadRequest, "title is required")
		return
	}

	blog, err := bc.Blogs.Update(id, payload)
	if err != nil {
		if isNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "blog post not found")
			return
		}
		log.Printf("blog update failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, blog)
}

func (bc *BlogController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := bc.Blogs.Delete(id)
	if err != nil {
		log.Printf("blog delete failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "blog post not found")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "blog post deleted"})
}
