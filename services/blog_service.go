package services

import (
	"time"

	"spiderhome-backend/models"
	"spiderhome-backend/utils"

	"gorm.io/gorm"
)

type BlogListOptions struct {
	Page          int
	Limit         int
	Status        string
	PublishedOnly bool
}

type BlogService struct {
	DB *gorm.DB
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{DB: db}
}

func (s *BlogService) List(opts BlogListOptions) ([]models.Blog, int64, error) {
	page, limit := ClampPagination(opts.Page, opts.Limit)

	query := s.DB.Model(&models.Blog{})
	if opts.PublishedOnly {
		query = query.Where("status = ?", models.BlogStatusPublished)
	} else if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var blogs []models.Blog
	err := query.Order("id DESC").Offset((page - 1) * limit).Limit(limit).Find(&blogs).Error
	return blogs, total, err
}

func (s *BlogService) GetByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := s.DB.First(&blog, id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// GetBySlug serves the public article page; only published posts resolve.
func (s *BlogService) GetBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	if err := s.DB.Where("slug = ? AND status = ?", slug, models.BlogStatusPublished).First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *BlogService) Create(blog *models.Blog) error {
	if blog.Status == "" {
		blog.Status = models.BlogStatusDraft
	}

	base := blog.Slug
	if base == "" {
		base = utils.Slugify(blog.Title)
	}
	slug, err := resolveUniqueSlug(s.DB, &models.Blog{}, base, 0)
	if err != nil {
		return err
	}
	blog.Slug = slug

	s.stampPublishedAt(blog)
	return s.DB.Create(blog).Error
}

func (s *BlogService) Update(id uint, payload models.Blog) (*models.Blog, error) {
	blog, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	base := payload.Slug
	if base == "" {
		base = utils.Slugify(payload.Title)
	}
	slug, err := resolveUniqueSlug(s.DB, &models.Blog{}, base, id)
	if err != nil {
		return nil, err
	}

	blog.Title = payload.Title
	blog.Slug = slug
	blog.Excerpt = payload.Excerpt
	blog.Content = payload.Content
	blog.ImageURL = payload.ImageURL
	blog.Author = payload.Author
	// Full-row replace: an omitted status falls back to draft, same as Create.
	blog.Status = payload.Status
	if blog.Status == "" {
		blog.Status = models.BlogStatusDraft
	}
	s.stampPublishedAt(blog)

	if err := s.DB.Save(blog).Error; err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) Delete(id uint) (bool, error) {
	result := s.DB.Delete(&models.Blog{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// stampPublishedAt records the first transition to published.
func (s *BlogService) stampPublishedAt(blog *models.Blog) {
	if blog.Status == models.BlogStatusPublished && blog.PublishedAt == nil {
		now := time.Now()
		blog.PublishedAt = &now
	}
}
