package services

import (
	"spiderhome-backend/models"
	"spiderhome-backend/utils"

	"gorm.io/gorm"
)

// ProductListOptions carries the filters accepted by the list endpoints.
// Nil pointer filters mean "don't filter".
type ProductListOptions struct {
	Page       int
	Limit      int
	Category   string
	Search     string
	IsNew      *bool
	Featured   *bool
	ActiveOnly bool
}

type ProductService struct {
	DB *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{DB: db}
}

// ResolveSlug returns a slug guaranteed unique among products, starting from
// the payload slug (or one derived from the title) and suffixing -1, -2, …
// on collision. excludeID skips the record's own row on update.
func (s *ProductService) ResolveSlug(payloadSlug, title string, excludeID uint) (string, error) {
	base := payloadSlug
	if base == "" {
		base = utils.Slugify(title)
	}
	return resolveUniqueSlug(s.DB, &models.Product{}, base, excludeID)
}

func (s *ProductService) List(opts ProductListOptions) ([]models.Product, int64, error) {
	page, limit := ClampPagination(opts.Page, opts.Limit)

	query := s.DB.Model(&models.Product{})
	if opts.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	}
	if opts.Search != "" {
		query = query.Where("title LIKE ?", "%"+opts.Search+"%")
	}
	if opts.IsNew != nil {
		query = query.Where("is_new = ?", *opts.IsNew)
	}
	if opts.Featured != nil {
		query = query.Where("featured = ?", *opts.Featured)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := query.Order("id DESC").Offset((page - 1) * limit).Limit(limit).Find(&products).Error
	return products, total, err
}

func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.DB.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetBySlug serves the public product page; only active products resolve.
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := s.DB.Where("slug = ? AND is_active = ?", slug, true).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Create(payload models.ProductPayload) (*models.Product, error) {
	slug, err := s.ResolveSlug(payload.Slug, payload.Title, 0)
	if err != nil {
		return nil, err
	}

	var product models.Product
	payload.Apply(&product)
	product.Slug = slug

	if err := s.DB.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Update is a full-row replace, not a partial patch; the slug is re-resolved
// excluding the record itself.
func (s *ProductService) Update(id uint, payload models.ProductPayload) (*models.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	slug, err := s.ResolveSlug(payload.Slug, payload.Title, id)
	if err != nil {
		return nil, err
	}

	payload.Apply(product)
	product.Slug = slug

	if err := s.DB.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product by id; the bool reports whether a row existed.
func (s *ProductService) Delete(id uint) (bool, error) {
	result := s.DB.Delete(&models.Product{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
