package services

import (
	"spiderhome-backend/models"

	"gorm.io/gorm"
)

type SlideListOptions struct {
	Page       int
	Limit      int
	ActiveOnly bool
}

type SlideService struct {
	DB *gorm.DB
}

func NewSlideService(db *gorm.DB) *SlideService {
	return &SlideService{DB: db}
}

func (s *SlideService) List(opts SlideListOptions) ([]models.Slide, int64, error) {
	page, limit := ClampPagination(opts.Page, opts.Limit)

	query := s.DB.Model(&models.Slide{})
	if opts.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var slides []models.Slide
	err := query.Order("order_index ASC, id ASC").Offset((page - 1) * limit).Limit(limit).Find(&slides).Error
	return slides, total, err
}

func (s *SlideService) GetByID(id uint) (*models.Slide, error) {
	var slide models.Slide
	if err := s.DB.First(&slide, id).Error; err != nil {
		return nil, err
	}
	return &slide, nil
}

func (s *SlideService) Create(slide *models.Slide) error {
	return s.DB.Create(slide).Error
}

func (s *SlideService) Update(id uint, payload models.Slide) (*models.Slide, error) {
	slide, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	slide.Title = payload.Title
	slide.Subtitle = payload.Subtitle
	slide.ImageURL = payload.ImageURL
	slide.LinkURL = payload.LinkURL
	slide.OrderIndex = payload.OrderIndex
	slide.IsActive = payload.IsActive

	if err := s.DB.Save(slide).Error; err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *SlideService) Delete(id uint) (bool, error) {
	result := s.DB.Delete(&models.Slide{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
