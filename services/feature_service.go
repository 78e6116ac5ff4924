package services

import (
	"spiderhome-backend/models"

	"gorm.io/gorm"
)

type FeatureListOptions struct {
	Page       int
	Limit      int
	ActiveOnly bool
}

type FeatureService struct {
	DB *gorm.DB
}

func NewFeatureService(db *gorm.DB) *FeatureService {
	return &FeatureService{DB: db}
}

func (s *FeatureService) List(opts FeatureListOptions) ([]models.Feature, int64, error) {
	page, limit := ClampPagination(opts.Page, opts.Limit)

	query := s.DB.Model(&models.Feature{})
	if opts.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var features []models.Feature
	err := query.Order("order_index ASC, id ASC").Offset((page - 1) * limit).Limit(limit).Find(&features).Error
	return features, total, err
}

func (s *FeatureService) GetByID(id uint) (*models.Feature, error) {
	var feature models.Feature
	if err := s.DB.First(&feature, id).Error; err != nil {
		return nil, err
	}
	return &feature, nil
}

func (s *FeatureService) Create(feature *models.Feature) error {
	return s.DB.Create(feature).Error
}

func (s *FeatureService) Update(id uint, payload models.Feature) (*models.Feature, error) {
	feature, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	feature.Title = payload.Title
	feature.Description = payload.Description
	feature.Icon = payload.Icon
	feature.OrderIndex = payload.OrderIndex
	feature.IsActive = payload.IsActive

	if err := s.DB.Save(feature).Error; err != nil {
		return nil, err
	}
	return feature, nil
}

func (s *FeatureService) Delete(id uint) (bool, error) {
	result := s.DB.Delete(&models.Feature{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
