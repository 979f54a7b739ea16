package repository

import (
	"servana/internal/models"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(s *models.Service) error {
	return r.db.Create(s).Error
}

func (r *ServiceRepository) GetByID(id uint) (*models.Service, error) {
	var s models.Service
	err := r.db.First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) ListByProvider(providerID uint) ([]models.Service, error) {
	var out []models.Service
	err := r.db.Where("provider_id = ?", providerID).Find(&out).Error
	return out, err
}
