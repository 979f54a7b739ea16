package repository

import (
	"servana/internal/domain"
	"servana/internal/models"

	"gorm.io/gorm"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) Create(p *models.Provider) error {
	return r.db.Create(p).Error
}

func (r *ProviderRepository) GetByID(id uint) (*models.Provider, error) {
	var p models.Provider
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderRepository) GetByEmail(email string) (*models.Provider, error) {
	var p models.Provider
	err := r.db.Where("email = ?", email).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderRepository) List() ([]models.Provider, error) {
	var out []models.Provider
	err := r.db.Find(&out).Error
	return out, err
}

// Approve activates a pending provider.
func (r *ProviderRepository) Approve(id uint) (*models.Provider, error) {
	p, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	p.Status = domain.ProviderStatusActive
	if err := r.db.Model(p).Update("status", p.Status).Error; err != nil {
		return nil, err
	}
	return p, nil
}
