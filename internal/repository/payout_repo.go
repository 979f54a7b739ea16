package repository

import (
	"gorm.io/gorm"

	"servana/internal/models"
)

type PayoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

// DB exposes the underlying handle for the settlement transaction.
func (r *PayoutRepository) DB() *gorm.DB {
	return r.db
}

func (r *PayoutRepository) CreateTx(tx *gorm.DB, p *models.ProviderPayout) error {
	return tx.Create(p).Error
}

func (r *PayoutRepository) GetByID(id uint) (*models.ProviderPayout, error) {
	var p models.ProviderPayout
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PayoutRepository) ListByProvider(providerID uint) ([]models.ProviderPayout, error) {
	var out []models.ProviderPayout
	err := r.db.Where("provider_id = ?", providerID).Order("created_at DESC").Find(&out).Error
	return out, err
}
