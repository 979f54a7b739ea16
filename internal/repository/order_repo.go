package repository

import (
	"gorm.io/gorm"

	"servana/internal/models"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(o *models.ServiceOrder) error {
	return r.db.Create(o).Error
}

func (r *OrderRepository) GetByID(id uint) (*models.ServiceOrder, error) {
	var o models.ServiceOrder
	err := r.db.Preload("Service").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListAll() ([]models.ServiceOrder, error) {
	var out []models.ServiceOrder
	err := r.db.Preload("Service").Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByProvider(providerID uint) ([]models.ServiceOrder, error) {
	var out []models.ServiceOrder
	err := r.db.Preload("Service").Where("provider_id = ?", providerID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByUser(userID uint) ([]models.ServiceOrder, error) {
	var out []models.ServiceOrder
	err := r.db.Preload("Service").Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) UpdateStatus(o *models.ServiceOrder, status string) error {
	o.Status = status
	return r.db.Model(o).Update("status", status).Error
}
