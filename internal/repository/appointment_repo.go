package repository

import (
	"gorm.io/gorm"

	"servana/internal/models"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// DB exposes the underlying handle so services can open transactions that
// span the overlap check and the insert.
func (r *AppointmentRepository) DB() *gorm.DB {
	return r.db
}

func (r *AppointmentRepository) CreateTx(tx *gorm.DB, a *models.Appointment) error {
	return tx.Create(a).Error
}

// ListForSlotTx returns every appointment booked under the given
// (provider, schedule) pair, for conflict checking inside a transaction.
func (r *AppointmentRepository) ListForSlotTx(tx *gorm.DB, providerID, scheduleID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	err := tx.Where("provider_id = ? AND schedule_id = ?", providerID, scheduleID).Find(&out).Error
	return out, err
}

func (r *AppointmentRepository) ListByProvider(providerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	err := r.db.Where("provider_id = ?", providerID).Find(&out).Error
	return out, err
}
