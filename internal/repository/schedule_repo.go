package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"servana/internal/models"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(s *models.Schedule) error {
	return r.db.Create(s).Error
}

// GetForProvider looks up a schedule by id and owning provider jointly.
// A schedule that exists but belongs to another provider is reported as
// gorm.ErrRecordNotFound, same as a missing one.
func (r *ScheduleRepository) GetForProvider(providerID, scheduleID uint) (*models.Schedule, error) {
	return getScheduleForProvider(r.db, providerID, scheduleID)
}

// GetForProviderLocked is GetForProvider with a FOR UPDATE row lock; call it
// inside a transaction to serialize concurrent bookings on the same window.
func (r *ScheduleRepository) GetForProviderLocked(tx *gorm.DB, providerID, scheduleID uint) (*models.Schedule, error) {
	return getScheduleForProvider(lockForUpdate(tx), providerID, scheduleID)
}

func getScheduleForProvider(tx *gorm.DB, providerID, scheduleID uint) (*models.Schedule, error) {
	var s models.Schedule
	err := tx.Where("id = ? AND provider_id = ?", scheduleID, providerID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleRepository) ListByProvider(providerID uint) ([]models.Schedule, error) {
	var out []models.Schedule
	err := r.db.Where("provider_id = ?", providerID).Find(&out).Error
	return out, err
}

func (r *ScheduleRepository) UpdateStatus(providerID, scheduleID uint, status string) error {
	res := r.db.Model(&models.Schedule{}).
		Where("id = ? AND provider_id = ?", scheduleID, providerID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// lockForUpdate adds a FOR UPDATE clause on dialects that support it.
// SQLite (used by the test suite) serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
