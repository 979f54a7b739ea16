package repository

import (
	"time"

	"gorm.io/gorm"

	"servana/internal/models"
)

type CommissionRepository struct {
	db *gorm.DB
}

func NewCommissionRepository(db *gorm.DB) *CommissionRepository {
	return &CommissionRepository{db: db}
}

func (r *CommissionRepository) Create(c *models.Commission) error {
	return r.db.Create(c).Error
}

func (r *CommissionRepository) GetByID(id uint) (*models.Commission, error) {
	var c models.Commission
	err := r.db.Preload("Order").Preload("Service").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommissionRepository) FindByOrder(orderID uint) (*models.Commission, error) {
	var c models.Commission
	err := r.db.Where("order_id = ?", orderID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommissionRepository) ListAll() ([]models.Commission, error) {
	var out []models.Commission
	err := r.db.Find(&out).Error
	return out, err
}

func (r *CommissionRepository) Remove(id uint) error {
	res := r.db.Delete(&models.Commission{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByProviderPaid returns the provider's commissions filtered by payout
// state, with the order and service rows the balance breakdown needs.
func (r *CommissionRepository) ListByProviderPaid(providerID uint, paidOut bool) ([]models.Commission, error) {
	var out []models.Commission
	err := r.db.Preload("Order").Preload("Service").
		Where("provider_id = ? AND paid_out = ?", providerID, paidOut).
		Find(&out).Error
	return out, err
}

// ListUnpaidLockedTx loads the provider's unpaid commissions under a FOR
// UPDATE lock so a concurrent settlement cannot claim the same rows.
func (r *CommissionRepository) ListUnpaidLockedTx(tx *gorm.DB, providerID uint) ([]models.Commission, error) {
	var out []models.Commission
	err := lockForUpdate(tx).
		Where("provider_id = ? AND paid_out = ?", providerID, false).
		Find(&out).Error
	return out, err
}

// MarkPaidTx claims every still-unpaid commission of the provider for the
// payout in one statement and returns how many rows it claimed.
func (r *CommissionRepository) MarkPaidTx(tx *gorm.DB, providerID, payoutID uint, at time.Time) (int64, error) {
	res := tx.Model(&models.Commission{}).
		Where("provider_id = ? AND paid_out = ?", providerID, false).
		Updates(map[string]interface{}{
			"paid_out":    true,
			"paid_out_at": at,
			"payout_id":   payoutID,
		})
	return res.RowsAffected, res.Error
}

// ListPaidInRange returns paid-out commissions created inside [from, to],
// used by period reports.
func (r *CommissionRepository) ListPaidInRange(providerID uint, from, to time.Time) ([]models.Commission, error) {
	var out []models.Commission
	err := r.db.Preload("Order").Preload("Service").
		Where("provider_id = ? AND paid_out = ? AND created_at BETWEEN ? AND ?", providerID, true, from, to).
		Find(&out).Error
	return out, err
}

func (r *CommissionRepository) ListByPayout(payoutID uint) ([]models.Commission, error) {
	var out []models.Commission
	err := r.db.Preload("Order").Preload("Service").
		Where("payout_id = ?", payoutID).
		Find(&out).Error
	return out, err
}
