package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProviderPayout is one batch settlement of a provider's unpaid commissions.
// Payouts are never edited or deleted, only superseded by later payouts.
type ProviderPayout struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	ProviderID      uint            `gorm:"not null;index" json:"provider_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	CommissionCount int             `gorm:"not null" json:"commission_count"`
	Period          string          `gorm:"size:20;not null" json:"period"` // ISO date label
	Note            string          `gorm:"size:255" json:"note"`
	CreatedAt       time.Time       `json:"created_at"`

	Provider    Provider     `gorm:"foreignKey:ProviderID" json:"-"`
	Commissions []Commission `gorm:"foreignKey:PayoutID" json:"-"`
}

func (ProviderPayout) TableName() string {
	return "provider_payouts"
}
