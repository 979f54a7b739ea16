package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commission is the platform/provider split of one completed service order.
// Exactly one row per order. Immutable after creation except for the
// PaidOut/PaidOutAt/PayoutID triple, which payout settlement flips together
// exactly once.
type Commission struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrderID        uint            `gorm:"uniqueIndex;not null" json:"order_id"`
	ProviderID     uint            `gorm:"not null;index" json:"provider_id"`
	ServiceID      uint            `gorm:"not null" json:"service_id"`
	Percentage     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentage"`
	PlatformAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"platform_amount"`
	ProviderAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"provider_amount"`
	PaidOut        bool            `gorm:"not null;default:false;index" json:"paid_out"`
	PaidOutAt      *time.Time      `json:"paid_out_at"`
	PayoutID       *uint           `gorm:"index" json:"payout_id"`
	CreatedAt      time.Time       `json:"created_at"`

	Order    ServiceOrder    `gorm:"foreignKey:OrderID" json:"-"`
	Provider Provider        `gorm:"foreignKey:ProviderID" json:"-"`
	Service  Service         `gorm:"foreignKey:ServiceID" json:"-"`
	Payout   *ProviderPayout `gorm:"foreignKey:PayoutID" json:"-"`
}

func (Commission) TableName() string {
	return "commissions"
}
