package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ServiceOrder struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Reference  string          `gorm:"size:64;uniqueIndex;not null" json:"reference"`
	ProviderID uint            `gorm:"not null;index" json:"provider_id"`
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	ServiceID  uint            `gorm:"not null;index" json:"service_id"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Status     string          `gorm:"size:20;not null;index;default:'pending'" json:"status"` // pending | accepted | completed | cancelled
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	Provider Provider `gorm:"foreignKey:ProviderID" json:"-"`
	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Service  Service  `gorm:"foreignKey:ServiceID" json:"service"`
}

func (ServiceOrder) TableName() string {
	return "service_orders"
}
