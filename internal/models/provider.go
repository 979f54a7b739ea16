package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Provider struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:120;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Status       string `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	// Per-provider commission override; the platform default applies when null.
	CommissionPercentage decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"commission_percentage"`
	RegistrationDate     time.Time           `json:"registration_date"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
	DeletedAt            gorm.DeletedAt      `gorm:"index" json:"-"`
}

func (Provider) TableName() string {
	return "providers"
}
