package models

import (
	"time"

	"gorm.io/gorm"
)

// Schedule is a provider's recurring weekly availability window: a weekday
// plus opening and closing wall-clock times, stored as "HH:MM".
type Schedule struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	ProviderID uint           `gorm:"not null;index" json:"provider_id"`
	Day        string         `gorm:"size:10;not null" json:"day"` // Mon..Sun
	StartTime  string         `gorm:"size:5;not null" json:"start_time"`
	EndTime    string         `gorm:"size:5;not null" json:"end_time"`
	Status     string         `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Provider Provider `gorm:"foreignKey:ProviderID" json:"-"`
}

func (Schedule) TableName() string {
	return "schedules"
}
