package models

import "time"

// Appointment is a booked interval against one of the provider's schedule
// windows. Appointments are append-only: there is no update or delete path,
// the row is the audit record of the booking.
type Appointment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProviderID uint      `gorm:"not null;index:idx_appointments_slot" json:"provider_id"`
	ScheduleID uint      `gorm:"not null;index:idx_appointments_slot" json:"schedule_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	StartTime  time.Time `gorm:"not null" json:"start_time"`
	EndTime    time.Time `gorm:"not null" json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`

	Provider Provider `gorm:"foreignKey:ProviderID" json:"-"`
	Schedule Schedule `gorm:"foreignKey:ScheduleID" json:"-"`
	User     User     `gorm:"foreignKey:UserID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}
