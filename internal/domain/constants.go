package domain

const (
	RoleUser     = "USER"
	RoleProvider = "PROVIDER"
	RoleAdmin    = "ADMIN"
)

const (
	ProviderStatusPending   = "PENDING"
	ProviderStatusActive    = "ACTIVE"
	ProviderStatusSuspended = "SUSPENDED"
)

const (
	ScheduleStatusActive   = "ACTIVE"
	ScheduleStatusInactive = "INACTIVE"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusAccepted  = "accepted"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const (
	ReportPeriodWeekly  = "weekly"
	ReportPeriodMonthly = "monthly"
)

// Weekdays in schedule storage order. Schedules reference days by these
// three-letter names.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func ValidWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
