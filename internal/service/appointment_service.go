package service

import (
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"servana/internal/domain"
	"servana/internal/models"
	"servana/internal/repository"
	"servana/pkg/interval"
)

var (
	ErrInvalidRange     = errors.New("appointment start must be before end")
	ErrScheduleNotFound = errors.New("schedule not found for this provider")
	ErrScheduleInactive = errors.New("schedule is not active")
	ErrOutsideWindow    = errors.New("appointment is outside the schedule window")
	ErrSlotUnavailable  = errors.New("slot is not available")
	ErrNoSchedules      = errors.New("provider has no schedules")
)

// admission retry bounds for transient lock conflicts
const (
	admitAttempts = 3
	admitBackoff  = 50 * time.Millisecond
)

// AppointmentService admits bookings against provider schedule windows.
// The overlap check and the insert run in one transaction holding a row
// lock on the schedule, so two concurrent requests for the same slot
// cannot both pass.
type AppointmentService struct {
	appointmentRepo *repository.AppointmentRepository
	scheduleRepo    *repository.ScheduleRepository
}

func NewAppointmentService(
	appointmentRepo *repository.AppointmentRepository,
	scheduleRepo *repository.ScheduleRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
	}
}

func (s *AppointmentService) Create(providerID, userID, scheduleID uint, start, end time.Time) (*models.Appointment, error) {
	if !start.Before(end) {
		return nil, ErrInvalidRange
	}

	var appt *models.Appointment
	var err error
	for attempt := 0; attempt < admitAttempts; attempt++ {
		appt, err = s.admit(providerID, userID, scheduleID, start, end)
		if !isLockConflict(err) {
			return appt, err
		}
		time.Sleep(admitBackoff * time.Duration(attempt+1))
	}
	return appt, err
}

func (s *AppointmentService) admit(providerID, userID, scheduleID uint, start, end time.Time) (*models.Appointment, error) {
	var appt *models.Appointment
	err := s.appointmentRepo.DB().Transaction(func(tx *gorm.DB) error {
		schedule, err := s.scheduleRepo.GetForProviderLocked(tx, providerID, scheduleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}
		if schedule.Status != domain.ScheduleStatusActive {
			return ErrScheduleInactive
		}

		inside, err := interval.WithinWindow(start, end, schedule.StartTime, schedule.EndTime)
		if err != nil {
			return err
		}
		if !inside {
			return ErrOutsideWindow
		}

		existing, err := s.appointmentRepo.ListForSlotTx(tx, providerID, scheduleID)
		if err != nil {
			return err
		}
		for _, e := range existing {
			if interval.Overlaps(start, end, e.StartTime, e.EndTime) {
				return ErrSlotUnavailable
			}
		}

		appt = &models.Appointment{
			ProviderID: providerID,
			ScheduleID: scheduleID,
			UserID:     userID,
			StartTime:  start,
			EndTime:    end,
		}
		return s.appointmentRepo.CreateTx(tx, appt)
	})
	if err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *AppointmentService) FindByProvider(providerID uint) ([]models.Appointment, error) {
	return s.appointmentRepo.ListByProvider(providerID)
}

func (s *AppointmentService) SchedulesByProvider(providerID uint) ([]models.Schedule, error) {
	schedules, err := s.scheduleRepo.ListByProvider(providerID)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, ErrNoSchedules
	}
	return schedules, nil
}

// isLockConflict reports whether the error is a MySQL deadlock (1213) or
// lock wait timeout (1205), both safe to retry.
func isLockConflict(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1213 || myErr.Number == 1205
	}
	return false
}
