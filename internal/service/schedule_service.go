package service

import (
	"errors"

	"servana/internal/domain"
	"servana/internal/models"
	"servana/internal/repository"
	"servana/pkg/interval"
)

var (
	ErrInvalidWindow = errors.New("window start must be before end")
	ErrInvalidDay    = errors.New("invalid weekday")
)

// ScheduleService manages provider availability windows.
type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
}

func NewScheduleService(scheduleRepo *repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo}
}

func (s *ScheduleService) Create(providerID uint, day, startTime, endTime string) (*models.Schedule, error) {
	if !domain.ValidWeekday(day) {
		return nil, ErrInvalidDay
	}
	start, err := interval.ParseClock(startTime)
	if err != nil {
		return nil, err
	}
	end, err := interval.ParseClock(endTime)
	if err != nil {
		return nil, err
	}
	if start >= end {
		return nil, ErrInvalidWindow
	}
	schedule := &models.Schedule{
		ProviderID: providerID,
		Day:        day,
		StartTime:  startTime,
		EndTime:    endTime,
		Status:     domain.ScheduleStatusActive,
	}
	if err := s.scheduleRepo.Create(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) List(providerID uint) ([]models.Schedule, error) {
	return s.scheduleRepo.ListByProvider(providerID)
}

func (s *ScheduleService) Deactivate(providerID, scheduleID uint) error {
	return s.scheduleRepo.UpdateStatus(providerID, scheduleID, domain.ScheduleStatusInactive)
}

func (s *ScheduleService) Activate(providerID, scheduleID uint) error {
	return s.scheduleRepo.UpdateStatus(providerID, scheduleID, domain.ScheduleStatusActive)
}
