package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servana/internal/models"
)

// monday returns a timestamp on a Monday at the given wall-clock time.
func monday(hour, min int) time.Time {
	return time.Date(2025, 3, 3, hour, min, 0, 0, time.UTC)
}

func seedWindow(t *testing.T, env *testEnv, providerID uint) *models.Schedule {
	t.Helper()
	schedule, err := env.scheduleSvc.Create(providerID, "Mon", "08:00", "16:00")
	require.NoError(t, err)
	return schedule
}

func TestCreateAppointment(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	schedule := seedWindow(t, env, provider.ID)

	appt, err := env.appointmentSvc.Create(provider.ID, user.ID, schedule.ID, monday(9, 0), monday(10, 0))
	require.NoError(t, err)
	assert.NotZero(t, appt.ID)

	// overlapping request on the same window is refused
	_, err = env.appointmentSvc.Create(provider.ID, user.ID, schedule.ID, monday(9, 30), monday(9, 45))
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// back-to-back booking is fine
	_, err = env.appointmentSvc.Create(provider.ID, user.ID, schedule.ID, monday(10, 0), monday(11, 0))
	assert.NoError(t, err)
}

func TestCreateAppointmentOutsideWindow(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	schedule := seedWindow(t, env, provider.ID)

	_, err := env.appointmentSvc.Create(provider.ID, user.ID, schedule.ID, monday(7, 0), monday(8, 30))
	assert.ErrorIs(t, err, ErrOutsideWindow)

	// window closes at 16:00, minute precision applies
	_, err = env.appointmentSvc.Create(provider.ID, user.ID, schedule.ID, monday(15, 50), monday(16, 5))
	assert.ErrorIs(t, err, ErrOutsideWindow)
}

func TestCreateAppointmentInvalidRange(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	schedule := seedWindow(t, env, provider.ID)

	_, err := env.appointmentSvc.Create(provider.ID, user.ID, schedule.ID, monday(10, 0), monday(9, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = env.appointmentSvc.Create(provider.ID, user.ID, schedule.ID, monday(10, 0), monday(10, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCreateAppointmentScheduleOwnership(t *testing.T) {
	env := newTestEnv(t)
	ana := env.seedProvider(t, "ana")
	eve := env.seedProvider(t, "eve")
	user := env.seedUser(t, "bob")
	anasWindow := seedWindow(t, env, ana.ID)

	// another provider's schedule id is indistinguishable from a missing one
	_, err := env.appointmentSvc.Create(eve.ID, user.ID, anasWindow.ID, monday(9, 0), monday(10, 0))
	assert.ErrorIs(t, err, ErrScheduleNotFound)

	_, err = env.appointmentSvc.Create(ana.ID, user.ID, 9999, monday(9, 0), monday(10, 0))
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestCreateAppointmentInactiveSchedule(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	schedule := seedWindow(t, env, provider.ID)

	require.NoError(t, env.scheduleSvc.Deactivate(provider.ID, schedule.ID))
	_, err := env.appointmentSvc.Create(provider.ID, user.ID, schedule.ID, monday(9, 0), monday(10, 0))
	assert.ErrorIs(t, err, ErrScheduleInactive)

	require.NoError(t, env.scheduleSvc.Activate(provider.ID, schedule.ID))
	_, err = env.appointmentSvc.Create(provider.ID, user.ID, schedule.ID, monday(9, 0), monday(10, 0))
	assert.NoError(t, err)
}

func TestIdenticalSlotBookedOnce(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	other := env.seedUser(t, "cat")
	schedule := seedWindow(t, env, provider.ID)

	// two requests for the identical interval: exactly one wins, the
	// admission transaction serializes them
	_, err := env.appointmentSvc.Create(provider.ID, user.ID, schedule.ID, monday(11, 0), monday(12, 0))
	require.NoError(t, err)
	_, err = env.appointmentSvc.Create(provider.ID, other.ID, schedule.ID, monday(11, 0), monday(12, 0))
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	appointments, err := env.appointmentSvc.FindByProvider(provider.ID)
	require.NoError(t, err)
	assert.Len(t, appointments, 1)
}

func TestSchedulesByProvider(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	empty := env.seedProvider(t, "eve")
	seedWindow(t, env, provider.ID)

	schedules, err := env.appointmentSvc.SchedulesByProvider(provider.ID)
	require.NoError(t, err)
	assert.Len(t, schedules, 1)

	_, err = env.appointmentSvc.SchedulesByProvider(empty.ID)
	assert.ErrorIs(t, err, ErrNoSchedules)
}

func TestScheduleCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")

	_, err := env.scheduleSvc.Create(provider.ID, "Funday", "08:00", "16:00")
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = env.scheduleSvc.Create(provider.ID, "Mon", "16:00", "08:00")
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = env.scheduleSvc.Create(provider.ID, "Mon", "09:00", "09:00")
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
