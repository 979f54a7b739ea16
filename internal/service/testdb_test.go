package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"servana/config"
	"servana/internal/database"
	"servana/internal/domain"
	"servana/internal/models"
	"servana/internal/repository"
)

type testEnv struct {
	db             *gorm.DB
	appointmentSvc *AppointmentService
	scheduleSvc    *ScheduleService
	commissionSvc  *CommissionService
	orderSvc       *OrderService
	payoutSvc      *PayoutService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so every session sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	userRepo := repository.NewUserRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)

	commissionSvc := NewCommissionService(commissionRepo, providerRepo, &config.CommissionConfig{DefaultPercentage: 20})

	return &testEnv{
		db:             db,
		appointmentSvc: NewAppointmentService(appointmentRepo, scheduleRepo),
		scheduleSvc:    NewScheduleService(scheduleRepo),
		commissionSvc:  commissionSvc,
		orderSvc:       NewOrderService(orderRepo, providerRepo, userRepo, serviceRepo, commissionSvc),
		payoutSvc:      NewPayoutService(payoutRepo, commissionRepo),
	}
}

func (e *testEnv) seedProvider(t *testing.T, name string) *models.Provider {
	t.Helper()
	p := &models.Provider{
		Name:             name,
		Email:            name + "@example.com",
		PasswordHash:     "x",
		Status:           domain.ProviderStatusActive,
		RegistrationDate: time.Now(),
	}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

func (e *testEnv) seedUser(t *testing.T, name string) *models.User {
	t.Helper()
	u := &models.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		Role:         domain.RoleUser,
	}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) seedService(t *testing.T, providerID uint, name string, price string) *models.Service {
	t.Helper()
	s := &models.Service{
		ProviderID: providerID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Active:     true,
	}
	require.NoError(t, e.db.Create(s).Error)
	return s
}

// seedCompletedOrder places an order at the given price and finishes it,
// which records its commission.
func (e *testEnv) seedCompletedOrder(t *testing.T, providerID, userID, serviceID uint, price string) *models.ServiceOrder {
	t.Helper()
	order, err := e.orderSvc.Create(providerID, userID, serviceID, decimal.RequireFromString(price))
	require.NoError(t, err)
	order, err = e.orderSvc.Finish(order.ID)
	require.NoError(t, err)
	return order
}
