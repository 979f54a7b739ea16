package service

import (
	"errors"

	"github.com/shopspring/decimal"

	"servana/config"
	"servana/internal/models"
	"servana/internal/repository"
)

var ErrCommissionExists = errors.New("commission already exists for this order")

// CommissionService derives the platform/provider split for completed
// service orders.
type CommissionService struct {
	commissionRepo *repository.CommissionRepository
	providerRepo   *repository.ProviderRepository
	cfg            *config.CommissionConfig
}

func NewCommissionService(
	commissionRepo *repository.CommissionRepository,
	providerRepo *repository.ProviderRepository,
	cfg *config.CommissionConfig,
) *CommissionService {
	return &CommissionService{
		commissionRepo: commissionRepo,
		providerRepo:   providerRepo,
		cfg:            cfg,
	}
}

// Split divides price by percentage. The provider share is computed by
// subtraction, never rounded on its own, so the two halves always sum back
// to the price exactly.
func Split(price, percentage decimal.Decimal) (platform, provider decimal.Decimal) {
	platform = price.Mul(percentage).Div(decimal.NewFromInt(100)).Round(2)
	provider = price.Sub(platform)
	return platform, provider
}

// CreateForOrder records the commission for a completed order. One
// commission per order; a second call for the same order fails.
func (s *CommissionService) CreateForOrder(order *models.ServiceOrder) (*models.Commission, error) {
	if _, err := s.commissionRepo.FindByOrder(order.ID); err == nil {
		return nil, ErrCommissionExists
	}

	percentage := s.percentageFor(order.ProviderID)
	platform, provider := Split(order.Price, percentage)

	commission := &models.Commission{
		OrderID:        order.ID,
		ProviderID:     order.ProviderID,
		ServiceID:      order.ServiceID,
		Percentage:     percentage,
		PlatformAmount: platform,
		ProviderAmount: provider,
	}
	if err := s.commissionRepo.Create(commission); err != nil {
		return nil, err
	}
	return commission, nil
}

// percentageFor resolves the commission rate: per-provider override when
// set, platform default otherwise.
func (s *CommissionService) percentageFor(providerID uint) decimal.Decimal {
	p, err := s.providerRepo.GetByID(providerID)
	if err == nil && p.CommissionPercentage.Valid {
		return p.CommissionPercentage.Decimal
	}
	return decimal.NewFromFloat(s.cfg.DefaultPercentage)
}

func (s *CommissionService) FindByOrder(orderID uint) (*models.Commission, error) {
	return s.commissionRepo.FindByOrder(orderID)
}

func (s *CommissionService) FindAll() ([]models.Commission, error) {
	return s.commissionRepo.ListAll()
}

func (s *CommissionService) FindOne(id uint) (*models.Commission, error) {
	return s.commissionRepo.GetByID(id)
}

func (s *CommissionService) Remove(id uint) error {
	return s.commissionRepo.Remove(id)
}
