package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"servana/internal/domain"
	"servana/internal/models"
	"servana/internal/repository"
)

var (
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrAlreadyInStatus   = errors.New("order is already in that status")
	ErrInvalidTransition = errors.New("order status transition not allowed")
)

// orderTransitions maps each order status to the statuses it may move to.
// completed and cancelled are terminal: a cancelled order can never be
// finished (and so never earns a commission), and a completed one can
// never be cancelled.
var orderTransitions = map[string][]string{
	domain.OrderStatusPending:  {domain.OrderStatusAccepted, domain.OrderStatusCompleted, domain.OrderStatusCancelled},
	domain.OrderStatusAccepted: {domain.OrderStatusCompleted, domain.OrderStatusCancelled},
}

// OrderService owns the service-order lifecycle:
// pending -> accepted -> completed, or -> cancelled. The commission is
// recorded when the order completes, not when it is placed, so orders
// cancelled before completion never produce ledger rows.
type OrderService struct {
	orderRepo     *repository.OrderRepository
	providerRepo  *repository.ProviderRepository
	userRepo      *repository.UserRepository
	serviceRepo   *repository.ServiceRepository
	commissionSvc *CommissionService
}

func NewOrderService(
	orderRepo *repository.OrderRepository,
	providerRepo *repository.ProviderRepository,
	userRepo *repository.UserRepository,
	serviceRepo *repository.ServiceRepository,
	commissionSvc *CommissionService,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		providerRepo:  providerRepo,
		userRepo:      userRepo,
		serviceRepo:   serviceRepo,
		commissionSvc: commissionSvc,
	}
}

func (s *OrderService) Create(providerID, userID, serviceID uint, price decimal.Decimal) (*models.ServiceOrder, error) {
	if _, err := s.providerRepo.GetByID(providerID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	if _, err := s.serviceRepo.GetByID(serviceID); err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	order := &models.ServiceOrder{
		Reference:  uuid.New().String(),
		ProviderID: providerID,
		UserID:     userID,
		ServiceID:  serviceID,
		Price:      price,
		Status:     domain.OrderStatusPending,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) FindAll() ([]models.ServiceOrder, error) {
	return s.orderRepo.ListAll()
}

func (s *OrderService) FindOne(id uint) (*models.ServiceOrder, error) {
	return s.orderRepo.GetByID(id)
}

func (s *OrderService) FindByProvider(providerID uint) ([]models.ServiceOrder, error) {
	if _, err := s.providerRepo.GetByID(providerID); err != nil {
		return nil, err
	}
	return s.orderRepo.ListByProvider(providerID)
}

func (s *OrderService) FindByUser(userID uint) ([]models.ServiceOrder, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	return s.orderRepo.ListByUser(userID)
}

// Confirm moves a pending order to accepted.
func (s *OrderService) Confirm(id uint) (*models.ServiceOrder, error) {
	return s.transition(id, domain.OrderStatusAccepted)
}

// Cancel marks the order cancelled. No commission is ever created for a
// cancelled order.
func (s *OrderService) Cancel(id uint) (*models.ServiceOrder, error) {
	return s.transition(id, domain.OrderStatusCancelled)
}

// Finish completes the order and records its commission.
func (s *OrderService) Finish(id uint) (*models.ServiceOrder, error) {
	order, err := s.transition(id, domain.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}
	if _, err := s.commissionSvc.CreateForOrder(order); err != nil && !errors.Is(err, ErrCommissionExists) {
		log.Printf("[Order] commission for order %d failed: %v", order.ID, err)
		return nil, err
	}
	return order, nil
}

func (s *OrderService) transition(id uint, status string) (*models.ServiceOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return nil, ErrAlreadyInStatus
	}
	allowed := false
	for _, next := range orderTransitions[order.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidTransition
	}
	if err := s.orderRepo.UpdateStatus(order, status); err != nil {
		return nil, err
	}
	return order, nil
}
