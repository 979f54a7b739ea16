package service

import (
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"servana/internal/domain"
	"servana/internal/models"
	"servana/internal/repository"
)

var (
	ErrNothingToSettle = errors.New("no unpaid commissions for this provider")
	ErrInvalidPeriod   = errors.New("period must be weekly or monthly")
	ErrSettleConflict  = errors.New("settlement conflicted with a concurrent writer")
)

// settlement retry bounds for transient lock conflicts
const (
	settleAttempts = 3
	settleBackoff  = 50 * time.Millisecond
)

// BalanceLine is one commission in a balance breakdown.
type BalanceLine struct {
	CommissionID   uint            `json:"commission_id"`
	OrderDate      time.Time       `json:"order_date"`
	ServiceName    string          `json:"service_name"`
	ServicePrice   decimal.Decimal `json:"service_price"`
	Percentage     decimal.Decimal `json:"percentage"`
	PlatformAmount decimal.Decimal `json:"platform_amount"`
	ProviderAmount decimal.Decimal `json:"provider_amount"`
}

// Balance totals a provider's commissions on one side of the paid-out flag.
type Balance struct {
	Amount  decimal.Decimal `json:"amount"`
	Count   int             `json:"count"`
	Details []BalanceLine   `json:"details"`
}

// Report aggregates a provider's paid-out commissions over a rolling
// weekly or monthly window.
type Report struct {
	Period              string              `json:"period"`
	From                time.Time           `json:"from"`
	To                  time.Time           `json:"to"`
	CommissionsCount    int                 `json:"commissions_count"`
	ProviderAmountTotal decimal.Decimal     `json:"provider_amount_total"`
	PlatformAmountTotal decimal.Decimal     `json:"platform_amount_total"`
	Commissions         []models.Commission `json:"commissions"`
}

// PayoutService batches a provider's unpaid commissions into payouts and
// answers balance and report queries. Settlement runs as one transaction:
// a commission is claimed by at most one payout, and a payout never
// references a partial set.
type PayoutService struct {
	payoutRepo     *repository.PayoutRepository
	commissionRepo *repository.CommissionRepository

	now   func() time.Time
	claim func(tx *gorm.DB, providerID, payoutID uint, at time.Time) (int64, error)
}

func NewPayoutService(
	payoutRepo *repository.PayoutRepository,
	commissionRepo *repository.CommissionRepository,
) *PayoutService {
	return &PayoutService{
		payoutRepo:     payoutRepo,
		commissionRepo: commissionRepo,
		now:            time.Now,
		claim:          commissionRepo.MarkPaidTx,
	}
}

// Settle retries transient conflicts bounded times before surfacing
// ErrSettleConflict.
func (s *PayoutService) Settle(providerID uint, note string) (*models.ProviderPayout, error) {
	var payout *models.ProviderPayout
	var err error
	for attempt := 0; attempt < settleAttempts; attempt++ {
		payout, err = s.settleOnce(providerID, note)
		if !errors.Is(err, ErrSettleConflict) && !isLockConflict(err) {
			return payout, err
		}
		time.Sleep(settleBackoff * time.Duration(attempt+1))
	}
	if isLockConflict(err) {
		err = ErrSettleConflict
	}
	return payout, err
}

func (s *PayoutService) settleOnce(providerID uint, note string) (*models.ProviderPayout, error) {
	var payout *models.ProviderPayout
	err := s.payoutRepo.DB().Transaction(func(tx *gorm.DB) error {
		commissions, err := s.commissionRepo.ListUnpaidLockedTx(tx, providerID)
		if err != nil {
			return err
		}
		if len(commissions) == 0 {
			return ErrNothingToSettle
		}

		total := decimal.Zero
		for _, c := range commissions {
			total = total.Add(c.ProviderAmount)
		}

		now := s.now()
		payout = &models.ProviderPayout{
			ProviderID:      providerID,
			Amount:          total,
			CommissionCount: len(commissions),
			Period:          now.Format("2006-01-02"),
			Note:            note,
		}
		if err := s.payoutRepo.CreateTx(tx, payout); err != nil {
			return err
		}

		claimed, err := s.claim(tx, providerID, payout.ID, now)
		if err != nil {
			return err
		}
		if claimed != int64(len(commissions)) {
			// Another writer touched the set after our locked read.
			// Roll everything back rather than record a payout whose
			// total disagrees with its claimed commissions.
			log.Printf("[Payout] provider %d: claimed %d of %d commissions, rolling back", providerID, claimed, len(commissions))
			return ErrSettleConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payout, nil
}

func (s *PayoutService) GetBalance(providerID uint, paidOut bool) (*Balance, error) {
	commissions, err := s.commissionRepo.ListByProviderPaid(providerID, paidOut)
	if err != nil {
		return nil, err
	}
	b := &Balance{
		Amount:  decimal.Zero,
		Count:   len(commissions),
		Details: make([]BalanceLine, 0, len(commissions)),
	}
	for _, c := range commissions {
		b.Amount = b.Amount.Add(c.ProviderAmount)
		b.Details = append(b.Details, BalanceLine{
			CommissionID:   c.ID,
			OrderDate:      c.Order.CreatedAt,
			ServiceName:    c.Service.Name,
			ServicePrice:   c.Service.Price,
			Percentage:     c.Percentage,
			PlatformAmount: c.PlatformAmount,
			ProviderAmount: c.ProviderAmount,
		})
	}
	return b, nil
}

func (s *PayoutService) ListPayouts(providerID uint) ([]models.ProviderPayout, error) {
	return s.payoutRepo.ListByProvider(providerID)
}

func (s *PayoutService) PayoutCommissions(payoutID uint) ([]models.Commission, error) {
	if _, err := s.payoutRepo.GetByID(payoutID); err != nil {
		return nil, err
	}
	return s.commissionRepo.ListByPayout(payoutID)
}

func (s *PayoutService) GetReport(providerID uint, period string) (*Report, error) {
	to := s.now()
	var from time.Time
	switch period {
	case domain.ReportPeriodWeekly:
		from = to.AddDate(0, 0, -7)
	case domain.ReportPeriodMonthly:
		from = to.AddDate(0, -1, 0)
	default:
		return nil, ErrInvalidPeriod
	}

	commissions, err := s.commissionRepo.ListPaidInRange(providerID, from, to)
	if err != nil {
		return nil, err
	}

	providerTotal := decimal.Zero
	platformTotal := decimal.Zero
	for _, c := range commissions {
		providerTotal = providerTotal.Add(c.ProviderAmount)
		platformTotal = platformTotal.Add(c.PlatformAmount)
	}
	return &Report{
		Period:              period,
		From:                from,
		To:                  to,
		CommissionsCount:    len(commissions),
		ProviderAmountTotal: providerTotal,
		PlatformAmountTotal: platformTotal,
		Commissions:         commissions,
	}, nil
}
