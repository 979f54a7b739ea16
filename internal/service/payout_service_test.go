package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"servana/internal/models"
)

func TestSettlePayout(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	svc := env.seedService(t, provider.ID, "haircut", "100.00")

	// 20% commission: provider share 80 + 100 + 120 = 300.00
	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "100.00")
	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "125.00")
	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "150.00")

	payout, err := env.payoutSvc.Settle(provider.ID, "march sweep")
	require.NoError(t, err)
	assert.True(t, payout.Amount.Equal(decimal.RequireFromString("300.00")), "amount = %s", payout.Amount)
	assert.Equal(t, 3, payout.CommissionCount)
	assert.Equal(t, "march sweep", payout.Note)
	assert.NotEmpty(t, payout.Period)

	pending, err := env.payoutSvc.GetBalance(provider.ID, false)
	require.NoError(t, err)
	assert.True(t, pending.Amount.IsZero())
	assert.Equal(t, 0, pending.Count)

	paid, err := env.payoutSvc.GetBalance(provider.ID, true)
	require.NoError(t, err)
	assert.True(t, paid.Amount.Equal(decimal.RequireFromString("300.00")))
	assert.Equal(t, 3, paid.Count)

	// every claimed commission points back at this payout
	commissions, err := env.payoutSvc.PayoutCommissions(payout.ID)
	require.NoError(t, err)
	require.Len(t, commissions, 3)
	for _, c := range commissions {
		assert.True(t, c.PaidOut)
		require.NotNil(t, c.PayoutID)
		assert.Equal(t, payout.ID, *c.PayoutID)
		assert.NotNil(t, c.PaidOutAt)
	}
}

func TestSettleRetriesAfterClaimConflict(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	svc := env.seedService(t, provider.ID, "haircut", "100.00")
	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "100.00")

	// first attempt claims nothing, as if a concurrent writer got there
	// first; the retry goes through the real claim
	realClaim := env.payoutSvc.claim
	calls := 0
	env.payoutSvc.claim = func(tx *gorm.DB, providerID, payoutID uint, at time.Time) (int64, error) {
		calls++
		if calls == 1 {
			return 0, nil
		}
		return realClaim(tx, providerID, payoutID, at)
	}

	payout, err := env.payoutSvc.Settle(provider.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, payout.CommissionCount)
	assert.True(t, payout.Amount.Equal(decimal.RequireFromString("80.00")))

	// the rolled-back first attempt left no payout row behind
	var payouts int64
	require.NoError(t, env.db.Model(&models.ProviderPayout{}).Count(&payouts).Error)
	assert.EqualValues(t, 1, payouts)
}

func TestSettleConflictSurfacesAfterRetries(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	svc := env.seedService(t, provider.ID, "haircut", "100.00")
	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "100.00")

	env.payoutSvc.claim = func(tx *gorm.DB, providerID, payoutID uint, at time.Time) (int64, error) {
		return 0, nil
	}

	_, err := env.payoutSvc.Settle(provider.ID, "")
	assert.ErrorIs(t, err, ErrSettleConflict)

	// every attempt rolled back: no payout recorded, commission still unpaid
	var payouts int64
	require.NoError(t, env.db.Model(&models.ProviderPayout{}).Count(&payouts).Error)
	assert.Zero(t, payouts)
	pending, err := env.payoutSvc.GetBalance(provider.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, pending.Count)
}

func TestSettleNothingToSettle(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")

	_, err := env.payoutSvc.Settle(provider.ID, "")
	assert.ErrorIs(t, err, ErrNothingToSettle)
}

func TestSettleTwiceClaimsEachCommissionOnce(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	svc := env.seedService(t, provider.ID, "haircut", "100.00")

	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "100.00")
	first, err := env.payoutSvc.Settle(provider.ID, "")
	require.NoError(t, err)

	// settled ledger empty now
	_, err = env.payoutSvc.Settle(provider.ID, "")
	assert.ErrorIs(t, err, ErrNothingToSettle)

	// a commission arriving later lands in a new payout only
	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "50.00")
	second, err := env.payoutSvc.Settle(provider.ID, "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, second.CommissionCount)
	assert.True(t, second.Amount.Equal(decimal.RequireFromString("40.00")))

	firstSet, err := env.payoutSvc.PayoutCommissions(first.ID)
	require.NoError(t, err)
	secondSet, err := env.payoutSvc.PayoutCommissions(second.ID)
	require.NoError(t, err)
	assert.Len(t, firstSet, 1)
	assert.Len(t, secondSet, 1)
	assert.NotEqual(t, firstSet[0].ID, secondSet[0].ID)
}

func TestGetBalanceIdempotent(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	svc := env.seedService(t, provider.ID, "haircut", "100.00")
	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "100.00")

	first, err := env.payoutSvc.GetBalance(provider.ID, false)
	require.NoError(t, err)
	second, err := env.payoutSvc.GetBalance(provider.ID, false)
	require.NoError(t, err)
	assert.True(t, first.Amount.Equal(second.Amount))
	assert.Equal(t, first.Count, second.Count)
	assert.Equal(t, len(first.Details), len(second.Details))
}

func TestBalanceDetails(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	svc := env.seedService(t, provider.ID, "manicure", "80.00")
	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "80.00")

	balance, err := env.payoutSvc.GetBalance(provider.ID, false)
	require.NoError(t, err)
	require.Len(t, balance.Details, 1)
	line := balance.Details[0]
	assert.Equal(t, "manicure", line.ServiceName)
	assert.True(t, line.ServicePrice.Equal(decimal.RequireFromString("80.00")))
	assert.True(t, line.PlatformAmount.Equal(decimal.RequireFromString("16.00")))
	assert.True(t, line.ProviderAmount.Equal(decimal.RequireFromString("64.00")))
	assert.False(t, line.OrderDate.IsZero())
}

func TestListPayoutsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	svc := env.seedService(t, provider.ID, "haircut", "100.00")

	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "100.00")
	first, err := env.payoutSvc.Settle(provider.ID, "first")
	require.NoError(t, err)
	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "100.00")
	second, err := env.payoutSvc.Settle(provider.ID, "second")
	require.NoError(t, err)

	payouts, err := env.payoutSvc.ListPayouts(provider.ID)
	require.NoError(t, err)
	require.Len(t, payouts, 2)
	ids := []uint{payouts[0].ID, payouts[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	assert.False(t, payouts[0].CreatedAt.Before(payouts[1].CreatedAt))
}

func TestGetReport(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	svc := env.seedService(t, provider.ID, "haircut", "100.00")

	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "100.00")
	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "200.00")
	_, err := env.payoutSvc.Settle(provider.ID, "")
	require.NoError(t, err)

	report, err := env.payoutSvc.GetReport(provider.ID, "weekly")
	require.NoError(t, err)
	assert.Equal(t, 2, report.CommissionsCount)
	assert.True(t, report.ProviderAmountTotal.Equal(decimal.RequireFromString("240.00")))
	assert.True(t, report.PlatformAmountTotal.Equal(decimal.RequireFromString("60.00")))
	assert.True(t, report.From.Before(report.To))

	monthly, err := env.payoutSvc.GetReport(provider.ID, "monthly")
	require.NoError(t, err)
	assert.Equal(t, 2, monthly.CommissionsCount)
}

func TestGetReportExcludesOldAndUnpaid(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")
	user := env.seedUser(t, "bob")
	svc := env.seedService(t, provider.ID, "haircut", "100.00")

	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "100.00")
	_, err := env.payoutSvc.Settle(provider.ID, "")
	require.NoError(t, err)

	// unpaid commission stays out of the report
	env.seedCompletedOrder(t, provider.ID, user.ID, svc.ID, "100.00")

	report, err := env.payoutSvc.GetReport(provider.ID, "weekly")
	require.NoError(t, err)
	assert.Equal(t, 1, report.CommissionsCount)

	// shift the clock two weeks forward: the weekly window leaves the
	// settled commission behind
	env.payoutSvc.now = func() time.Time { return time.Now().AddDate(0, 0, 14) }
	late, err := env.payoutSvc.GetReport(provider.ID, "weekly")
	require.NoError(t, err)
	assert.Equal(t, 0, late.CommissionsCount)
}

func TestGetReportInvalidPeriod(t *testing.T) {
	env := newTestEnv(t)
	provider := env.seedProvider(t, "ana")

	_, err := env.payoutSvc.GetReport(provider.ID, "")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, err = env.payoutSvc.GetReport(provider.ID, "yearly")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
