package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"servana/internal/service"
)

type PayoutHandler struct {
	payoutSvc *service.PayoutService
}

func NewPayoutHandler(payoutSvc *service.PayoutService) *PayoutHandler {
	return &PayoutHandler{payoutSvc: payoutSvc}
}

// Settle sweeps the provider's unpaid commissions into a new payout.
func (h *PayoutHandler) Settle(c *gin.Context) {
	providerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Note string `json:"note"`
	}
	_ = c.ShouldBindJSON(&req)
	payout, err := h.payoutSvc.Settle(providerID, req.Note)
	if err != nil {
		if errors.Is(err, service.ErrNothingToSettle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrSettleConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "settlement failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "payout recorded", "payout": payout})
}

func (h *PayoutHandler) Balance(c *gin.Context) {
	providerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	paidOut := c.Query("paid_out") == "true"
	balance, err := h.payoutSvc.GetBalance(providerID, paidOut)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "balance query failed"})
		return
	}
	c.JSON(http.StatusOK, balance)
}

func (h *PayoutHandler) List(c *gin.Context) {
	providerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	payouts, err := h.payoutSvc.ListPayouts(providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, payouts)
}

func (h *PayoutHandler) Commissions(c *gin.Context) {
	payoutID, ok := parseID(c, "payoutId")
	if !ok {
		return
	}
	commissions, err := h.payoutSvc.PayoutCommissions(payoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "payout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, commissions)
}

func (h *PayoutHandler) Report(c *gin.Context) {
	providerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	report, err := h.payoutSvc.GetReport(providerID, c.Query("period"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report failed"})
		return
	}
	c.JSON(http.StatusOK, report)
}
