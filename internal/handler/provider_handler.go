package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"servana/internal/domain"
	"servana/internal/models"
	"servana/internal/repository"
)

type ProviderHandler struct {
	providerRepo *repository.ProviderRepository
}

func NewProviderHandler(providerRepo *repository.ProviderRepository) *ProviderHandler {
	return &ProviderHandler{providerRepo: providerRepo}
}

func (h *ProviderHandler) Create(c *gin.Context) {
	var req struct {
		Name                 string   `json:"name" binding:"required"`
		Email                string   `json:"email" binding:"required,email"`
		Password             string   `json:"password" binding:"required,min=8"`
		CommissionPercentage *float64 `json:"commission_percentage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}
	p := &models.Provider{
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     string(hash),
		Status:           domain.ProviderStatusPending,
		RegistrationDate: time.Now(),
	}
	if req.CommissionPercentage != nil {
		pct := *req.CommissionPercentage
		if pct < 0 || pct > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "commission percentage must be between 0 and 100"})
			return
		}
		p.CommissionPercentage = decimal.NewNullDecimal(decimal.NewFromFloat(pct))
	}
	if err := h.providerRepo.Create(p); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "provider already exists"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProviderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.providerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.providerRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, providers)
}

// Approve activates a pending provider. Admin only.
func (h *ProviderHandler) Approve(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.providerRepo.Approve(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "approval failed"})
		return
	}
	c.JSON(http.StatusOK, p)
}
