package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"servana/internal/middleware"
	"servana/internal/models"
	"servana/internal/service"
)

type OrderHandler struct {
	orderSvc *service.OrderService
}

func NewOrderHandler(orderSvc *service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req struct {
		ProviderID uint    `json:"provider_id" binding:"required"`
		ServiceID  uint    `json:"service_id" binding:"required"`
		Price      float64 `json:"price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := middleware.GetUserID(c)
	order, err := h.orderSvc.Create(req.ProviderID, userID, req.ServiceID, decimal.NewFromFloat(req.Price).Round(2))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "provider, user or service not found"})
		case errors.Is(err, service.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderSvc.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orderSvc.FindOne(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListByProvider(c *gin.Context) {
	providerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	orders, err := h.orderSvc.FindByProvider(providerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orders, err := h.orderSvc.FindByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Confirm(c *gin.Context) {
	h.transition(c, h.orderSvc.Confirm)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.orderSvc.Cancel)
}

func (h *OrderHandler) Finish(c *gin.Context) {
	h.transition(c, h.orderSvc.Finish)
}

func (h *OrderHandler) transition(c *gin.Context, fn func(uint) (*models.ServiceOrder, error)) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := fn(id)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, service.ErrAlreadyInStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "transition failed"})
		}
		return
	}
	c.JSON(http.StatusOK, order)
}
