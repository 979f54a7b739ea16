package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"servana/internal/service"
	"servana/pkg/interval"
)

type ScheduleHandler struct {
	scheduleSvc *service.ScheduleService
}

func NewScheduleHandler(scheduleSvc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	providerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Day       string `json:"day" binding:"required"`
		StartTime string `json:"start_time" binding:"required"`
		EndTime   string `json:"end_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	schedule, err := h.scheduleSvc.Create(providerID, req.Day, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDay),
			errors.Is(err, service.ErrInvalidWindow),
			errors.Is(err, interval.ErrBadClock):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create schedule"})
		}
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

func (h *ScheduleHandler) List(c *gin.Context) {
	providerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	schedules, err := h.scheduleSvc.List(providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) Deactivate(c *gin.Context) {
	providerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	scheduleID, ok := parseID(c, "scheduleId")
	if !ok {
		return
	}
	if err := h.scheduleSvc.Deactivate(providerID, scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "schedule deactivated"})
}

func (h *ScheduleHandler) Activate(c *gin.Context) {
	providerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	scheduleID, ok := parseID(c, "scheduleId")
	if !ok {
		return
	}
	if err := h.scheduleSvc.Activate(providerID, scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "schedule activated"})
}
