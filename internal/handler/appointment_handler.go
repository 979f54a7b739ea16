package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"servana/internal/middleware"
	"servana/internal/service"
)

type AppointmentHandler struct {
	appointmentSvc *service.AppointmentService
}

func NewAppointmentHandler(appointmentSvc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentSvc: appointmentSvc}
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req struct {
		ProviderID uint      `json:"provider_id" binding:"required"`
		ScheduleID uint      `json:"schedule_id" binding:"required"`
		StartTime  time.Time `json:"start_time" binding:"required"`
		EndTime    time.Time `json:"end_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := middleware.GetUserID(c)
	appt, err := h.appointmentSvc.Create(req.ProviderID, userID, req.ScheduleID, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRange),
			errors.Is(err, service.ErrOutsideWindow),
			errors.Is(err, service.ErrScheduleInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "booking failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, appt)
}

func (h *AppointmentHandler) ListByProvider(c *gin.Context) {
	providerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	appointments, err := h.appointmentSvc.FindByProvider(providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) ProviderSchedules(c *gin.Context) {
	providerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	schedules, err := h.appointmentSvc.SchedulesByProvider(providerID)
	if err != nil {
		if errors.Is(err, service.ErrNoSchedules) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, schedules)
}
