package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"servana/config"
	"servana/internal/domain"
	"servana/internal/handler"
	"servana/internal/middleware"
	"servana/internal/repository"
	"servana/internal/service"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	scheduleSvc := service.NewScheduleService(scheduleRepo)
	appointmentSvc := service.NewAppointmentService(appointmentRepo, scheduleRepo)
	commissionSvc := service.NewCommissionService(commissionRepo, providerRepo, &cfg.Commission)
	orderSvc := service.NewOrderService(orderRepo, providerRepo, userRepo, serviceRepo, commissionSvc)
	payoutSvc := service.NewPayoutService(payoutRepo, commissionRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	providerHandler := handler.NewProviderHandler(providerRepo)
	serviceHandler := handler.NewServiceHandler(serviceRepo)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	appointmentHandler := handler.NewAppointmentHandler(appointmentSvc)
	orderHandler := handler.NewOrderHandler(orderSvc)
	commissionHandler := handler.NewCommissionHandler(commissionSvc)
	payoutHandler := handler.NewPayoutHandler(payoutSvc)

	authMw := middleware.AuthRequired(&cfg.JWT)
	adminMw := middleware.RequireRole(domain.RoleAdmin)
	providerMw := middleware.RequireRole(domain.RoleProvider, domain.RoleAdmin)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		providers := api.Group("/providers")
		{
			providers.POST("", providerHandler.Create)
			providers.GET("", providerHandler.List)
			providers.GET("/:id", providerHandler.Get)
			providers.PATCH("/:id/approve", authMw, adminMw, providerHandler.Approve)

			providers.POST("/:id/services", authMw, providerMw, serviceHandler.Create)
			providers.GET("/:id/services", serviceHandler.ListByProvider)

			providers.POST("/:id/schedules", authMw, providerMw, scheduleHandler.Create)
			providers.GET("/:id/schedules", scheduleHandler.List)
			providers.PATCH("/:id/schedules/:scheduleId/deactivate", authMw, providerMw, scheduleHandler.Deactivate)
			providers.PATCH("/:id/schedules/:scheduleId/activate", authMw, providerMw, scheduleHandler.Activate)

			providers.GET("/:id/appointments", authMw, appointmentHandler.ListByProvider)
			providers.GET("/:id/orders", authMw, providerMw, orderHandler.ListByProvider)

			providers.POST("/:id/payouts", authMw, adminMw, payoutHandler.Settle)
			providers.GET("/:id/payouts", authMw, providerMw, payoutHandler.List)
			providers.GET("/:id/balance", authMw, providerMw, payoutHandler.Balance)
			providers.GET("/:id/report", authMw, providerMw, payoutHandler.Report)
		}

		api.POST("/appointments", authMw, appointmentHandler.Create)
		// availability as the booking flow sees it: errors when the
		// provider has no windows at all
		api.GET("/appointments/schedules/:id", appointmentHandler.ProviderSchedules)
		api.GET("/me/orders", authMw, orderHandler.ListMine)

		orders := api.Group("/orders")
		orders.Use(authMw)
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", adminMw, orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.GET("/:id/commission", adminMw, commissionHandler.GetByOrder)
			orders.PATCH("/:id/confirm", providerMw, orderHandler.Confirm)
			orders.PATCH("/:id/cancel", orderHandler.Cancel)
			orders.PATCH("/:id/finish", providerMw, orderHandler.Finish)
		}

		commissions := api.Group("/commissions")
		commissions.Use(authMw, adminMw)
		{
			commissions.GET("", commissionHandler.List)
			commissions.GET("/:id", commissionHandler.Get)
			commissions.DELETE("/:id", commissionHandler.Remove)
		}

		api.GET("/payouts/:payoutId/commissions", authMw, payoutHandler.Commissions)
	}

	return r
}
