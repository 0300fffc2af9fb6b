package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/dgsoftwash/booking-api/internal/audit"
	"github.com/dgsoftwash/booking-api/internal/auth"
	"github.com/dgsoftwash/booking-api/internal/config"
	"github.com/dgsoftwash/booking-api/internal/handlers"
	infraRepo "github.com/dgsoftwash/booking-api/internal/infra/repository"
	"github.com/dgsoftwash/booking-api/internal/middleware"
	"github.com/dgsoftwash/booking-api/internal/notify"
	ucAvailability "github.com/dgsoftwash/booking-api/internal/usecase/availability"
	ucBooking "github.com/dgsoftwash/booking-api/internal/usecase/booking"
	ucPricing "github.com/dgsoftwash/booking-api/internal/usecase/pricing"
	ucReport "github.com/dgsoftwash/booking-api/internal/usecase/report"
	ucWorkOrder "github.com/dgsoftwash/booking-api/internal/usecase/workorder"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	tokens auth.TokenStore,
	catalogCache ucPricing.Cache,
	sender notify.Sender,
) {

	// ======================================================
	// 🌍 GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Metrics())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	pricingRepo := infraRepo.NewPricingGormRepository(db)
	workOrderRepo := infraRepo.NewWorkOrderGormRepository(db)
	reportRepo := infraRepo.NewReportGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifyDispatcher := notify.NewDispatcher(sender)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	daySlotsUC := ucAvailability.NewDaySlots(scheduleRepo)
	monthUC := ucAvailability.NewMonth(scheduleRepo)

	createBookingUC := ucBooking.NewCreate(scheduleRepo)
	cancelBookingUC := ucBooking.NewCancel(scheduleRepo)

	catalogUC := ucPricing.NewGetCatalog(pricingRepo, catalogCache)
	quoteUC := ucPricing.NewQuote(catalogUC)
	pricingUpdateUC := ucPricing.NewUpdate(pricingRepo, catalogCache)

	updateStatusUC := ucWorkOrder.NewUpdateStatus(workOrderRepo, notifyDispatcher)
	workOrderActionsUC := ucWorkOrder.NewActions(workOrderRepo, sender)

	revenueUC := ucReport.NewRevenue(reportRepo)
	paymentsUC := ucReport.NewPayments(reportRepo)

	loginUC := auth.NewLogin(cfg.AdminPasswordHash, tokens)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		daySlotsUC,
		monthUC,
		createBookingUC,
		catalogUC,
		quoteUC,
		notifyDispatcher,
		cfg.BusinessFrom,
	)
	authHandler := handlers.NewAuthHandler(loginUC)

	bookingHandler := handlers.NewAdminBookingHandler(
		db,
		createBookingUC,
		cancelBookingUC,
		auditDispatcher,
	)
	pricingHandler := handlers.NewAdminPricingHandler(
		pricingUpdateUC,
		pricingRepo,
		auditDispatcher,
	)
	workOrderHandler := handlers.NewAdminWorkOrderHandler(
		workOrderRepo,
		updateStatusUC,
		workOrderActionsUC,
		auditDispatcher,
	)
	customerHandler := handlers.NewAdminCustomerHandler(db)
	expenseHandler := handlers.NewAdminExpenseHandler(db)
	settingHandler := handlers.NewAdminSettingHandler(db)
	auditHandler := handlers.NewAdminAuditHandler(db)
	reportHandler := handlers.NewAdminReportHandler(revenueUC, paymentsUC)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 PUBLIC API
		// ------------------------------
		api.GET("/availability/slots/:date", publicHandler.DaySlots)
		api.GET("/availability/month/:year/:month", publicHandler.MonthOverview)
		api.GET("/pricing", publicHandler.Pricing)
		api.POST("/pricing/quote", publicHandler.Quote)
		api.POST("/contact", publicHandler.Contact)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/admin/login", authHandler.Login)

		// ------------------------------
		// 🔐 ADMIN API
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(tokens))
		{
			admin.GET("/bookings", bookingHandler.List)
			admin.POST("/bookings", bookingHandler.Create)
			admin.DELETE("/bookings/:id", bookingHandler.Delete)
			admin.POST("/block", bookingHandler.Block)

			admin.PATCH("/pricing/services/:id", pricingHandler.UpdateService)
			admin.PATCH("/pricing/discounts/:id", pricingHandler.UpdateDiscount)
			admin.GET("/pricing/schedules", pricingHandler.ListSchedules)
			admin.POST("/pricing/schedules", pricingHandler.CreateSchedule)
			admin.DELETE("/pricing/schedules/:id", pricingHandler.DeleteSchedule)

			admin.GET("/customers", customerHandler.List)
			admin.GET("/customers/:id", customerHandler.Detail)
			admin.POST("/customers", customerHandler.Create)
			admin.PATCH("/customers/:id/notes", customerHandler.UpdateNotes)

			admin.GET("/work-orders", workOrderHandler.List)
			admin.GET("/work-orders/:id", workOrderHandler.Detail)
			admin.POST("/work-orders", workOrderHandler.Create)
			admin.PATCH("/work-orders/:id", workOrderHandler.Update)
			admin.POST("/work-orders/:id/review-request", workOrderHandler.RequestReview)
			admin.POST("/work-orders/:id/sms-reminder", workOrderHandler.SendReminder)

			admin.GET("/expenses", expenseHandler.List)
			admin.POST("/expenses", expenseHandler.Create)
			admin.DELETE("/expenses/:id", expenseHandler.Delete)

			admin.GET("/settings", settingHandler.Get)
			admin.PATCH("/settings", settingHandler.Patch)

			admin.GET("/reports/revenue/:year", reportHandler.Revenue)
			admin.GET("/reports/payments/:year", reportHandler.Payments)

			admin.GET("/audit-logs", auditHandler.List)
		}
	}
}
