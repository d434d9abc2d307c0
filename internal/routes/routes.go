package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/EstudioRosa/nail-scheduler/internal/audit"
	"github.com/EstudioRosa/nail-scheduler/internal/config"
	"github.com/EstudioRosa/nail-scheduler/internal/handlers"
	infraRepo "github.com/EstudioRosa/nail-scheduler/internal/infra/repository"
	"github.com/EstudioRosa/nail-scheduler/internal/middleware"
	"github.com/EstudioRosa/nail-scheduler/internal/storage"
	ucBooking "github.com/EstudioRosa/nail-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	photoStore := storage.NewPhotoStore(cfg)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	listServicesUC := ucBooking.NewListServices(bookingRepo)

	getAvailabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		cfg.Timezone,
		cfg.MaxLeadDays,
	)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		cfg.Timezone,
		cfg.MaxLeadDays,
	)

	searchClientBookingsUC := ucBooking.NewSearchClientBookings(bookingRepo)

	cancelByClientUC := ucBooking.NewCancelByClient(
		bookingRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	completeAppointmentUC := ucBooking.NewCompleteAppointment(
		bookingRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	listByPeriodUC := ucBooking.NewListByPeriod(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(
		listServicesUC,
		getAvailabilityUC,
		createBookingUC,
		cfg.Timezone,
	)

	clientAreaHandler := handlers.NewClientAreaHandler(
		searchClientBookingsUC,
		cancelByClientUC,
	)

	adminAppointmentHandler := handlers.NewAdminAppointmentHandler(
		listByPeriodUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		cfg.Timezone,
	)

	serviceHandler := handlers.NewServiceHandler(db, photoStore)
	blockedSlotHandler := handlers.NewBlockedSlotHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// Escritas públicas passam pelo limitador (agendar e buscar por CPF)
	publicWriteLimit := middleware.RateLimit(rdb, 20, time.Minute)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (site de agendamento)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicWriteLimit, publicHandler.CreateBooking)
		}

		// ------------------------------
		// 👤 ÁREA DO CLIENTE (CPF + telefone)
		// ------------------------------
		clientAPI := api.Group("/client")
		{
			clientAPI.POST("/appointments/search", publicWriteLimit, clientAreaHandler.Search)
			clientAPI.PATCH("/appointments/:id/cancel", publicWriteLimit, clientAreaHandler.Cancel)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (painel)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.POST("/me/services/:id/photo", serviceHandler.UploadPhoto)

			secured.GET("/me/blocked-slots", blockedSlotHandler.List)
			secured.POST("/me/blocked-slots", blockedSlotHandler.Create)
			secured.DELETE("/me/blocked-slots/:id", blockedSlotHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", adminAppointmentHandler.List)
			secured.PATCH("/me/appointments/:id/cancel", adminAppointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", adminAppointmentHandler.Complete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
