package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jdsalazarc/barberia-desk/internal/audit"
	"github.com/jdsalazarc/barberia-desk/internal/config"
	"github.com/jdsalazarc/barberia-desk/internal/handlers"
	"github.com/jdsalazarc/barberia-desk/internal/infra/photostore"
	infraRepo "github.com/jdsalazarc/barberia-desk/internal/infra/repository"
	"github.com/jdsalazarc/barberia-desk/internal/middleware"
	ucSchedule "github.com/jdsalazarc/barberia-desk/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	photos *photostore.Store,
	log *logrus.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	employeeRepo := infraRepo.NewEmployeeGormRepository(db)
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — SCHEDULE
	// ======================================================
	bookUC := ucSchedule.NewBookAppointment(scheduleRepo, auditDispatcher)
	rescheduleUC := ucSchedule.NewRescheduleAppointment(scheduleRepo, auditDispatcher)
	listDayUC := ucSchedule.NewListDayAppointments(scheduleRepo)
	removeUC := ucSchedule.NewRemoveAppointment(scheduleRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(employeeRepo, cfg, auditDispatcher, log)
	meHandler := handlers.NewMeHandler(employeeRepo, photos, log)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo, auditDispatcher, log)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		rescheduleUC,
		listDayUC,
		removeUC,
		log,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/photo", meHandler.UploadPhoto)

			secured.GET("/barbers", employeeHandler.ListBarbers)
			secured.DELETE("/employees/:id", employeeHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
