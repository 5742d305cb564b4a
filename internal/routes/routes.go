package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petgroom/scheduler/internal/audit"
	"github.com/petgroom/scheduler/internal/cache"
	"github.com/petgroom/scheduler/internal/config"
	"github.com/petgroom/scheduler/internal/handlers"
	"github.com/petgroom/scheduler/internal/infra/repository"
	"github.com/petgroom/scheduler/internal/middleware"
	"github.com/petgroom/scheduler/internal/models"
	"github.com/petgroom/scheduler/internal/notify"
	"github.com/petgroom/scheduler/internal/timezone"
	ucSchedule "github.com/petgroom/scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	loc := timezone.Location(cfg.Timezone)
	notifier := notify.NewConsoleNotifier(cfg.EmailFrom)
	auditDispatcher := audit.NewDispatcher(audit.New(db))
	summaryCache := cache.New(cfg.RedisURL, 60*time.Second)

	scheduleRepo := repository.NewScheduleGormRepository(db)
	userDirectory := repository.NewUserDirectoryGorm(db)
	petRegistry := repository.NewPetRegistryGorm(db)

	scheduleHandler := handlers.NewScheduleHandler(
		ucSchedule.NewCreate(scheduleRepo, userDirectory, petRegistry, notifier, auditDispatcher, loc),
		ucSchedule.NewUpdate(scheduleRepo, userDirectory, auditDispatcher),
		ucSchedule.NewUpdateStatus(scheduleRepo, auditDispatcher),
		ucSchedule.NewCustomerReschedule(scheduleRepo, auditDispatcher),
		ucSchedule.NewCustomerCancel(scheduleRepo, auditDispatcher, loc),
		ucSchedule.NewList(scheduleRepo, loc),
		ucSchedule.NewDelete(scheduleRepo, auditDispatcher),
		ucSchedule.NewReport(scheduleRepo, loc),
		summaryCache,
	)

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db)
	petHandler := handlers.NewPetHandler(db)
	settingHandler := handlers.NewSettingHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", meHandler.GetMe)

		users := secured.Group("/users")
		{
			users.GET("", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), userHandler.List)
			users.POST("", middleware.RequireRoles(models.RoleAdmin), userHandler.Create)
			users.PUT("/:id", middleware.RequireRoles(models.RoleAdmin), userHandler.Update)
			users.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), userHandler.Delete)
		}

		pets := secured.Group("/pets")
		{
			pets.GET("", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), petHandler.ListAll)
			pets.GET("/me", petHandler.ListMine)
			pets.GET("/customer/:customerId", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), petHandler.ListByCustomer)
			pets.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), petHandler.Create)
			pets.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), petHandler.Update)
			pets.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff, models.RoleCustomer), petHandler.Delete)
		}

		schedules := secured.Group("/schedules")
		{
			schedules.GET("", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), scheduleHandler.List)
			schedules.GET("/summary", middleware.RequireRoles(models.RoleAdmin), scheduleHandler.Summary)
			schedules.GET("/me", scheduleHandler.ListMine)
			schedules.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), scheduleHandler.Create)
			schedules.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), scheduleHandler.Update)
			schedules.PATCH("/:id/status", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), scheduleHandler.UpdateStatus)
			schedules.PATCH("/:id/customer/reschedule", middleware.RequireRoles(models.RoleCustomer), scheduleHandler.CustomerReschedule)
			schedules.PATCH("/:id/customer/cancel", middleware.RequireRoles(models.RoleCustomer), scheduleHandler.CustomerCancel)
			schedules.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), scheduleHandler.Delete)
		}

		settings := secured.Group("/settings")
		settings.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			settings.GET("", settingHandler.Get)
			settings.PUT("", settingHandler.Update)
		}

		secured.GET("/audit-logs", middleware.RequireRoles(models.RoleAdmin), auditLogsHandler.List)
	}
}
