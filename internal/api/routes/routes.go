package routes

import (
	"shoot-planner-backend/internal/api/handlers"
	"shoot-planner-backend/internal/api/middleware"
	"shoot-planner-backend/internal/config"
	"shoot-planner-backend/internal/repository"
	"shoot-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize repositories
	productionRepo := repository.NewProductionRepository(db)
	scheduleItemRepo := repository.NewScheduleItemRepository(db)
	templateRepo := repository.NewScheduleTemplateRepository(db)
	lookRepo := repository.NewLookRepository(db)
	crewRepo := repository.NewCrewMemberRepository(db)

	// Initialize services
	productionService := service.NewProductionService(productionRepo, validator)
	scheduleItemService := service.NewScheduleItemService(scheduleItemRepo, productionRepo, templateRepo, validator)
	templateService := service.NewScheduleTemplateService(templateRepo)
	lookService := service.NewLookService(lookRepo, productionRepo, validator)
	crewService := service.NewCrewMemberService(crewRepo, productionRepo, validator)
	callSheetService := service.NewCallSheetService(productionRepo, cfg.CallSheetFooter)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	productionHandler := handlers.NewProductionHandler(productionService)
	scheduleItemHandler := handlers.NewScheduleItemHandler(scheduleItemService)
	templateHandler := handlers.NewScheduleTemplateHandler(templateService)
	lookHandler := handlers.NewLookHandler(lookService)
	crewHandler := handlers.NewCrewMemberHandler(crewService)
	callSheetHandler := handlers.NewCallSheetHandler(callSheetService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		productions := v1.Group("/productions")
		{
			productions.POST("", productionHandler.CreateProduction)
			productions.GET("", productionHandler.ListProductions)
			productions.GET("/:id", productionHandler.GetProduction)
			productions.PUT("/:id", productionHandler.UpdateProduction)

			productions.GET("/:id/schedule-items", scheduleItemHandler.GetSchedule)
			productions.POST("/:id/schedule-items", scheduleItemHandler.CreateScheduleItem)
			productions.POST("/:id/apply-template", scheduleItemHandler.ApplyTemplate)

			productions.GET("/:id/looks", lookHandler.GetLooks)
			productions.POST("/:id/looks", lookHandler.CreateLook)

			productions.GET("/:id/crew", crewHandler.GetCrew)
			productions.POST("/:id/crew", crewHandler.CreateCrewMember)

			productions.GET("/:id/call-sheet", callSheetHandler.GetCallSheet)
			productions.GET("/:id/call-sheet.pdf", callSheetHandler.ExportCallSheetPDF)
		}

		scheduleItems := v1.Group("/schedule-items")
		{
			scheduleItems.PUT("/:id", scheduleItemHandler.UpdateScheduleItem)
			scheduleItems.DELETE("/:id", scheduleItemHandler.DeleteScheduleItem)
		}

		templates := v1.Group("/templates")
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.GET("/:id", templateHandler.GetTemplate)
		}

		looks := v1.Group("/looks")
		{
			looks.PUT("/:id", lookHandler.UpdateLook)
			looks.DELETE("/:id", lookHandler.DeleteLook)
			looks.POST("/:id/move", lookHandler.MoveLook)
		}

		crew := v1.Group("/crew")
		{
			crew.PUT("/:id", crewHandler.UpdateCrewMember)
			crew.DELETE("/:id", crewHandler.DeleteCrewMember)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
