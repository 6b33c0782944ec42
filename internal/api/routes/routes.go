package routes

import (
	"net/http"

	"thematic-analysis-backend/internal/api/handlers"
	"thematic-analysis-backend/internal/api/middleware"
	"thematic-analysis-backend/internal/auth"
	"thematic-analysis-backend/internal/config"
	"thematic-analysis-backend/internal/llm"
	"thematic-analysis-backend/internal/repository"
	"thematic-analysis-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies carries the collaborators built outside the router
type Dependencies struct {
	DB           *gorm.DB
	Generator    llm.Client
	Auth         *auth.AuthService
	HealthChecks map[string]handlers.DependencyCheck
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, deps Dependencies) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.Secure(middleware.SecureOptions(cfg.IsDevelopment())))
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories and services
	uow := repository.NewUnitOfWork(deps.DB)
	codebookService := service.NewCodebookService()
	codeReviewService := service.NewCodeReviewService(uow, codebookService, validator)
	codeAssignmentService := service.NewCodeAssignmentService(uow, validator)
	snapshotService := service.NewProjectSnapshotService(uow)
	themeService := service.NewThemeGenerationService(uow, deps.Generator, validator)
	reportService := service.NewReportGenerationService(uow, deps.Generator, validator)

	authMiddleware := auth.NewAuthMiddleware(deps.Auth)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.HealthChecks)
	codeReviewHandler := handlers.NewCodeReviewHandler(codeReviewService)
	codeAssignmentHandler := handlers.NewCodeAssignmentHandler(codeAssignmentService)
	projectHandler := handlers.NewProjectHandler(snapshotService)
	aiHandler := handlers.NewAIGenerationHandler(themeService, reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		assignments := v1.Group("/code-assignments")
		{
			assignments.POST("", codeAssignmentHandler.CreateAssignment)
			assignments.POST("/submit", codeAssignmentHandler.SubmitAssignments)
			assignments.POST("/review", codeReviewHandler.ReviewAssignments)
			assignments.POST("/bulk-review", codeReviewHandler.BulkReview)
		}

		codebooks := v1.Group("/codebooks")
		{
			codebooks.GET("/:id/assignments", codeReviewHandler.GetCodebookAssignments)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("/:id/comprehensive", projectHandler.GetComprehensiveData)
		}

		ai := v1.Group("/ai")
		{
			ai.POST("/generate-themes", aiHandler.GenerateThemes)
			ai.POST("/generate-report", aiHandler.GenerateReport)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
