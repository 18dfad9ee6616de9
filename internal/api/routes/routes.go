// internal/api/routes/routes.go
package routes

import (
	"talentflow/internal/api/handlers"
	"talentflow/internal/api/middleware"
	"talentflow/internal/app"
	"talentflow/internal/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	api := router.Group("/api")
	api.Use(middleware.Logger())

	// Create handlers
	jobHandler := handlers.NewJobHandler(services.NewJobService(app.DB), app.Validator)
	candidateHandler := handlers.NewCandidateHandler(services.NewCandidateService(app.DB), app.Validator)
	applicationHandler := handlers.NewApplicationHandler(services.NewApplicationService(app.DB), app.Validator)
	assessmentHandler := handlers.NewAssessmentHandler(services.NewAssessmentService(app.DB), app.Validator)
	assignmentHandler := handlers.NewAssignmentHandler(services.NewAssignmentService(app.DB), app.Validator)
	statsHandler := handlers.NewStatsHandler(services.NewStatsService(app.DB, app.RedisClient))

	// --- Register Resource Routes ---
	RegisterJobRoutes(api, jobHandler)
	RegisterCandidateRoutes(api, candidateHandler)
	RegisterApplicationRoutes(api, applicationHandler)
	RegisterAssessmentRoutes(api, assessmentHandler)
	RegisterAssignmentRoutes(api, assignmentHandler)
	api.GET("/stats", statsHandler.GetStats)

	// --- Unprefixed Aliases ---
	// A handful of read routes are also reachable without the /api prefix for
	// clients that predate it.
	router.GET("/jobs", jobHandler.ListJobs)
	router.GET("/jobs/:id", jobHandler.GetJobByID)
	router.GET("/candidates", candidateHandler.ListCandidates)
	router.GET("/assessments", assessmentHandler.ListAssessments)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
