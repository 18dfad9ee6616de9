// internal/api/routes/job_routes.go
package routes

import (
	"talentflow/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs.
func RegisterJobRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api)
	jobHandler handlers.JobHandlerInterface, // Use interface
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)                  // Paged, filtered job list
		jobs.POST("", jobHandler.CreateJob)                // Create a new job posting
		jobs.GET("/:id", jobHandler.GetJobByID)            // Job plus its applicants
		jobs.PATCH("/:id", jobHandler.UpdateJob)           // Merge fields into a job
		jobs.PUT("/:id", jobHandler.ReplaceJob)            // Replace a job wholesale
		jobs.PATCH("/:id/reorder", jobHandler.ReorderJob)  // Move a job on the board
	}
}
