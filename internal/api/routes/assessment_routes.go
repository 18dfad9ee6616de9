// internal/api/routes/assessment_routes.go
package routes

import (
	"talentflow/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAssessmentRoutes registers all routes related to assessments.
// PUT and POST on /:jobId are deliberate twins: both upsert the job's single
// assessment.
func RegisterAssessmentRoutes(
	rg *gin.RouterGroup,
	assessmentHandler handlers.AssessmentHandlerInterface,
) {
	assessments := rg.Group("/assessments")
	{
		assessments.GET("", assessmentHandler.ListAssessments)
		assessments.GET("/:jobId", assessmentHandler.GetAssessmentByJob)
		assessments.PUT("/:jobId", assessmentHandler.UpsertAssessment)
		assessments.POST("/:jobId", assessmentHandler.UpsertAssessment)
		assessments.POST("/:jobId/submit", assessmentHandler.SubmitAssessment)
	}
}
