// internal/api/routes/assignment_routes.go
package routes

import (
	"talentflow/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAssignmentRoutes registers all routes related to assignments.
func RegisterAssignmentRoutes(
	rg *gin.RouterGroup,
	assignmentHandler handlers.AssignmentHandlerInterface,
) {
	assignments := rg.Group("/assignments")
	{
		assignments.GET("", assignmentHandler.ListAssignments)
	}
}
