// internal/api/routes/application_routes.go
package routes

import (
	"talentflow/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to applications.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.ApplicationHandlerInterface,
) {
	applications := rg.Group("/applications")
	{
		applications.GET("", applicationHandler.ListApplications) // Enriched, paged list
		applications.PATCH("/:id", applicationHandler.UpdateApplication)
	}
}
