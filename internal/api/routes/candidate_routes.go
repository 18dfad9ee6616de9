// internal/api/routes/candidate_routes.go
package routes

import (
	"talentflow/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCandidateRoutes registers all routes related to candidates.
func RegisterCandidateRoutes(
	rg *gin.RouterGroup,
	candidateHandler handlers.CandidateHandlerInterface,
) {
	candidates := rg.Group("/candidates")
	{
		candidates.GET("", candidateHandler.ListCandidates)
		candidates.GET("/:id", candidateHandler.GetCandidateByID) // Candidate plus their jobs
		candidates.PATCH("/:id", candidateHandler.UpdateCandidate)
	}
}
