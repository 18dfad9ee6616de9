package handlers

import (
	"net/http"

	"talentflow/internal/services"
	"talentflow/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// AssignmentHandler holds dependencies for assignment operations.
type AssignmentHandler struct {
	service   services.AssignmentService
	validator *validator.Validate
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(service services.AssignmentService, validate *validator.Validate) *AssignmentHandler {
	return &AssignmentHandler{
		service:   service,
		validator: validate,
	}
}

// ListAssignments godoc
// @Summary      List assignments
// @Description  Retrieves all assignments, optionally narrowed to a single application.
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        applicationId query string false "Application ID filter" Format(uuid)
// @Success      200 {array}   models.Assignment "Successfully retrieved assignments"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	var req dto.ListAssignmentsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	var applicationID *uuid.UUID
	if req.ApplicationID != "" {
		id, err := uuid.Parse(req.ApplicationID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application ID format"})
			return
		}
		applicationID = &id
	}

	assignments, err := h.service.ListAssignments(c.Request.Context(), applicationID)
	if err != nil {
		log.Printf("Error listing assignments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve assignments"})
		return
	}

	c.JSON(http.StatusOK, assignments)
}
