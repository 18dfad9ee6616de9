package handlers

import (
	"errors"
	"net/http"

	"talentflow/internal/services"
	"talentflow/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ApplicationHandler holds dependencies for application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// ListApplications godoc
// @Summary      List applications
// @Description  Retrieves a page of applications with candidate and job fields resolved live. Applications whose candidate or job no longer exists are dropped.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        search query string false "Matches candidate name, candidate email, or job title"
// @Param        stage query string false "Filter by stage" Enums(Applied, Screening, Interview, Offer, Hired, Rejected)
// @Param        page query int false "1-indexed page" default(1)
// @Param        pageSize query int false "Page size" default(100)
// @Success      200 {object}  dto.ApplicationListResponse "Successfully retrieved applications"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var req dto.ListApplicationsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	resp, err := h.service.ListApplications(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error listing applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve applications"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateApplication godoc
// @Summary      Partially update an application
// @Description  Merges the provided fields into the application; typically used to move a candidate between stages.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Param        application body dto.UpdateApplicationRequest true "Fields to update"
// @Success      200 {object}  models.Application "Application updated successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id} [patch]
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	idStr := c.Param("id")
	applicationID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application ID format"})
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = applicationID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	updatedApp, err := h.service.UpdateApplication(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		} else {
			log.Printf("Error updating application %s: %v", applicationID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update application"})
		}
		return
	}

	c.JSON(http.StatusOK, updatedApp)
}
