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

// AssessmentHandler holds dependencies for assessment operations.
type AssessmentHandler struct {
	service   services.AssessmentService
	validator *validator.Validate
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(service services.AssessmentService, validate *validator.Validate) *AssessmentHandler {
	return &AssessmentHandler{
		service:   service,
		validator: validate,
	}
}

// ListAssessments godoc
// @Summary      List all assessments
// @Description  Retrieves every assessment form definition.
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Success      200 {array}   models.Assessment "Successfully retrieved assessments"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /assessments [get]
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	assessments, err := h.service.ListAssessments(c.Request.Context())
	if err != nil {
		log.Printf("Error listing assessments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve assessments"})
		return
	}

	c.JSON(http.StatusOK, assessments)
}

// GetAssessmentByJob godoc
// @Summary      Get the assessment for a job
// @Description  Retrieves the single assessment form attached to the job.
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        jobId path   string true  "Job ID" Format(uuid)
// @Success      200 {object}  models.Assessment "Successfully retrieved assessment"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Assessment Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /assessments/{jobId} [get]
func (h *AssessmentHandler) GetAssessmentByJob(c *gin.Context) {
	jobIDStr := c.Param("jobId")
	jobID, err := uuid.Parse(jobIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID format"})
		return
	}

	assessment, err := h.service.GetAssessmentByJob(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Assessment not found"})
		} else {
			log.Printf("Error fetching assessment for job %s: %v", jobIDStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve assessment"})
		}
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// UpsertAssessment godoc
// @Summary      Create or replace the assessment for a job
// @Description  Stores the submitted schema as the job's single assessment, replacing any previous one. PUT and POST behave identically.
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        jobId path   string true  "Job ID" Format(uuid)
// @Param        assessment body dto.UpsertAssessmentRequest true "Assessment schema"
// @Success      200 {object}  models.Assessment "Assessment replaced"
// @Success      201 {object}  models.Assessment "Assessment created"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid schema"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /assessments/{jobId} [put]
func (h *AssessmentHandler) UpsertAssessment(c *gin.Context) {
	jobIDStr := c.Param("jobId")
	jobID, err := uuid.Parse(jobIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID format"})
		return
	}

	var req dto.UpsertAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	req.JobID = jobID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	assessment, created, err := h.service.UpsertAssessment(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		} else {
			log.Printf("Error upserting assessment for job %s: %v", jobIDStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save assessment"})
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, assessment)
}

// SubmitAssessment godoc
// @Summary      Submit a candidate's assessment responses
// @Description  Marks the candidate's application for the job as submitted, stores the responses, and completes the matching assignment.
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        jobId path   string true  "Job ID" Format(uuid)
// @Param        submission body dto.SubmitAssessmentRequest true "Candidate responses"
// @Success      200 {object}  dto.SubmitAssessmentResponse "Submission recorded"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "No application for this candidate and job"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /assessments/{jobId}/submit [post]
func (h *AssessmentHandler) SubmitAssessment(c *gin.Context) {
	jobIDStr := c.Param("jobId")
	jobID, err := uuid.Parse(jobIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID format"})
		return
	}

	var req dto.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	req.JobID = jobID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.SubmitAssessment(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found for candidate and job"})
		} else {
			log.Printf("Error submitting assessment for job %s: %v", jobIDStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit assessment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SubmitAssessmentResponse{Message: "Submitted", App: app})
}
