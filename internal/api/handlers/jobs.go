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

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  Adds a job to the pipeline. Slug is derived from the title when absent and must be unique; order defaults to the end of the board.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      201 {object}  models.Job "Job created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input or slug conflict"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	createdJob, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Slug already exists"})
		} else {
			log.Printf("Error creating job: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create job"})
		}
		return
	}

	c.JSON(http.StatusCreated, createdJob)
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Description  Retrieves a job plus its applicants, resolved live through the job's applications.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobDetailResponse "Successfully retrieved job"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID format"})
		return
	}

	job, err := h.service.GetJobDetail(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else {
			log.Printf("Error fetching job by ID %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve job"})
		}
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Retrieves a page of jobs. Supports title search, status and tag filters, and sorting by board order or title.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        search query string false "Case-insensitive title substring"
// @Param        status query string false "Filter by status" Enums(active, archived)
// @Param        tags query string false "Comma-separated tag list (any-match)"
// @Param        page query int false "1-indexed page" default(1)
// @Param        pageSize query int false "Page size" default(10)
// @Param        sort query string false "Sort key" Enums(order, title) default(order)
// @Success      200 {object}  dto.JobListResponse "Successfully retrieved jobs"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	resp, err := h.service.ListJobs(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error listing jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve jobs"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateJob godoc
// @Summary      Partially update a job
// @Description  Merges the provided fields into the job. A slug change must not collide with another job.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        job body      dto.UpdateJobRequest true  "Fields to update"
// @Success      200 {object}  models.Job "Job updated successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input or slug conflict"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [patch]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID format"})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = jobID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	updatedJob, err := h.service.UpdateJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Slug already exists"})
		} else {
			log.Printf("Error updating job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update job"})
		}
		return
	}

	c.JSON(http.StatusOK, updatedJob)
}

// ReplaceJob godoc
// @Summary      Replace a job
// @Description  Replaces every field of the job with the request body. The slug must not collide with another job.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        job body      dto.ReplaceJobRequest true  "Full job contents"
// @Success      200 {object}  models.Job "Job replaced successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input or slug conflict"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [put]
func (h *JobHandler) ReplaceJob(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID format"})
		return
	}

	var req dto.ReplaceJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = jobID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	replacedJob, err := h.service.ReplaceJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Slug already exists"})
		} else {
			log.Printf("Error replacing job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to replace job"})
		}
		return
	}

	c.JSON(http.StatusOK, replacedJob)
}

// ReorderJob godoc
// @Summary      Reorder a job on the board
// @Description  Moves the job from fromOrder to toOrder, shifting the jobs in between by one. fromOrder must match the stored order.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        move body    dto.ReorderJobRequest true  "Move to apply"
// @Success      200 {object}  dto.ReorderJobResponse "Move applied"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input or stale fromOrder"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/reorder [patch]
func (h *JobHandler) ReorderJob(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID format"})
		return
	}

	var req dto.ReorderJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	if err := h.service.ReorderJob(c.Request.Context(), jobID, *req.FromOrder, *req.ToOrder); err != nil {
		if errors.Is(err, services.ErrStaleOrder) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "fromOrder does not match current job order"})
		} else {
			log.Printf("Error reordering job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reorder job"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ReorderJobResponse{FromOrder: *req.FromOrder, ToOrder: *req.ToOrder})
}
