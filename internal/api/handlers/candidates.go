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

// CandidateHandler holds dependencies for candidate operations.
type CandidateHandler struct {
	service   services.CandidateService
	validator *validator.Validate
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(service services.CandidateService, validate *validator.Validate) *CandidateHandler {
	return &CandidateHandler{
		service:   service,
		validator: validate,
	}
}

// ListCandidates godoc
// @Summary      List all candidates
// @Description  Retrieves the full candidate list. Stage filtering happens client-side against the candidate's applications.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Success      200 {array}   models.Candidate "Successfully retrieved candidates"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /candidates [get]
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	candidates, err := h.service.ListCandidates(c.Request.Context())
	if err != nil {
		log.Printf("Error listing candidates: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve candidates"})
		return
	}

	c.JSON(http.StatusOK, candidates)
}

// GetCandidateByID godoc
// @Summary      Get a candidate by ID
// @Description  Retrieves a candidate plus the jobs they applied to, resolved live through their applications.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Candidate ID" Format(uuid)
// @Success      200 {object}  dto.CandidateDetailResponse "Successfully retrieved candidate"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Candidate Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetCandidateByID(c *gin.Context) {
	idStr := c.Param("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid candidate ID format"})
		return
	}

	candidate, err := h.service.GetCandidateDetail(c.Request.Context(), candidateID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Candidate not found"})
		} else {
			log.Printf("Error fetching candidate by ID %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve candidate"})
		}
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// UpdateCandidate godoc
// @Summary      Partially update a candidate
// @Description  Merges the provided fields into the candidate, including full timeline and notes replacements.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Candidate ID" Format(uuid)
// @Param        candidate body dto.UpdateCandidateRequest true "Fields to update"
// @Success      200 {object}  models.Candidate "Candidate updated successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Candidate Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /candidates/{id} [patch]
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	idStr := c.Param("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid candidate ID format"})
		return
	}

	var req dto.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = candidateID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	updatedCandidate, err := h.service.UpdateCandidate(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Candidate not found"})
		} else {
			log.Printf("Error updating candidate %s: %v", candidateID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update candidate"})
		}
		return
	}

	c.JSON(http.StatusOK, updatedCandidate)
}
