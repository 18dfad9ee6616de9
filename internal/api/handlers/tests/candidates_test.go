package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentflow/internal/api/handlers"
	"talentflow/internal/api/routes"
	"talentflow/internal/models"
	"talentflow/internal/services"
	"talentflow/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCandidateService is a mock implementation of services.CandidateService
type MockCandidateService struct {
	mock.Mock
}

func (m *MockCandidateService) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Candidate), args.Error(1)
}

func (m *MockCandidateService) GetCandidateDetail(ctx context.Context, id uuid.UUID) (*dto.CandidateDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CandidateDetailResponse), args.Error(1)
}

func (m *MockCandidateService) UpdateCandidate(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

// Ensure mock implements the interface (compile-time check)
var _ services.CandidateService = (*MockCandidateService)(nil)

func setupCandidateRouter() (*gin.Engine, *MockCandidateService) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockCandidateService)
	handler := handlers.NewCandidateHandler(mockService, validator.New())
	router := gin.New()
	api := router.Group("/api")
	routes.RegisterCandidateRoutes(api, handler)
	return router, mockService
}

func TestCandidateRoutes_GetByID_ResolvesJobs(t *testing.T) {
	router, mockService := setupCandidateRouter()

	candidateID := uuid.New()
	detail := &dto.CandidateDetailResponse{
		Candidate: models.Candidate{ID: candidateID, Name: "Ana Silva"},
		Jobs: []dto.CandidateJob{{
			Job:           models.Job{ID: uuid.New(), Title: "Backend Engineer"},
			Stage:         models.StageScreening,
			ApplicationID: uuid.New(),
		}},
	}
	mockService.On("GetCandidateDetail", mock.Anything, candidateID).Return(detail, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/candidates/"+candidateID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stage":"Screening"`)
	mockService.AssertExpectations(t)
}

func TestCandidateRoutes_GetByID_NotFound(t *testing.T) {
	router, mockService := setupCandidateRouter()

	mockService.On("GetCandidateDetail", mock.Anything, mock.Anything).
		Return(nil, services.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/candidates/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestCandidateRoutes_Update_RejectsBadStatus(t *testing.T) {
	router, mockService := setupCandidateRouter()

	body := bytes.NewBufferString(`{"overallStatus": "vanished"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/candidates/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "UpdateCandidate", mock.Anything, mock.Anything)
}

func TestCandidateRoutes_Update_Success(t *testing.T) {
	router, mockService := setupCandidateRouter()

	candidateID := uuid.New()
	updated := &models.Candidate{ID: candidateID, Name: "Ana Silva", OverallStatus: "hired"}
	mockService.On("UpdateCandidate", mock.Anything, mock.MatchedBy(func(req *dto.UpdateCandidateRequest) bool {
		return req.ID == candidateID && req.OverallStatus != nil && *req.OverallStatus == "hired"
	})).Return(updated, nil).Once()

	body := bytes.NewBufferString(`{"overallStatus": "hired"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/candidates/"+candidateID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"overallStatus":"hired"`)
	mockService.AssertExpectations(t)
}
