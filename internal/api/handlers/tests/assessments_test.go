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

// MockAssessmentService is a mock implementation of services.AssessmentService
type MockAssessmentService struct {
	mock.Mock
}

func (m *MockAssessmentService) GetAssessmentByJob(ctx context.Context, jobID uuid.UUID) (*models.Assessment, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assessment), args.Error(1)
}

func (m *MockAssessmentService) ListAssessments(ctx context.Context) ([]models.Assessment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Assessment), args.Error(1)
}

func (m *MockAssessmentService) UpsertAssessment(ctx context.Context, req *dto.UpsertAssessmentRequest) (*models.Assessment, bool, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Assessment), args.Bool(1), args.Error(2)
}

func (m *MockAssessmentService) SubmitAssessment(ctx context.Context, req *dto.SubmitAssessmentRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

// Ensure mock implements the interface (compile-time check)
var _ services.AssessmentService = (*MockAssessmentService)(nil)

func setupAssessmentRouter() (*gin.Engine, *MockAssessmentService) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockAssessmentService)
	handler := handlers.NewAssessmentHandler(mockService, validator.New())
	router := gin.New()
	api := router.Group("/api")
	routes.RegisterAssessmentRoutes(api, handler)
	return router, mockService
}

const upsertBody = `{"schema": {"title": "Screening", "sections": [{"id": "s-1", "title": "Basics", "questions": [
	{"id": "q-1", "type": "short-text", "label": "Name?"}
]}]}}`

func TestAssessmentRoutes_Upsert_CreatedIs201(t *testing.T) {
	router, mockService := setupAssessmentRouter()

	jobID := uuid.New()
	assessment := &models.Assessment{ID: uuid.New(), JobID: jobID}
	mockService.On("UpsertAssessment", mock.Anything, mock.MatchedBy(func(req *dto.UpsertAssessmentRequest) bool {
		return req.JobID == jobID
	})).Return(assessment, true, nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/api/assessments/"+jobID.String(), bytes.NewBufferString(upsertBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestAssessmentRoutes_Upsert_ReplacedIs200_POSTAlias(t *testing.T) {
	router, mockService := setupAssessmentRouter()

	jobID := uuid.New()
	assessment := &models.Assessment{ID: uuid.New(), JobID: jobID}
	mockService.On("UpsertAssessment", mock.Anything, mock.Anything).
		Return(assessment, false, nil).Once()

	// POST behaves identically to PUT.
	req := httptest.NewRequest(http.MethodPost, "/api/assessments/"+jobID.String(), bytes.NewBufferString(upsertBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestAssessmentRoutes_Upsert_InvalidSchema(t *testing.T) {
	router, mockService := setupAssessmentRouter()

	mockService.On("UpsertAssessment", mock.Anything, mock.Anything).
		Return(nil, false, services.ErrValidation).Once()

	req := httptest.NewRequest(http.MethodPut, "/api/assessments/"+uuid.NewString(), bytes.NewBufferString(upsertBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestAssessmentRoutes_Submit_Success(t *testing.T) {
	router, mockService := setupAssessmentRouter()

	jobID := uuid.New()
	candidateID := uuid.New()
	app := &models.Application{ID: uuid.New(), JobID: jobID, CandidateID: candidateID, AssessmentStatus: models.AssessmentSubmitted}
	mockService.On("SubmitAssessment", mock.Anything, mock.MatchedBy(func(req *dto.SubmitAssessmentRequest) bool {
		return req.JobID == jobID && req.CandidateID == candidateID
	})).Return(app, nil).Once()

	body := bytes.NewBufferString(`{"candidateId": "` + candidateID.String() + `", "responses": {"q-1": "Ana"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments/"+jobID.String()+"/submit", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Submitted"`)
	mockService.AssertExpectations(t)
}

func TestAssessmentRoutes_Submit_NoApplication(t *testing.T) {
	router, mockService := setupAssessmentRouter()

	mockService.On("SubmitAssessment", mock.Anything, mock.Anything).
		Return(nil, services.ErrNotFound).Once()

	body := bytes.NewBufferString(`{"candidateId": "` + uuid.NewString() + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments/"+uuid.NewString()+"/submit", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestAssessmentRoutes_Submit_MissingCandidate(t *testing.T) {
	router, mockService := setupAssessmentRouter()

	body := bytes.NewBufferString(`{"responses": {}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments/"+uuid.NewString()+"/submit", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SubmitAssessment", mock.Anything, mock.Anything)
}

func TestAssessmentRoutes_GetByJob(t *testing.T) {
	router, mockService := setupAssessmentRouter()

	jobID := uuid.New()
	mockService.On("GetAssessmentByJob", mock.Anything, jobID).
		Return(&models.Assessment{ID: uuid.New(), JobID: jobID}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/assessments/"+jobID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestAssessmentRoutes_GetByJob_NotFound(t *testing.T) {
	router, mockService := setupAssessmentRouter()

	mockService.On("GetAssessmentByJob", mock.Anything, mock.Anything).
		Return(nil, services.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/assessments/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}
