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

// MockApplicationService is a mock implementation of services.ApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) ListApplications(ctx context.Context, req *dto.ListApplicationsQuery) (*dto.ApplicationListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ApplicationListResponse), args.Error(1)
}

func (m *MockApplicationService) UpdateApplication(ctx context.Context, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

// Ensure mock implements the interface (compile-time check)
var _ services.ApplicationService = (*MockApplicationService)(nil)

func setupApplicationRouter() (*gin.Engine, *MockApplicationService) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockApplicationService)
	handler := handlers.NewApplicationHandler(mockService, validator.New())
	router := gin.New()
	api := router.Group("/api")
	routes.RegisterApplicationRoutes(api, handler)
	return router, mockService
}

func TestApplicationRoutes_List_Defaults(t *testing.T) {
	router, mockService := setupApplicationRouter()

	mockService.On("ListApplications", mock.Anything, mock.MatchedBy(func(q *dto.ListApplicationsQuery) bool {
		return q.Page == 1 && q.PageSize == 100 && q.Stage == ""
	})).Return(&dto.ApplicationListResponse{Items: []models.Application{}, Total: 0}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestApplicationRoutes_List_RejectsBadStage(t *testing.T) {
	router, mockService := setupApplicationRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/applications?stage=Ghosted", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ListApplications", mock.Anything, mock.Anything)
}

func TestApplicationRoutes_Update_Success(t *testing.T) {
	router, mockService := setupApplicationRouter()

	appID := uuid.New()
	updated := &models.Application{ID: appID, Stage: models.StageOffer}
	mockService.On("UpdateApplication", mock.Anything, mock.MatchedBy(func(req *dto.UpdateApplicationRequest) bool {
		return req.ID == appID && req.Stage != nil && *req.Stage == models.StageOffer
	})).Return(updated, nil).Once()

	body := bytes.NewBufferString(`{"stage": "Offer"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/applications/"+appID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stage":"Offer"`)
	mockService.AssertExpectations(t)
}

func TestApplicationRoutes_Update_NotFound(t *testing.T) {
	router, mockService := setupApplicationRouter()

	mockService.On("UpdateApplication", mock.Anything, mock.Anything).
		Return(nil, services.ErrNotFound).Once()

	body := bytes.NewBufferString(`{"stage": "Offer"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/applications/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestApplicationRoutes_Update_InvalidStage(t *testing.T) {
	router, mockService := setupApplicationRouter()

	body := bytes.NewBufferString(`{"stage": "Ghosted"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/applications/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "UpdateApplication", mock.Anything, mock.Anything)
}
