package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"shoot-planner-backend/internal/api/handlers"
	apperrors "shoot-planner-backend/internal/errors"
	"shoot-planner-backend/internal/mocks"
	"shoot-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CrewMemberHandlerTestSuite defines the test suite for CrewMemberHandler
type CrewMemberHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCrewMemberServiceInterface
	handler     *handlers.CrewMemberHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *CrewMemberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCrewMemberServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCrewMemberHandler(suite.mockService)
	suite.router = gin.New()
	suite.setupRoutes()
}

// TearDownTest cleans up after each test
func (suite *CrewMemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// setupRoutes sets up the routes for testing
func (suite *CrewMemberHandlerTestSuite) setupRoutes() {
	suite.router.GET("/productions/:id/crew", suite.handler.GetCrew)
	suite.router.POST("/productions/:id/crew", suite.handler.CreateCrewMember)
	suite.router.PUT("/crew/:id", suite.handler.UpdateCrewMember)
	suite.router.DELETE("/crew/:id", suite.handler.DeleteCrewMember)
}

func (suite *CrewMemberHandlerTestSuite) TestGetCrew() {
	suite.T().Run("Success", func(t *testing.T) {
		productionID := uuid.New()
		suite.mockService.EXPECT().GetByProduction(productionID).Return(&service.CrewListResponse{
			CrewMembers: []service.CrewMemberResponse{{ID: uuid.New(), Name: "Mara Ellis", Role: "Photographer"}},
			Total:       1,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/productions/%s/crew", productionID), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Mara Ellis")
	})

	suite.T().Run("Production not found", func(t *testing.T) {
		productionID := uuid.New()
		suite.mockService.EXPECT().GetByProduction(productionID).Return(nil, apperrors.ErrProductionNotFound)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/productions/%s/crew", productionID), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (suite *CrewMemberHandlerTestSuite) TestCreateCrewMember() {
	suite.T().Run("Sets production ID from path", func(t *testing.T) {
		productionID := uuid.New()
		suite.mockService.EXPECT().Create(gomock.Any()).DoAndReturn(func(req *service.CreateCrewMemberRequest) (*service.CrewMemberResponse, error) {
			assert.Equal(t, productionID, req.ProductionID)
			return &service.CrewMemberResponse{ID: uuid.New(), ProductionID: productionID, Name: req.Name}, nil
		})

		body, _ := json.Marshal(map[string]string{"name": "Jo Tanaka", "role": "Stylist"})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/productions/%s/crew", productionID), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		productionID := uuid.New()
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/productions/%s/crew", productionID), bytes.NewBuffer([]byte("invalid json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (suite *CrewMemberHandlerTestSuite) TestUpdateCrewMember() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		role := "First assistant"
		suite.mockService.EXPECT().Update(id, gomock.Any()).Return(&service.CrewMemberResponse{ID: id, Name: "Jo Tanaka", Role: role}, nil)

		body, _ := json.Marshal(service.UpdateCrewMemberRequest{Role: &role})
		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/crew/%s", id), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "First assistant")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		name := "Renamed"
		suite.mockService.EXPECT().Update(id, gomock.Any()).Return(nil, apperrors.ErrCrewMemberNotFound)

		body, _ := json.Marshal(service.UpdateCrewMemberRequest{Name: &name})
		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/crew/%s", id), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (suite *CrewMemberHandlerTestSuite) TestDeleteCrewMember() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/crew/%s", id), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/crew/not-a-uuid", nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestCrewMemberHandlerTestSuite runs the test suite
func TestCrewMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CrewMemberHandlerTestSuite))
}
