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
	"shoot-planner-backend/internal/ordering"
	"shoot-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LookHandlerTestSuite defines the test suite for LookHandler
type LookHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLookServiceInterface
	handler     *handlers.LookHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *LookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLookServiceInterface(suite.ctrl)
	suite.handler = handlers.NewLookHandler(suite.mockService)
	suite.router = gin.New()
	suite.setupRoutes()
}

// TearDownTest cleans up after each test
func (suite *LookHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// setupRoutes sets up the routes for testing
func (suite *LookHandlerTestSuite) setupRoutes() {
	suite.router.GET("/productions/:id/looks", suite.handler.GetLooks)
	suite.router.POST("/productions/:id/looks", suite.handler.CreateLook)
	suite.router.PUT("/looks/:id", suite.handler.UpdateLook)
	suite.router.DELETE("/looks/:id", suite.handler.DeleteLook)
	suite.router.POST("/looks/:id/move", suite.handler.MoveLook)
}

func (suite *LookHandlerTestSuite) TestGetLooks() {
	suite.T().Run("Success", func(t *testing.T) {
		productionID := uuid.New()
		suite.mockService.EXPECT().GetByProduction(productionID).Return(&service.LookListResponse{
			Looks: []service.LookResponse{{ID: uuid.New(), Name: "Opening look", SequenceIndex: 0}},
			Total: 1,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/productions/%s/looks", productionID), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Opening look")
	})

	suite.T().Run("Production not found", func(t *testing.T) {
		productionID := uuid.New()
		suite.mockService.EXPECT().GetByProduction(productionID).Return(nil, apperrors.ErrProductionNotFound)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/productions/%s/looks", productionID), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (suite *LookHandlerTestSuite) TestCreateLook() {
	suite.T().Run("Sets production ID from path", func(t *testing.T) {
		productionID := uuid.New()
		suite.mockService.EXPECT().Create(gomock.Any()).DoAndReturn(func(req *service.CreateLookRequest) (*service.LookResponse, error) {
			assert.Equal(t, productionID, req.ProductionID)
			return &service.LookResponse{ID: uuid.New(), ProductionID: productionID, Name: req.Name}, nil
		})

		body, _ := json.Marshal(map[string]string{"name": "Evening wear"})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/productions/%s/looks", productionID), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	suite.T().Run("Invalid production UUID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/productions/not-a-uuid/looks", bytes.NewBuffer([]byte("{}")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (suite *LookHandlerTestSuite) TestMoveLook() {
	suite.T().Run("Success returns reordered list", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Move(id, gomock.Any()).DoAndReturn(func(_ uuid.UUID, req *service.MoveLookRequest) (*service.LookListResponse, error) {
			assert.Equal(t, ordering.DirectionUp, req.Direction)
			return &service.LookListResponse{
				Looks: []service.LookResponse{
					{ID: id, Name: "Second", SequenceIndex: 0},
					{ID: uuid.New(), Name: "First", SequenceIndex: 1},
				},
				Total: 2,
			}, nil
		})

		body, _ := json.Marshal(service.MoveLookRequest{Direction: ordering.DirectionUp})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/looks/%s/move", id), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp service.LookListResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Second", resp.Looks[0].Name)
	})

	suite.T().Run("Invalid direction", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Move(id, gomock.Any()).Return(nil, apperrors.ErrInvalidDirection)

		body, _ := json.Marshal(map[string]string{"direction": "sideways"})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/looks/%s/move", id), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	suite.T().Run("Look not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Move(id, gomock.Any()).Return(nil, apperrors.ErrLookNotFound)

		body, _ := json.Marshal(service.MoveLookRequest{Direction: ordering.DirectionDown})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/looks/%s/move", id), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (suite *LookHandlerTestSuite) TestDeleteLook() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/looks/%s", id), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(apperrors.ErrLookNotFound)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/looks/%s", id), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestLookHandlerTestSuite runs the test suite
func TestLookHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LookHandlerTestSuite))
}
