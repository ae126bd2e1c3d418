package service_test

import (
	"errors"
	"testing"
	"time"

	"shoot-planner-backend/internal/database/models"
	apperrors "shoot-planner-backend/internal/errors"
	"shoot-planner-backend/internal/mocks"
	"shoot-planner-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ProductionServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockProductionRepositoryInterface
	productionService *service.ProductionService
	validator         *validator.Validate
}

func (suite *ProductionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProductionRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.productionService = service.NewProductionService(suite.mockRepo, suite.validator)
}

func (suite *ProductionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProductionServiceTestSuite) TestCreate_Success() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(production *models.Production) error {
		assert.Equal(suite.T(), "Autumn Editorial", production.Name)
		assert.NotNil(suite.T(), production.ShootDate)
		assert.Equal(suite.T(), "2026-09-14", production.ShootDate.Format("2006-01-02"))
		assert.Equal(suite.T(), "07:00", production.CallTime)
		production.ID = uuid.New()
		return nil
	})

	resp, err := suite.productionService.Create(&service.CreateProductionRequest{
		Name:         "Autumn Editorial",
		ShootDate:    "2026-09-14",
		CallTime:     "07:00",
		WrapTime:     "19:00",
		Location:     "Pier 59 Studios",
		ContactName:  "Dana Reyes",
		ContactPhone: "+1 212 555 0188",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Autumn Editorial", resp.Name)
	assert.Equal(suite.T(), "2026-09-14", resp.ShootDate)
}

func (suite *ProductionServiceTestSuite) TestCreate_MinimalFields() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(production *models.Production) error {
		assert.Nil(suite.T(), production.ShootDate)
		return nil
	})

	resp, err := suite.productionService.Create(&service.CreateProductionRequest{Name: "Untitled shoot"})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), resp.ShootDate)
	assert.Empty(suite.T(), resp.CallTime)
}

func (suite *ProductionServiceTestSuite) TestCreate_MissingName() {
	resp, err := suite.productionService.Create(&service.CreateProductionRequest{})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "Name")
}

func (suite *ProductionServiceTestSuite) TestCreate_InvalidCallTime() {
	resp, err := suite.productionService.Create(&service.CreateProductionRequest{
		Name:     "Bad clock",
		CallTime: "7am",
	})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ProductionServiceTestSuite) TestGetByID_Success() {
	id := uuid.New()
	shootDate := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Production{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Campaign shoot",
		ShootDate: &shootDate,
	}, nil)

	resp, err := suite.productionService.GetByID(id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, resp.ID)
	assert.Equal(suite.T(), "2026-09-14", resp.ShootDate)
}

func (suite *ProductionServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.productionService.GetByID(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProductionNotFound)
}

func (suite *ProductionServiceTestSuite) TestGetAll_Pagination() {
	productions := []models.Production{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Shoot A"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Shoot B"},
	}
	suite.mockRepo.EXPECT().GetAll(20, 0).Return(productions, int64(2), nil)

	resp, err := suite.productionService.GetAll(1, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), resp.Total)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Len(suite.T(), resp.Productions, 2)
}

func (suite *ProductionServiceTestSuite) TestGetAll_NormalizesBounds() {
	suite.mockRepo.EXPECT().GetAll(20, 0).Return([]models.Production{}, int64(0), nil)

	resp, err := suite.productionService.GetAll(-1, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
}

func (suite *ProductionServiceTestSuite) TestUpdate_PartialFields() {
	id := uuid.New()
	existing := &models.Production{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Campaign shoot",
		CallTime:  "07:00",
		Location:  "Studio B",
	}
	newCall := "08:30"

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(production *models.Production) error {
		assert.Equal(suite.T(), "08:30", production.CallTime)
		assert.Equal(suite.T(), "Studio B", production.Location)
		return nil
	})

	resp, err := suite.productionService.Update(id, &service.UpdateProductionRequest{CallTime: &newCall})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "08:30", resp.CallTime)
	assert.Equal(suite.T(), "Campaign shoot", resp.Name)
}

func (suite *ProductionServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	name := "Renamed"
	resp, err := suite.productionService.Update(id, &service.UpdateProductionRequest{Name: &name})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProductionNotFound)
}

func (suite *ProductionServiceTestSuite) TestUpdate_RepoError() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Production{BaseModel: models.BaseModel{ID: id}, Name: "X"}, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(errors.New("db failed"))

	name := "Renamed"
	resp, err := suite.productionService.Update(id, &service.UpdateProductionRequest{Name: &name})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func TestProductionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductionServiceTestSuite))
}
