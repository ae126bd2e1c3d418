package service_test

import (
	"testing"

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

type ScheduleItemServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockScheduleItemRepositoryInterface
	mockProductionRepo *mocks.MockProductionRepositoryInterface
	mockTemplateRepo   *mocks.MockScheduleTemplateRepositoryInterface
	scheduleService    *service.ScheduleItemService
	validator          *validator.Validate
}

func (suite *ScheduleItemServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockScheduleItemRepositoryInterface(suite.ctrl)
	suite.mockProductionRepo = mocks.NewMockProductionRepositoryInterface(suite.ctrl)
	suite.mockTemplateRepo = mocks.NewMockScheduleTemplateRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.scheduleService = service.NewScheduleItemService(suite.mockRepo, suite.mockProductionRepo, suite.mockTemplateRepo, suite.validator)
}

func (suite *ScheduleItemServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleItemServiceTestSuite) TestCreate_Success() {
	productionID := uuid.New()
	existing := []models.ScheduleItem{
		{BaseModel: models.BaseModel{ID: uuid.New()}, ProductionID: productionID, SequenceIndex: 0},
		{BaseModel: models.BaseModel{ID: uuid.New()}, ProductionID: productionID, SequenceIndex: 1},
	}

	suite.mockProductionRepo.EXPECT().GetByID(productionID).Return(&models.Production{}, nil)
	suite.mockRepo.EXPECT().GetByProductionID(productionID).Return(existing, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(item *models.ScheduleItem) error {
		assert.Equal(suite.T(), 2, item.SequenceIndex)
		assert.Equal(suite.T(), models.ScheduleCategoryShoot, item.Category)
		return nil
	})

	resp, err := suite.scheduleService.Create(&service.CreateScheduleItemRequest{
		ProductionID: productionID,
		Title:        "First looks on set",
		StartTime:    "09:30",
		EndTime:      "12:00",
		Category:     models.ScheduleCategoryShoot,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "First looks on set", resp.Title)
	assert.Equal(suite.T(), "9:30 AM", resp.StartLabel)
	assert.Equal(suite.T(), "2.5h", resp.Duration)
}

func (suite *ScheduleItemServiceTestSuite) TestCreate_DefaultsToGeneralCategory() {
	productionID := uuid.New()

	suite.mockProductionRepo.EXPECT().GetByID(productionID).Return(&models.Production{}, nil)
	suite.mockRepo.EXPECT().GetByProductionID(productionID).Return([]models.ScheduleItem{}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(item *models.ScheduleItem) error {
		assert.Equal(suite.T(), models.ScheduleCategoryGeneral, item.Category)
		assert.Equal(suite.T(), 0, item.SequenceIndex)
		return nil
	})

	_, err := suite.scheduleService.Create(&service.CreateScheduleItemRequest{
		ProductionID: productionID,
		Title:        "Crew arrival",
		StartTime:    "07:00",
	})

	assert.NoError(suite.T(), err)
}

func (suite *ScheduleItemServiceTestSuite) TestCreate_InvalidCategory() {
	productionID := uuid.New()
	suite.mockProductionRepo.EXPECT().GetByID(productionID).Return(&models.Production{}, nil)

	resp, err := suite.scheduleService.Create(&service.CreateScheduleItemRequest{
		ProductionID: productionID,
		Title:        "Mystery block",
		StartTime:    "10:00",
		Category:     "retrospective",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCategory)
}

func (suite *ScheduleItemServiceTestSuite) TestCreate_EndBeforeStart() {
	productionID := uuid.New()
	suite.mockProductionRepo.EXPECT().GetByID(productionID).Return(&models.Production{}, nil)

	resp, err := suite.scheduleService.Create(&service.CreateScheduleItemRequest{
		ProductionID: productionID,
		Title:        "Backwards block",
		StartTime:    "14:00",
		EndTime:      "09:00",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
}

func (suite *ScheduleItemServiceTestSuite) TestCreate_InvalidStartTimeFormat() {
	resp, err := suite.scheduleService.Create(&service.CreateScheduleItemRequest{
		ProductionID: uuid.New(),
		Title:        "Bad clock",
		StartTime:    "9am",
	})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "StartTime")
}

func (suite *ScheduleItemServiceTestSuite) TestApplyTemplate_EmptySchedule() {
	productionID := uuid.New()
	templateID := uuid.New()
	template := &models.ScheduleTemplate{
		BaseModel: models.BaseModel{ID: templateID},
		Name:      "Editorial day",
		Blueprints: []models.TemplateBlueprint{
			{Title: "Crew call", StartTime: "07:00", Position: 0},
			{Title: "Hair and makeup", StartTime: "07:30", EndTime: "09:00", Category: models.ScheduleCategoryPrep, Position: 1},
			{Title: "Shoot block 1", StartTime: "09:00", EndTime: "12:30", Category: models.ScheduleCategoryShoot, Position: 2},
		},
	}

	suite.mockProductionRepo.EXPECT().GetByID(productionID).Return(&models.Production{}, nil)
	suite.mockTemplateRepo.EXPECT().GetWithBlueprints(templateID).Return(template, nil)
	suite.mockRepo.EXPECT().CountByProductionID(productionID).Return(int64(0), nil)
	suite.mockRepo.EXPECT().ReplaceForProduction(productionID, gomock.Any()).DoAndReturn(func(_ uuid.UUID, items []models.ScheduleItem) error {
		assert.Len(suite.T(), items, 3)
		assert.Equal(suite.T(), "Crew call", items[0].Title)
		assert.Equal(suite.T(), 0, items[0].SequenceIndex)
		assert.Equal(suite.T(), models.ScheduleCategoryGeneral, items[0].Category)
		assert.Equal(suite.T(), 2, items[2].SequenceIndex)
		assert.Equal(suite.T(), models.ScheduleCategoryShoot, items[2].Category)
		return nil
	})
	created := []models.ScheduleItem{
		{ProductionID: productionID, Title: "Crew call", StartTime: "07:00", Category: models.ScheduleCategoryGeneral},
		{ProductionID: productionID, Title: "Hair and makeup", StartTime: "07:30", EndTime: "09:00", Category: models.ScheduleCategoryPrep},
		{ProductionID: productionID, Title: "Shoot block 1", StartTime: "09:00", EndTime: "12:30", Category: models.ScheduleCategoryShoot},
	}
	suite.mockRepo.EXPECT().GetByProductionID(productionID).Return(created, nil)

	resp, err := suite.scheduleService.ApplyTemplate(productionID, &service.ApplyTemplateRequest{TemplateID: templateID})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, resp.Total)
	assert.Equal(suite.T(), "Crew call", resp.Items[0].Title)
}

func (suite *ScheduleItemServiceTestSuite) TestApplyTemplate_NonEmptyWithoutConfirm() {
	productionID := uuid.New()
	templateID := uuid.New()
	template := &models.ScheduleTemplate{
		BaseModel:  models.BaseModel{ID: templateID},
		Blueprints: []models.TemplateBlueprint{{Title: "Crew call", StartTime: "07:00"}},
	}

	suite.mockProductionRepo.EXPECT().GetByID(productionID).Return(&models.Production{}, nil)
	suite.mockTemplateRepo.EXPECT().GetWithBlueprints(templateID).Return(template, nil)
	suite.mockRepo.EXPECT().CountByProductionID(productionID).Return(int64(4), nil)
	// ReplaceForProduction must not be called

	resp, err := suite.scheduleService.ApplyTemplate(productionID, &service.ApplyTemplateRequest{TemplateID: templateID})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrScheduleNotEmpty)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *ScheduleItemServiceTestSuite) TestApplyTemplate_NonEmptyConfirmed() {
	productionID := uuid.New()
	templateID := uuid.New()
	template := &models.ScheduleTemplate{
		BaseModel:  models.BaseModel{ID: templateID},
		Blueprints: []models.TemplateBlueprint{{Title: "Crew call", StartTime: "07:00"}},
	}

	suite.mockProductionRepo.EXPECT().GetByID(productionID).Return(&models.Production{}, nil)
	suite.mockTemplateRepo.EXPECT().GetWithBlueprints(templateID).Return(template, nil)
	suite.mockRepo.EXPECT().CountByProductionID(productionID).Return(int64(4), nil)
	suite.mockRepo.EXPECT().ReplaceForProduction(productionID, gomock.Any()).Return(nil)
	suite.mockRepo.EXPECT().GetByProductionID(productionID).Return([]models.ScheduleItem{
		{ProductionID: productionID, Title: "Crew call", StartTime: "07:00", Category: models.ScheduleCategoryGeneral},
	}, nil)

	resp, err := suite.scheduleService.ApplyTemplate(productionID, &service.ApplyTemplateRequest{
		TemplateID:     templateID,
		ConfirmReplace: true,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Total)
}

func (suite *ScheduleItemServiceTestSuite) TestApplyTemplate_EmptyTemplate() {
	productionID := uuid.New()
	templateID := uuid.New()
	template := &models.ScheduleTemplate{BaseModel: models.BaseModel{ID: templateID}}

	suite.mockProductionRepo.EXPECT().GetByID(productionID).Return(&models.Production{}, nil)
	suite.mockTemplateRepo.EXPECT().GetWithBlueprints(templateID).Return(template, nil)

	resp, err := suite.scheduleService.ApplyTemplate(productionID, &service.ApplyTemplateRequest{TemplateID: templateID})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptyTemplate)
}

func (suite *ScheduleItemServiceTestSuite) TestApplyTemplate_TemplateNotFound() {
	productionID := uuid.New()
	templateID := uuid.New()

	suite.mockProductionRepo.EXPECT().GetByID(productionID).Return(&models.Production{}, nil)
	suite.mockTemplateRepo.EXPECT().GetWithBlueprints(templateID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.scheduleService.ApplyTemplate(productionID, &service.ApplyTemplateRequest{TemplateID: templateID})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTemplateNotFound)
}

func (suite *ScheduleItemServiceTestSuite) TestUpdate_RejectsInvertedTimeRange() {
	id := uuid.New()
	item := &models.ScheduleItem{
		BaseModel:    models.BaseModel{ID: id},
		ProductionID: uuid.New(),
		Title:        "Lunch",
		StartTime:    "12:30",
		EndTime:      "13:30",
		Category:     models.ScheduleCategoryBreak,
	}
	newEnd := "11:00"

	suite.mockRepo.EXPECT().GetByID(id).Return(item, nil)

	resp, err := suite.scheduleService.Update(id, &service.UpdateScheduleItemRequest{EndTime: &newEnd})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
}

func (suite *ScheduleItemServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	title := "Renamed"
	resp, err := suite.scheduleService.Update(id, &service.UpdateScheduleItemRequest{Title: &title})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrScheduleItemNotFound)
}

func (suite *ScheduleItemServiceTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.ScheduleItem{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	assert.NoError(suite.T(), suite.scheduleService.Delete(id))
}

func (suite *ScheduleItemServiceTestSuite) TestGetByProduction_ProductionNotFound() {
	productionID := uuid.New()
	suite.mockProductionRepo.EXPECT().GetByID(productionID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.scheduleService.GetByProduction(productionID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProductionNotFound)
}

func TestScheduleItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleItemServiceTestSuite))
}
